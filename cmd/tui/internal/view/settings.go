package view

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/wallet/internal/backup"
	"github.com/MrJamesThe3rd/wallet/internal/preference"
)

const backupTimeout = 2 * time.Minute

type settingsState int

const (
	settingsStateMenu settingsState = iota
	settingsStateExport
	settingsStateImport
	settingsStateConfirmWipe
	settingsStateBusy
)

// SettingsModel toggles the saved preferences and runs backup export,
// import and wipe.
type SettingsModel struct {
	CommonModel
	prefs   *preference.Store
	backups *backup.Service

	state      settingsState
	current    preference.Preferences
	form       *huh.Form
	filePicker filepicker.Model
	status     string

	exportDir   string
	wipeConfirm *bool
}

func NewSettingsModel(prefs *preference.Store, backups *backup.Service) SettingsModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".json"}
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return SettingsModel{
		prefs:      prefs,
		backups:    backups,
		filePicker: fp,
		exportDir:  ".",
	}
}

func (m SettingsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case prefsLoadedMsg:
		if msg.err != nil {
			m.status = errorStatus("loading preferences", msg.err)
		}

		m.current = msg.prefs
		ApplyTheme(m.current.Theme)

		return m, nil

	case settingsDoneMsg:
		m.state = settingsStateMenu
		m.form = nil
		m.status = msg.status

		if msg.err != nil {
			m.status = errorStatus(msg.action, msg.err)
		}

		return m, m.loadCmd()

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			if m.state == settingsStateMenu {
				return m, Back
			}

			if m.state != settingsStateBusy {
				m.state = settingsStateMenu
				m.form = nil
			}

			return m, nil
		}
	}

	switch m.state {
	case settingsStateMenu:
		return m.updateMenu(msg)
	case settingsStateImport:
		return m.updateImport(msg)
	case settingsStateExport, settingsStateConfirmWipe:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m SettingsModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "t":
		next := m.current
		next.Theme = preference.ThemeGold
		if m.current.Theme == preference.ThemeGold {
			next.Theme = preference.ThemeDark
		}

		return m, m.savePrefsCmd(next)
	case "a":
		next := m.current
		next.AutoBackup = !next.AutoBackup

		return m, m.savePrefsCmd(next)
	case "x":
		m.form = huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Key("dir").
				Title("Export directory").
				Description("The file is named after the current time").
				Value(&m.exportDir),
		)).WithWidth(50).WithShowHelp(false)
		m.state = settingsStateExport

		return m, m.form.Init()
	case "i":
		m.state = settingsStateImport
		return m, m.filePicker.Init()
	case "w":
		m.wipeConfirm = new(false)
		m.form = huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Delete all data?").
				Description("Assets, debts, rates and pinned bases are removed. This cannot be undone.").
				Value(m.wipeConfirm),
		)).WithWidth(50).WithShowHelp(false)
		m.state = settingsStateConfirmWipe

		return m, m.form.Init()
	}

	return m, nil
}

func (m SettingsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == settingsStateConfirmWipe {
		if !*m.wipeConfirm {
			m.state = settingsStateMenu
			m.form = nil

			return m, nil
		}

		m.state = settingsStateBusy

		return m, m.wipeCmd()
	}

	dir := strings.TrimSpace(m.form.GetString("dir"))
	m.state = settingsStateBusy

	return m, m.exportCmd(dir)
}

func (m SettingsModel) updateImport(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = settingsStateBusy
		m.status = fmt.Sprintf("Importing from %s...", path)

		return m, m.importCmd(path)
	}

	return m, cmd
}

func onOff(b bool) string {
	if b {
		return "on"
	}

	return "off"
}

func (m SettingsModel) View() string {
	switch m.state {
	case settingsStateImport:
		return screen("Import backup", "Enter: select | Esc: cancel", m.status, m.filePicker.View())
	case settingsStateBusy:
		return screen("Settings", "", m.status, "Working...")
	}

	label := lipgloss.NewStyle().Width(22).Faint(true)

	var b strings.Builder

	b.WriteString(label.Render("[t] Theme") + activeStyle(string(m.current.Theme)) + "\n")
	b.WriteString(label.Render("[a] Auto backup") + activeStyle(onOff(m.current.AutoBackup)) + "\n\n")
	b.WriteString(label.Render("[x] Export") + "Save all data to a JSON file\n")
	b.WriteString(label.Render("[i] Import") + "Restore records from a backup file\n")
	b.WriteString(label.Render("[w] Wipe") + "Delete all data\n")

	content := b.String()
	if m.form != nil {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, formPanel("Backup", m.form.View()))
	}

	help := "Esc: back"
	if m.form != nil {
		help = "Navigate form | Esc: cancel"
	}

	return screen("Settings", help, m.status, content)
}

// Messages

type prefsLoadedMsg struct {
	prefs preference.Preferences
	err   error
}

type settingsDoneMsg struct {
	action string
	status string
	err    error
}

func (m SettingsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		prefs, err := m.prefs.Load()
		return prefsLoadedMsg{prefs: prefs, err: err}
	}
}

func (m SettingsModel) savePrefsCmd(next preference.Preferences) tea.Cmd {
	return func() tea.Msg {
		_, err := m.prefs.Update(func(p *preference.Preferences) {
			p.Theme = next.Theme
			p.AutoBackup = next.AutoBackup
		})
		if err != nil {
			return settingsDoneMsg{action: "saving preferences", err: err}
		}

		status := "Preferences saved"

		if next.AutoBackup {
			ctx, cancel := context.WithTimeout(context.Background(), backupTimeout)
			defer cancel()

			taken, err := m.backups.RunAuto(ctx)
			if err != nil {
				return settingsDoneMsg{action: "running automatic backup", err: err}
			}

			if taken {
				status = "Preferences saved, backup stored"
			}
		}

		return settingsDoneMsg{status: status}
	}
}

func (m SettingsModel) exportCmd(dir string) tea.Cmd {
	if dir == "" {
		dir = "."
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), backupTimeout)
		defer cancel()

		doc, err := m.backups.Export(ctx)
		if err != nil {
			return settingsDoneMsg{action: "exporting", err: err}
		}

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return settingsDoneMsg{action: "exporting", err: err}
		}

		path := filepath.Join(dir, backup.Filename(time.Now()))

		f, err := os.Create(path)
		if err != nil {
			return settingsDoneMsg{action: "exporting", err: err}
		}
		defer f.Close()

		if err := backup.Encode(f, doc); err != nil {
			return settingsDoneMsg{action: "exporting", err: err}
		}

		return settingsDoneMsg{status: fmt.Sprintf("Exported %d assets and %d debts to %s",
			len(doc.Assets), len(doc.Debts), path)}
	}
}

func (m SettingsModel) importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return settingsDoneMsg{action: "importing", err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), backupTimeout)
		defer cancel()

		doc, err := m.backups.Import(ctx, f)
		if err != nil {
			return settingsDoneMsg{action: "importing", err: err}
		}

		return settingsDoneMsg{status: fmt.Sprintf("Imported %d assets, %d debts, %d rates and %d bases",
			len(doc.Assets), len(doc.Debts), len(doc.Rates), len(doc.ZakatBase))}
	}
}

func (m SettingsModel) wipeCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), backupTimeout)
		defer cancel()

		if err := m.backups.Wipe(ctx); err != nil {
			return settingsDoneMsg{action: "wiping data", err: err}
		}

		return settingsDoneMsg{status: "All data deleted"}
	}
}
