package view

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/wallet/internal/preference"
)

const dbTimeout = 5 * time.Second

type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// Accent is the highlight color of the active theme.
var Accent = lipgloss.Color("63")

// ApplyTheme switches the highlight color to match the saved theme.
func ApplyTheme(t preference.Theme) {
	if t == preference.ThemeGold {
		Accent = lipgloss.Color("220")
		return
	}

	Accent = lipgloss.Color("63")
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(Accent).Render(s)
}

func newTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(Accent).
		Bold(false)
	t.SetStyles(s)

	return t
}

func tableBox(t table.Model) string {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(t.View())
}

func formPanel(title, body string) string {
	return lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Accent).
		Width(48).
		Render(title + "\n\n" + body)
}

func screen(title, help, status, body string) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(Accent).Render(title))
	b.WriteString("\n\n")

	if status != "" {
		b.WriteString(lipgloss.NewStyle().Faint(true).Render(status))
		b.WriteString("\n\n")
	}

	b.WriteString(body)
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Faint(true).Render(help))

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

func errorStatus(action string, err error) string {
	return fmt.Sprintf("Error %s: %v", action, err)
}
