package preference_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/wallet/internal/preference"
)

func TestStore_LoadMissingFile(t *testing.T) {
	s := preference.NewStore(filepath.Join(t.TempDir(), "prefs.env"))

	p, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, preference.Defaults(), p)
	assert.False(t, s.AutoBackup())
}

func TestStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.env")
	s := preference.NewStore(path)

	require.NoError(t, s.Save(preference.Preferences{Theme: preference.ThemeGold, AutoBackup: true}))

	p, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, preference.ThemeGold, p.Theme)
	assert.True(t, p.AutoBackup)
	assert.True(t, s.AutoBackup())

	require.NoError(t, s.Save(preference.Preferences{Theme: preference.ThemeDark}))

	p, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, preference.ThemeDark, p.Theme)
	assert.False(t, p.AutoBackup)
}

func TestStore_SaveRejectsUnknownTheme(t *testing.T) {
	s := preference.NewStore(filepath.Join(t.TempDir(), "prefs.env"))

	err := s.Save(preference.Preferences{Theme: "neon"})
	assert.ErrorIs(t, err, preference.ErrInvalidTheme)
}

func TestStore_LoadIgnoresUnknownValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.env")
	require.NoError(t, os.WriteFile(path, []byte("theme=neon\nautoBackup=yes\nother=1\n"), 0o600))

	p, err := preference.NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, preference.ThemeDark, p.Theme)
	assert.False(t, p.AutoBackup)
}

func TestStore_GoldInputsSurviveFlagChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.env")
	s := preference.NewStore(path)

	_, err := s.Update(func(p *preference.Preferences) {
		p.GoldGrams24 = "12.5"
		p.GoldGrams21 = "٣"
	})
	require.NoError(t, err)

	got, err := s.Update(func(p *preference.Preferences) {
		p.Theme = preference.ThemeGold
		p.AutoBackup = true
	})
	require.NoError(t, err)
	assert.Equal(t, "12.5", got.GoldGrams24)

	p, err := preference.NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, preference.Preferences{
		Theme:       preference.ThemeGold,
		AutoBackup:  true,
		GoldGrams24: "12.5",
		GoldGrams21: "٣",
	}, p)
}

func TestStore_UpdateRejectsUnknownTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.env")
	s := preference.NewStore(path)
	require.NoError(t, s.Save(preference.Preferences{Theme: preference.ThemeGold, GoldGrams24: "4"}))

	_, err := s.Update(func(p *preference.Preferences) { p.Theme = "neon" })
	require.ErrorIs(t, err, preference.ErrInvalidTheme)

	p, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, preference.ThemeGold, p.Theme)
	assert.Equal(t, "4", p.GoldGrams24)
}
