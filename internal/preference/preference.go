// Package preference persists the user's display and backup flags in a
// small dotenv-format file next to the app's data.
package preference

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/joho/godotenv"
)

var ErrInvalidTheme = errors.New("invalid theme")

type Theme string

const (
	ThemeDark Theme = "dark"
	ThemeGold Theme = "gold"
)

func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeGold
}

const (
	keyTheme      = "theme"
	keyAutoBackup = "autoBackup"
	keyGold24     = "gold_grams_24"
	keyGold21     = "gold_grams_21"
)

type Preferences struct {
	Theme      Theme
	AutoBackup bool

	// Last inputs of the gold form, kept as typed.
	GoldGrams24 string
	GoldGrams21 string
}

// Defaults are used for any flag the file does not set.
func Defaults() Preferences {
	return Preferences{Theme: ThemeDark}
}

type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the flags file. A missing file yields the defaults; unknown
// theme values fall back to dark.
func (s *Store) Load() (Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

func (s *Store) load() (Preferences, error) {
	p := Defaults()

	values, err := godotenv.Read(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return p, nil
		}

		return p, fmt.Errorf("reading preferences: %w", err)
	}

	if t := Theme(values[keyTheme]); t.Valid() {
		p.Theme = t
	}

	p.AutoBackup = values[keyAutoBackup] == "1"
	p.GoldGrams24 = values[keyGold24]
	p.GoldGrams21 = values[keyGold21]

	return p, nil
}

// Save writes every field of p.
func (s *Store) Save(p Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(p)
}

// Update applies fn to the stored preferences and writes the result, leaving
// fields fn does not touch as they were.
func (s *Store) Update(fn func(p *Preferences)) (Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load()
	if err != nil {
		return p, err
	}

	fn(&p)

	return p, s.save(p)
}

func (s *Store) save(p Preferences) error {
	if !p.Theme.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, p.Theme)
	}

	autoBackup := "0"
	if p.AutoBackup {
		autoBackup = "1"
	}

	values := map[string]string{
		keyTheme:      string(p.Theme),
		keyAutoBackup: autoBackup,
	}

	if p.GoldGrams24 != "" {
		values[keyGold24] = p.GoldGrams24
	}

	if p.GoldGrams21 != "" {
		values[keyGold21] = p.GoldGrams21
	}

	if err := godotenv.Write(values, s.path); err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}

	return nil
}

// AutoBackup reports whether automatic backups are switched on. A file that
// cannot be read counts as off.
func (s *Store) AutoBackup() bool {
	p, err := s.Load()
	if err != nil {
		slog.Warn("failed to load preferences", "error", err)
		return false
	}

	return p.AutoBackup
}
