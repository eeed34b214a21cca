// Package persistence keeps section scoped string settings in INI form and
// stores them through a save-data backend.
package persistence

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/quasilyte/gdata"
	"gopkg.in/ini.v1"
)

// ErrNoBackend is returned by Save on a memory-only store.
var ErrNoBackend = errors.New("persistence: no backend")

// itemKey is the save-data item holding the INI text.
const itemKey = "config"

// Backend is the save-data surface the store needs. *gdata.Manager satisfies it.
type Backend interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Store is a section/key string store. Values are strings; callers parse them.
type Store struct {
	backend Backend
	file    *ini.File
}

var loadOptions = ini.LoadOptions{
	IgnoreInlineComment: true,
}

// Open opens the per-user save-data directory for appName and loads the store from it.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return NewStore(nil), fmt.Errorf("open save data: %w", err)
	}
	s := NewStore(m)
	if err := s.Reload(); err != nil {
		return s, err
	}
	return s, nil
}

// NewStore returns an empty store on top of b. A nil backend gives a memory-only store.
func NewStore(b Backend) *Store {
	return &Store{
		backend: b,
		file:    ini.Empty(loadOptions),
	}
}

// Reload replaces the in-memory values with the persisted ones. On error the
// current values are kept.
func (s *Store) Reload() error {
	if s.backend == nil {
		return ErrNoBackend
	}
	data, err := s.backend.LoadItem(itemKey)
	if err != nil {
		return fmt.Errorf("load %s: %w", itemKey, err)
	}
	if len(data) == 0 {
		return nil
	}
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", itemKey, err)
	}
	s.file = f
	return nil
}

// Get returns the value of key in section, or def when either is missing.
func (s *Store) Get(section, key, def string) string {
	sec, err := s.file.GetSection(section)
	if err != nil || !sec.HasKey(key) {
		return def
	}
	return sec.Key(key).String()
}

// GetInt is Get followed by an integer parse. Values that do not parse give def.
func (s *Store) GetInt(section, key string, def int) int {
	v, err := strconv.Atoi(s.Get(section, key, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return v
}

// Set stores value under section/key, creating both as needed.
func (s *Store) Set(section, key, value string) {
	s.file.Section(section).Key(key).SetValue(value)
}

func (s *Store) SetInt(section, key string, value int) {
	s.Set(section, key, strconv.Itoa(value))
}

// Save writes the store to its backend.
func (s *Store) Save() error {
	if s.backend == nil {
		return ErrNoBackend
	}
	var buf bytes.Buffer
	if _, err := s.file.WriteTo(&buf); err != nil {
		return fmt.Errorf("encode %s: %w", itemKey, err)
	}
	if err := s.backend.SaveItem(itemKey, buf.Bytes()); err != nil {
		return fmt.Errorf("save %s: %w", itemKey, err)
	}
	return nil
}
