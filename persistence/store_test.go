package persistence

import (
	"errors"
	"strings"
	"testing"
)

type memoryBackend struct {
	items   map[string][]byte
	loadErr error
	saves   int
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{items: make(map[string][]byte)}
}

func (m *memoryBackend) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memoryBackend) SaveItem(key string, data []byte) error {
	m.saves++
	m.items[key] = append([]byte(nil), data...)
	return nil
}

func TestGetDefaults(t *testing.T) {
	s := NewStore(nil)
	if got := s.Get("MuffinAttack", "level", "1"); got != "1" {
		t.Errorf("Get on empty store = %q, want default", got)
	}
	s.Set("MuffinAttack", "level", "3")
	if got := s.Get("MuffinAttack", "level", "1"); got != "3" {
		t.Errorf("Get after Set = %q, want 3", got)
	}
	if got := s.Get("MuffinAttack", "completed", "0"); got != "0" {
		t.Errorf("missing key in existing section = %q, want default", got)
	}
	if got := s.Get("Other", "level", "x"); got != "x" {
		t.Errorf("missing section = %q, want default", got)
	}
}

func TestGetInt(t *testing.T) {
	s := NewStore(nil)
	s.Set("MuffinAttack", "level", "4")
	s.Set("MuffinAttack", "broken", "four")

	cases := []struct {
		key  string
		def  int
		want int
	}{
		{"level", 1, 4},
		{"broken", 1, 1},
		{"missing", 7, 7},
	}
	for _, c := range cases {
		if got := s.GetInt("MuffinAttack", c.key, c.def); got != c.want {
			t.Errorf("GetInt(%q) = %d, want %d", c.key, got, c.want)
		}
	}
}

func TestSaveAndReload(t *testing.T) {
	b := newMemoryBackend()
	s := NewStore(b)
	s.SetInt("MuffinAttack", "level", 2)
	s.Set("MuffinAttack", "completed", "1")
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.Contains(string(b.items[itemKey]), "[MuffinAttack]") {
		t.Errorf("saved text misses section header:\n%s", b.items[itemKey])
	}

	other := NewStore(b)
	if err := other.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if got := other.GetInt("MuffinAttack", "level", 1); got != 2 {
		t.Errorf("level after reload = %d, want 2", got)
	}
	if got := other.Get("MuffinAttack", "completed", "0"); got != "1" {
		t.Errorf("completed after reload = %q, want 1", got)
	}
}

func TestReloadErrorsKeepValues(t *testing.T) {
	b := newMemoryBackend()
	s := NewStore(b)
	s.Set("MuffinAttack", "level", "5")

	b.loadErr = errors.New("disk on fire")
	if err := s.Reload(); err == nil {
		t.Error("Reload should report backend errors")
	}
	if got := s.Get("MuffinAttack", "level", "1"); got != "5" {
		t.Errorf("values lost after failed reload: %q", got)
	}

	b.loadErr = nil
	b.items[itemKey] = []byte("[MuffinAttack\nlevel")
	if err := s.Reload(); err == nil {
		t.Error("Reload should report parse errors")
	}
	if got := s.Get("MuffinAttack", "level", "1"); got != "5" {
		t.Errorf("values lost after bad data: %q", got)
	}
}

func TestMemoryStoreSave(t *testing.T) {
	s := NewStore(nil)
	if err := s.Save(); !errors.Is(err, ErrNoBackend) {
		t.Errorf("Save without backend = %v, want ErrNoBackend", err)
	}
}
