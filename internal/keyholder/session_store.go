package keyholder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// MemorySessionStore keeps slots for the lifetime of the process.
type MemorySessionStore struct {
	mu    sync.Mutex
	slots map[string]string
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{slots: make(map[string]string)}
}

func (s *MemorySessionStore) Get(slot string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.slots[slot]
	if !ok {
		return "", ErrSlotNotFound
	}
	return v, nil
}

func (s *MemorySessionStore) Put(slot, value string) error {
	if err := checkSlotName(slot); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[slot] = value
	return nil
}

func (s *MemorySessionStore) Delete(slot string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, slot)
	return nil
}

// FileSessionStore keeps every slot in its own 0600 file inside a 0700
// directory scoped to the current login session, so a client restart in the
// same terminal session finds the slots again while a new session starts
// empty.
type FileSessionStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileSessionStore creates dir if needed. An empty dir selects
// [DefaultSessionDir].
func NewFileSessionStore(dir string) (*FileSessionStore, error) {
	if dir == "" {
		dir = DefaultSessionDir()
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}

	return &FileSessionStore{dir: dir}, nil
}

// Dir returns the directory holding the slots.
func (s *FileSessionStore) Dir() string {
	return s.dir
}

func (s *FileSessionStore) Get(slot string) (string, error) {
	if err := checkSlotName(slot); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrSlotNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read slot %q: %w", slot, err)
	}

	return string(data), nil
}

func (s *FileSessionStore) Put(slot, value string) error {
	if err := checkSlotName(slot); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, "."+slot+"-*")
	if err != nil {
		return fmt.Errorf("write slot %q: %w", slot, err)
	}
	defer os.Remove(tmp.Name())

	if err = tmp.Chmod(0o600); err == nil {
		_, err = tmp.WriteString(value)
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("write slot %q: %w", slot, err)
	}

	if err = os.Rename(tmp.Name(), s.path(slot)); err != nil {
		return fmt.Errorf("write slot %q: %w", slot, err)
	}
	return nil
}

func (s *FileSessionStore) Delete(slot string) error {
	if err := checkSlotName(slot); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(slot))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete slot %q: %w", slot, err)
	}
	return nil
}

func (s *FileSessionStore) path(slot string) string {
	return filepath.Join(s.dir, slot)
}

func checkSlotName(slot string) error {
	if slot == "" || slot == "." || slot == ".." || strings.ContainsAny(slot, `/\`) {
		return ErrInvalidSlotName
	}
	return nil
}

// DefaultSessionDir returns the per-session directory under
// $XDG_RUNTIME_DIR (cleared by the system at logout) or the temp dir.
//
// The session is identified by XDG_SESSION_ID, then the terminal session
// variables, then the parent process id (the shell).
func DefaultSessionDir() string {
	base := os.Getenv("XDG_RUNTIME_DIR")
	if base == "" {
		base = filepath.Join(os.TempDir(), "go-pass-vault-"+strconv.Itoa(os.Getuid()))
	}

	return filepath.Join(base, "go-pass-vault", sessionID())
}

func sessionID() string {
	for _, name := range []string{"XDG_SESSION_ID", "TERM_SESSION_ID", "WT_SESSION", "TMUX_PANE"} {
		if v := os.Getenv(name); v != "" {
			return sanitize(v)
		}
	}
	return "ppid-" + strconv.Itoa(os.Getppid())
}

func sanitize(v string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, v)
}
