package ledgerbook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store is a durable snapshot store for a ledger. The engine itself is
// storage-agnostic: a store loads a consistent snapshot and persists the
// whole state back after each batch of mutations.
type Store interface {
	Load() (*Ledger, error)
	Save(*Ledger) error
}

// FileStore persists the ledger to a single human-readable JSONL file,
// suitable for keeping under version control.
type FileStore struct {
	Path     string
	Defaults Config // used when the file does not exist yet
}

// NewFileStore creates a file store for path. When the file is missing, Load
// returns a fresh empty ledger built from defaults.
func NewFileStore(path string, defaults Config) *FileStore {
	return &FileStore{Path: path, Defaults: defaults}
}

// Load reads and decodes the ledger file.
func (s *FileStore) Load() (*Ledger, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(s.Defaults)
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", s.Path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", s.Path, err)
	}
	return ledger, nil
}

// Save writes the ledger back in canonical form. The file is replaced
// atomically: content is written to a sibling temp file first and renamed
// over the target.
func (s *FileStore) Save(l *Ledger) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", s.Path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".tmp*")
	if err != nil {
		return fmt.Errorf("could not create temp ledger file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeLedger(tmp, l); err != nil {
		tmp.Close()
		return fmt.Errorf("could not encode ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temp ledger file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("could not replace ledger file %q: %w", s.Path, err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
