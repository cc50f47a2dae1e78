package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Store reads and writes records under a directory.
type Store struct {
	cfg Config
}

// NewStore creates a store for the configured locations.
func NewStore(cfg Config) *Store {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.LocalFile == "" {
		cfg.LocalFile = "local.json"
	}
	if cfg.RemoteFile == "" {
		cfg.RemoteFile = "remote.json"
	}
	if cfg.DiffFile == "" {
		cfg.DiffFile = "diff.json"
	}
	return &Store{cfg: cfg}
}

// LocalPath returns the path of the local catalog.
func (s *Store) LocalPath() string {
	return filepath.Join(s.cfg.OutputDir, s.cfg.LocalFile)
}

// RemotePath returns the path of the remote catalog for an optional bag filter.
func (s *Store) RemotePath(bagFilter string) string {
	return filepath.Join(s.cfg.OutputDir, scoped(s.cfg.RemoteFile, bagFilter))
}

// DiffPath returns the path of the diff report for an optional bag filter.
func (s *Store) DiffPath(bagFilter string) string {
	return filepath.Join(s.cfg.OutputDir, scoped(s.cfg.DiffFile, bagFilter))
}

// scoped turns "remote.json" into "remote_42.json" for filter "42".
func scoped(name, bagFilter string) string {
	if bagFilter == "" {
		return name
	}
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + "_" + bagFilter + ext
}

// WriteLocal persists the local catalog.
func (s *Store) WriteLocal(c *LocalCatalog) error {
	c.Objects = nonNil(c.Objects)
	return writeJSON(s.LocalPath(), c)
}

// ReadLocal loads the local catalog.
func (s *Store) ReadLocal() (*LocalCatalog, error) {
	var c LocalCatalog
	if err := readJSON(s.LocalPath(), &c, &c.Version); err != nil {
		return nil, err
	}
	c.Objects = nonNil(c.Objects)
	return &c, nil
}

// WriteRemote persists a remote catalog.
func (s *Store) WriteRemote(bagFilter string, c *RemoteCatalog) error {
	if c.Bags == nil {
		c.Bags = make(map[string][]string)
	}
	return writeJSON(s.RemotePath(bagFilter), c)
}

// ReadRemote loads a remote catalog.
func (s *Store) ReadRemote(bagFilter string) (*RemoteCatalog, error) {
	var c RemoteCatalog
	if err := readJSON(s.RemotePath(bagFilter), &c, &c.Version); err != nil {
		return nil, err
	}
	if c.Bags == nil {
		c.Bags = make(map[string][]string)
	}
	return &c, nil
}

// WriteDiff persists a diff report.
func (s *Store) WriteDiff(bagFilter string, r *DiffReport) error {
	r.UnexpectedLocal = nonNil(r.UnexpectedLocal)
	if r.MissingObjectsPerBag == nil {
		r.MissingObjectsPerBag = make(map[string][]string)
	}
	return writeJSON(s.DiffPath(bagFilter), r)
}

// ReadDiff loads a diff report.
func (s *Store) ReadDiff(bagFilter string) (*DiffReport, error) {
	var r DiffReport
	if err := readJSON(s.DiffPath(bagFilter), &r, &r.Version); err != nil {
		return nil, err
	}
	r.UnexpectedLocal = nonNil(r.UnexpectedLocal)
	if r.MissingObjectsPerBag == nil {
		r.MissingObjectsPerBag = make(map[string][]string)
	}
	return &r, nil
}

// Encode serializes a record the same way the store writes it.
func Encode(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func writeJSON(path string, v any) error {
	data, err := Encode(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func readJSON(path string, v any, version *int) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return &ParseError{Path: path, Err: err}
	}
	if *version != SchemaVersion {
		return &ParseError{Path: path, Err: fmt.Errorf("unsupported schema version %d", *version)}
	}
	return nil
}
