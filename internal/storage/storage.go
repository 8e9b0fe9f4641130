package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/andy/reconnect/internal/repository"
)

// ErrNoData is returned by Load when nothing has been saved yet.
var ErrNoData = errors.New("no saved data")

// Storage reads and writes whole documents.
type Storage interface {
	Load(ctx context.Context) (Document, error)
	Save(ctx context.Context, doc Document) error
	// Path describes where the data lives, for messages.
	Path() string
}

// LoadAddressBook loads and decodes the stored address book.
func LoadAddressBook(ctx context.Context, s Storage) (*repository.AddressBook, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.ToAddressBook()
}

// SaveAddressBook stores the full contents of ab.
func SaveAddressBook(ctx context.Context, s Storage, ab *repository.AddressBook) error {
	return s.Save(ctx, ToDocument(ab))
}

type format int

const (
	formatJSON format = iota
	formatYAML
)

// FileStorage keeps the document in a single JSON or YAML file, chosen by
// the file extension (JSON unless .yaml or .yml).
type FileStorage struct {
	path   string
	format format
}

func NewFileStorage(path string) *FileStorage {
	f := formatJSON
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f = formatYAML
	}
	return &FileStorage{path: path, format: f}
}

func (s *FileStorage) Path() string { return s.path }

func (s *FileStorage) Load(ctx context.Context) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Document{}, ErrNoData
	}
	if err != nil {
		return Document{}, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var doc Document
	switch s.format {
	case formatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return Document{}, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	return doc, nil
}

// Save writes doc to a temporary file next to the target and renames it
// into place.
func (s *FileStorage) Save(ctx context.Context, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	switch s.format {
	case formatYAML:
		data, err = yaml.Marshal(doc)
	default:
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode address book: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}
