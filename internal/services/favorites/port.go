package favorites

import (
	"net/url"
	"os"
	"path/filepath"
)

// Port is the key-value persistence interface the favorites store writes
// through. Get reports absence via the bool, not an error.
type Port interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// MemoryPort keeps values in memory. Meant for tests and for running
// without durable storage.
type MemoryPort struct {
	values map[string]string
}

func NewMemoryPort() *MemoryPort {
	return &MemoryPort{values: make(map[string]string)}
}

func (p *MemoryPort) Get(key string) (string, bool, error) {
	value, ok := p.values[key]
	return value, ok, nil
}

func (p *MemoryPort) Set(key, value string) error {
	p.values[key] = value
	return nil
}

// FilePort stores each key as one JSON file in a directory, the durable
// counterpart of a browser's local storage.
type FilePort struct {
	dir string
}

func NewFilePort(dir string) *FilePort {
	return &FilePort{dir: dir}
}

func (p *FilePort) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(p.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

func (p *FilePort) Set(key, value string) error {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(p.path(key), []byte(value), 0o644)
}

func (p *FilePort) path(key string) string {
	return filepath.Join(p.dir, url.PathEscape(key)+".json")
}
