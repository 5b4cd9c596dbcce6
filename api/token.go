package api

import (
	"os"
	"strings"
	"sync"
)

// TokenSource menyimpan satu token bearer milik sesi aktif.
type TokenSource interface {
	Token() string
	Save(token string) error
	Clear() error
}

// FileTokenSource menyimpan token di satu file, bertahan melewati restart
// sampai logout atau pengecekan sesi gagal.
type FileTokenSource struct {
	Path string
}

func NewFileTokenSource(path string) *FileTokenSource {
	return &FileTokenSource{Path: path}
}

func (f *FileTokenSource) Token() string {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

func (f *FileTokenSource) Save(token string) error {
	return os.WriteFile(f.Path, []byte(token+"\n"), 0o600)
}

func (f *FileTokenSource) Clear() error {
	err := os.Remove(f.Path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemoryTokenSource menyimpan token di memori saja; dipakai untuk testing.
type MemoryTokenSource struct {
	mu    sync.Mutex
	token string
}

func (m *MemoryTokenSource) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *MemoryTokenSource) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryTokenSource) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
