package reload

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Source supplies scene text. Poll never blocks on anything but a local
// file read.
type Source interface {
	// Poll returns the current text when it differs from what the previous
	// call returned. The first successful call always reports a change.
	Poll() (text []byte, changed bool, err error)
}

// FileSource polls a file. A size or modification time change triggers a
// read, and the content hash decides whether the text really changed.
type FileSource struct {
	path string

	mu      sync.Mutex
	seen    bool
	size    int64
	modTime time.Time
	sum     [sha256.Size]byte
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: filepath.Clean(path)}
}

func (s *FileSource) Path() string { return s.path }

func (s *FileSource) Poll() ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, err := os.Stat(s.path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to stat scene file: %w", err)
	}
	if s.seen && info.Size() == s.size && info.ModTime().Equal(s.modTime) {
		return nil, false, nil
	}

	text, err := os.ReadFile(s.path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read scene file: %w", err)
	}
	s.size, s.modTime = info.Size(), info.ModTime()

	sum := sha256.Sum256(text)
	if s.seen && sum == s.sum {
		return nil, false, nil
	}
	s.sum, s.seen = sum, true
	return text, true, nil
}

// StaticSource serves text set in code.
type StaticSource struct {
	mu      sync.Mutex
	text    []byte
	pending bool
}

func NewStaticSource(text []byte) *StaticSource {
	return &StaticSource{text: text, pending: true}
}

// Set replaces the text. The next Poll reports it as changed.
func (s *StaticSource) Set(text []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text, s.pending = text, true
}

func (s *StaticSource) Poll() ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.pending {
		return nil, false, nil
	}
	s.pending = false
	return s.text, true, nil
}
