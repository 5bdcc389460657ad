package integration

import (
	"bytes"
	"io"
	"sync"
)

// --- In-Memory Dataset Store ---

// inMemoryStore implements ports.DatasetStore, keeping written datasets in
// memory so tests can inspect the encoded output without touching disk.
type inMemoryStore struct {
	mu    sync.Mutex
	files map[string]*bytes.Buffer
}

func newInMemoryStore() *inMemoryStore {
	return &inMemoryStore{files: make(map[string]*bytes.Buffer)}
}

func (s *inMemoryStore) Create(name string) (io.WriteCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := &bytes.Buffer{}
	s.files[name] = buf // Creating an existing name overwrites it.
	return nopCloser{buf}, nil
}

func (s *inMemoryStore) get(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf, ok := s.files[name]
	if !ok {
		return nil, false
	}
	return buf.Bytes(), true
}

func (s *inMemoryStore) names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.files))
	for name := range s.files {
		out = append(out, name)
	}
	return out
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
