package accesscode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// FileStore keeps codes in a single JSON file mapping code to {"used": bool}.
// Every operation rewrites the whole file. A mutex makes the
// load-check-mutate-persist sequence of Redeem a single critical section, so
// a code can never be redeemed twice even under concurrent requests.
type FileStore struct {
	path string
	mu   sync.Mutex
}

type codeRecord struct {
	Used bool `json:"used"`
}

// NewFileStore creates a store backed by the JSON file at path. The file is
// created lazily on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Generate implements Store.
func (s *FileStore) Generate(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	codes, err := s.load()
	if err != nil {
		return "", err
	}

	code, err := newCode()
	if err != nil {
		return "", err
	}

	codes[code] = codeRecord{Used: false}
	if err := s.save(codes); err != nil {
		return "", err
	}
	return code, nil
}

// Redeem implements Store.
func (s *FileStore) Redeem(ctx context.Context, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	codes, err := s.load()
	if err != nil {
		return false, err
	}

	rec, ok := codes[code]
	if !ok || rec.Used {
		return false, nil
	}

	codes[code] = codeRecord{Used: true}
	if err := s.save(codes); err != nil {
		return false, err
	}
	return true, nil
}

func (s *FileStore) load() (map[string]codeRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]codeRecord), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read code store: %w", err)
	}

	var codes map[string]codeRecord
	if err := json.Unmarshal(data, &codes); err != nil {
		return nil, fmt.Errorf("parse code store: %w", err)
	}
	if codes == nil {
		codes = make(map[string]codeRecord)
	}
	return codes, nil
}

func (s *FileStore) save(codes map[string]codeRecord) error {
	data, err := json.MarshalIndent(codes, "", "  ")
	if err != nil {
		return fmt.Errorf("encode code store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write code store: %w", err)
	}
	return nil
}
