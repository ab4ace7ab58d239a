package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"sync"
)

// MockObjectStorage is an in-memory ObjectStorage for testing
type MockObjectStorage struct {
	mu    sync.RWMutex
	files map[string][]byte // key -> file content
}

// NewMockObjectStorage creates an empty mock storage
func NewMockObjectStorage() *MockObjectStorage {
	return &MockObjectStorage{files: make(map[string][]byte)}
}

// UploadFile simulates uploading a file
func (m *MockObjectStorage) UploadFile(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	key := fmt.Sprintf("catalog/mock_%s", fileHeader.Filename)

	m.mu.Lock()
	m.files[key] = content
	m.mu.Unlock()
	return key, nil
}

// GetPresignedURL returns a deterministic fake URL for a stored key
func (m *MockObjectStorage) GetPresignedURL(key string) (string, error) {
	if key == "" {
		return "", nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.files[key]; !ok {
		return "", fmt.Errorf("key not found: %s", key)
	}
	return "https://mock-storage.example.com/" + key, nil
}

// DeleteFile removes a stored key; deleting a missing key is a no-op
func (m *MockObjectStorage) DeleteFile(key string) error {
	m.mu.Lock()
	delete(m.files, key)
	m.mu.Unlock()
	return nil
}

// HasFile reports whether a key is stored (test helper)
func (m *MockObjectStorage) HasFile(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.files[key]
	return ok
}
