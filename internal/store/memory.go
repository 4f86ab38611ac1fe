package store

import (
	"context"
	"sync"

	"dedup-service/internal/dedup/model"
)

// Memory — документы в памяти процесса (тесты, DB_PATH=memory).
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]model.ExistingDocument
}

func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]model.ExistingDocument)}
}

// Add регистрирует завершённую загрузку.
func (m *Memory) Add(projectID string, docs ...model.ExistingDocument) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[projectID] = append(m.docs[projectID], docs...)
}

func (m *Memory) ListDocuments(_ context.Context, projectID string) ([]model.ExistingDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	src := m.docs[projectID]
	out := make([]model.ExistingDocument, len(src))
	copy(out, src)
	return out, nil
}
