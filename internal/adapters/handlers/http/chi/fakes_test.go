package chi_test

import (
	"bytes"
	"context"
	"io"
	"sync"
	"webapp/internal/core/domain"

	"github.com/google/uuid"
)

type memStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{objects: map[string][]byte{}}
}

func (s *memStorage) PutObject(_ context.Context, key string, _ string, content io.Reader, _ int64) error {
	buf := &bytes.Buffer{}
	if _, err := io.Copy(buf, content); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = buf.Bytes()
	return nil
}

func (s *memStorage) DeleteObject(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *memStorage) ObjectExists(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok, nil
}

func (s *memStorage) object(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	content, ok := s.objects[key]
	return content, ok
}

type memRepository struct {
	mu        sync.Mutex
	records   map[uuid.UUID]domain.FileRecord
	createErr error
}

func newMemRepository() *memRepository {
	return &memRepository{records: map[uuid.UUID]domain.FileRecord{}}
}

func (r *memRepository) Create(_ context.Context, record domain.FileRecord) (*domain.FileRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	id := uuid.MustParse(record.ID)
	if _, ok := r.records[id]; ok {
		return nil, domain.ErrAlreadyExists
	}
	r.records[id] = record
	return &record, nil
}

func (r *memRepository) FindByID(_ context.Context, id uuid.UUID) (*domain.FileRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return nil, domain.ErrFileNotFound
	}
	return &record, nil
}

func (r *memRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return domain.ErrFileNotFound
	}
	delete(r.records, id)
	return nil
}

type memHeartbeats struct {
	mu    sync.Mutex
	count int
	err   error
}

func (h *memHeartbeats) Create(_ context.Context, _ domain.HeartbeatRecord) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.err != nil {
		return h.err
	}
	h.count++
	return nil
}
