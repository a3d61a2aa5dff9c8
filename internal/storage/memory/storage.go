package memory

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/mcoot/reversigame/internal/storage"
)

// Storage is an in-memory implementation of the directory interface
type Storage struct {
	mu sync.RWMutex

	records map[string]map[string]string
	sets    map[string]map[string]struct{}
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		records: make(map[string]map[string]string),
		sets:    make(map[string]map[string]struct{}),
	}
}

// Ensure Storage implements the interface
var _ storage.Directory = (*Storage)(nil)

// Record operations

func (s *Storage) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.records[key]; ok {
		return true, nil
	}
	_, ok := s.sets[key]
	return ok, nil
}

func (s *Storage) SetFields(ctx context.Context, key string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setFieldsLocked(key, fields)
	return nil
}

func (s *Storage) CreateFields(ctx context.Context, key string, fields map[string]any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[key]; ok {
		return false, nil
	}
	s.setFieldsLocked(key, fields)
	return true, nil
}

func (s *Storage) GetFields(ctx context.Context, key string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.records[key]))
	for f, v := range s.records[key] {
		out[f] = v
	}
	return out, nil
}

func (s *Storage) IncrementField(ctx context.Context, key, field string, delta int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[key]
	if !ok {
		rec = make(map[string]string)
		s.records[key] = rec
	}

	var cur int64
	if v, ok := rec[field]; ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("field %s of %s is not an integer", field, key)
		}
		cur = n
	}
	cur += delta
	rec[field] = strconv.FormatInt(cur, 10)
	return cur, nil
}

// Set operations

func (s *Storage) SetAdd(ctx context.Context, setKey, member string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.sets[setKey]
	if !ok {
		set = make(map[string]struct{})
		s.sets[setKey] = set
	}
	set[member] = struct{}{}
	return nil
}

func (s *Storage) SetContains(ctx context.Context, setKey, member string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sets[setKey][member]
	return ok, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return nil
}

// setFieldsLocked stores values the way Redis would: as strings
func (s *Storage) setFieldsLocked(key string, fields map[string]any) {
	rec, ok := s.records[key]
	if !ok {
		rec = make(map[string]string, len(fields))
		s.records[key] = rec
	}
	for f, v := range fields {
		rec[f] = fmt.Sprint(v)
	}
}
