package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"todoapi/models"
)

// MemoryTodoStore keeps records in process memory. It backs the test suite
// and serves as a no-database dev mode. A mutex serializes access so every
// single-record operation is atomic, the same guarantee the mongo store
// gets from the server.
type MemoryTodoStore struct {
	mu     sync.Mutex
	lastID int64
	todos  map[int64]models.Todo
}

func NewMemoryTodoStore() *MemoryTodoStore {
	return &MemoryTodoStore{todos: make(map[int64]models.Todo)}
}

func (s *MemoryTodoStore) Get(_ context.Context, id int64) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.todos[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (s *MemoryTodoStore) List(_ context.Context) ([]models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	todos := make([]models.Todo, 0, len(s.todos))
	for _, t := range s.todos {
		todos = append(todos, t)
	}
	sort.Slice(todos, func(i, j int) bool { return todos[i].ID < todos[j].ID })
	return todos, nil
}

func (s *MemoryTodoStore) Insert(_ context.Context, t *models.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	now := time.Now().UTC()
	t.ID = s.lastID
	t.Created = now
	t.Updated = now
	s.todos[t.ID] = *t
	return nil
}

func (s *MemoryTodoStore) Update(_ context.Context, t *models.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.Updated = time.Now().UTC()
	s.todos[t.ID] = *t
	return nil
}

func (s *MemoryTodoStore) Delete(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.todos[id]; !ok {
		return false, nil
	}
	delete(s.todos, id)
	return true, nil
}

// MemoryContactStore is the in-memory counterpart of MongoContactStore.
type MemoryContactStore struct {
	mu       sync.Mutex
	lastID   int64
	contacts map[int64]models.Contact
}

func NewMemoryContactStore() *MemoryContactStore {
	return &MemoryContactStore{contacts: make(map[int64]models.Contact)}
}

func (s *MemoryContactStore) List(_ context.Context) ([]models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	contacts := make([]models.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		contacts = append(contacts, c)
	}
	sort.Slice(contacts, func(i, j int) bool { return contacts[i].ID < contacts[j].ID })
	return contacts, nil
}

func (s *MemoryContactStore) Insert(_ context.Context, c *models.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	c.ID = s.lastID
	s.contacts[c.ID] = *c
	return nil
}

func (s *MemoryContactStore) PhoneInUse(_ context.Context, phone string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.contacts {
		if c.PhoneNumber == phone {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryContactStore) EmailInUse(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.contacts {
		if c.Email == email {
			return true, nil
		}
	}
	return false, nil
}
