package todos

import (
	"context"
	"errors"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryStore is an in-process Store used by service and handler tests.
type memoryStore struct {
	mu    sync.Mutex
	todos map[primitive.ObjectID]Todo
	order []primitive.ObjectID
	err   error // returned by every call when set
}

var _ Store = (*memoryStore)(nil)

var errStoreDown = errors.New("connection refused")

func newMemoryStore() *memoryStore {
	return &memoryStore{todos: map[primitive.ObjectID]Todo{}}
}

func (m *memoryStore) Save(_ context.Context, todo *Todo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}

	if todo.ID.IsZero() {
		todo.ID = primitive.NewObjectID()
		m.order = append(m.order, todo.ID)
	}
	m.todos[todo.ID] = *todo
	return nil
}

func (m *memoryStore) FindByID(_ context.Context, id string) (*Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	todo, ok := m.todos[objectID]
	if !ok {
		return nil, nil
	}
	return &todo, nil
}

func (m *memoryStore) FindAll(_ context.Context) ([]Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	out := make([]Todo, 0, len(m.todos))
	for _, id := range m.order {
		if todo, ok := m.todos[id]; ok {
			out = append(out, todo)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].DueDate, out[j].DueDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	return out, nil
}

func (m *memoryStore) ExistsByID(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}

	objectID, err := parseID(id)
	if err != nil {
		return false, err
	}
	_, ok := m.todos[objectID]
	return ok, nil
}

func (m *memoryStore) DeleteByID(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}

	objectID, err := parseID(id)
	if err != nil {
		return err
	}
	delete(m.todos, objectID)
	return nil
}

func (m *memoryStore) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.todos)
}
