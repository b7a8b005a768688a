package cron

import "sync"

// Tab (crontab is short for cron table) holds the dispatcher's tasks in
// registration order.
type Tab interface {
	// Appends a task
	Put(Task) error

	// Returns all tasks in registration order
	All() ([]Task, error)

	// Removes the first task with the given id and returns its index
	Remove(id int) (int, error)

	// Clears all tasks
	Clear() error
}

// NewMemoryTab returns an in-memory Tab. This is a non-persistent storage.
func NewMemoryTab() *MemoryTab {
	return &MemoryTab{
		mu:    sync.RWMutex{},
		tasks: []Task{},
	}
}

// MemoryTab is a simple storage backend.
type MemoryTab struct {
	mu    sync.RWMutex
	tasks []Task
}

// Put appends a task to the tab.
func (m *MemoryTab) Put(t Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tasks = append(m.tasks, t)
	return nil
}

// Remove deletes the first task with the given id, preserving the order of the rest.
func (m *MemoryTab) Remove(id int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, t := range m.tasks {
		if t.ID == id {
			m.tasks = append(m.tasks[:i:i], m.tasks[i+1:]...)
			return i, nil
		}
	}
	return -1, ErrTaskNotFound
}

// Clear deletes all tasks from the tab.
func (m *MemoryTab) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tasks = []Task{}
	return nil
}

// All returns a copy of the tasks in registration order.
func (m *MemoryTab) All() ([]Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]Task, len(m.tasks))
	copy(res, m.tasks)
	return res, nil
}
