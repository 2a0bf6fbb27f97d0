package service_test

import (
	"context"
	"errors"
	"sync"
)

// MockCache records calls and can be forced to fail.
type MockCache struct {
	mu         sync.Mutex
	Data       map[string]string
	GetCalls   int
	SetCalls   int
	ForceError bool
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string]string)}
}

func (m *MockCache) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls++
	if m.ForceError {
		return "", false, errors.New("get error")
	}
	val, ok := m.Data[key]
	return val, ok, nil
}

func (m *MockCache) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls++
	if m.ForceError {
		return errors.New("set error")
	}
	m.Data[key] = value
	return nil
}
