package testutil

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/udisondev/invfacade/internal/model"
)

// ErrSimulated is a sentinel error for testing error handling paths
var ErrSimulated = errors.New("simulated error for testing")

// ContextWithTimeout создаёт context с timeout и автоматически отменяет его при завершении теста.
func ContextWithTimeout(t testing.TB, duration time.Duration) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	t.Cleanup(cancel)

	return ctx
}

// MockSnapshotRepository: in-memory хранилище снимка инвентаря для unit тестов.
// Не требует реального PostgreSQL.
type MockSnapshotRepository struct {
	mu       sync.Mutex
	snapshot *model.UserInventory

	// Err, если не nil, возвращается всеми методами.
	Err error

	loads, saves, deletes int
}

// NewMockSnapshotRepository создаёт репозиторий с начальным снимком (может быть nil).
func NewMockSnapshotRepository(initial *model.UserInventory) *MockSnapshotRepository {
	return &MockSnapshotRepository{snapshot: initial.Clone()}
}

// Load возвращает копию сохранённого снимка или nil.
func (m *MockSnapshotRepository) Load(ctx context.Context) (*model.UserInventory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.snapshot.Clone(), nil
}

// Save сохраняет копию снимка.
func (m *MockSnapshotRepository) Save(ctx context.Context, inv *model.UserInventory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.Err != nil {
		return m.Err
	}
	m.snapshot = inv.Clone()
	return nil
}

// Delete удаляет снимок.
func (m *MockSnapshotRepository) Delete(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	if m.Err != nil {
		return m.Err
	}
	m.snapshot = nil
	return nil
}

// Snapshot возвращает копию текущего снимка.
func (m *MockSnapshotRepository) Snapshot() *model.UserInventory {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot.Clone()
}

// Calls возвращает количество вызовов Load, Save и Delete.
func (m *MockSnapshotRepository) Calls() (loads, saves, deletes int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loads, m.saves, m.deletes
}

// MockEntryStore хранит in-memory список персонажей.
type MockEntryStore struct {
	mu      sync.Mutex
	entries []model.CharacterEntry

	// Err, если не nil, возвращается всеми методами.
	Err error
}

// NewMockEntryStore создаёт store с начальными записями.
func NewMockEntryStore(entries ...model.CharacterEntry) *MockEntryStore {
	return &MockEntryStore{entries: slices.Clone(entries)}
}

// List возвращает копию списка.
func (m *MockEntryStore) List(ctx context.Context) ([]model.CharacterEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return slices.Clone(m.entries), nil
}

// Upsert добавляет запись или заменяет запись с тем же content id.
func (m *MockEntryStore) Upsert(ctx context.Context, e model.CharacterEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	for i := range m.entries {
		if m.entries[i].ContentID == e.ContentID {
			m.entries[i] = e
			return nil
		}
	}
	m.entries = append(m.entries, e)
	return nil
}

// Delete удаляет запись по content id.
func (m *MockEntryStore) Delete(ctx context.Context, contentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.entries = slices.DeleteFunc(m.entries, func(e model.CharacterEntry) bool {
		return e.ContentID == contentID
	})
	return nil
}

// MockTranslator возвращает текст из Messages, для неизвестных ключей сам ключ.
type MockTranslator struct {
	Messages map[string]string
}

// Instant implements the translator used by the inventory facade.
func (m MockTranslator) Instant(key string) string {
	if text, ok := m.Messages[key]; ok {
		return text
	}
	return key
}
