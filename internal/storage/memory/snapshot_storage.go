package memory

import (
	"context"
	"sync"

	"github.com/vladislavdragonenkov/menuboard/internal/domain"
)

// snapshotStorageInMemory — простая in-memory реализация SnapshotStorage.
type snapshotStorageInMemory struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewSnapshotStorage возвращает in-memory хранилище для локальной разработки и тестов.
func NewSnapshotStorage() domain.SnapshotStorage {
	return &snapshotStorageInMemory{
		items: make(map[string][]byte),
	}
}

// Get возвращает копию значения или ErrSnapshotNotFound, если ключа нет.
func (s *snapshotStorageInMemory) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[key]
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}
	return append([]byte(nil), value...), nil
}

// Set перезаписывает значение целиком.
func (s *snapshotStorageInMemory) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Сохраняем копию, чтобы избежать непредсказуемых мутаций извне.
	s.items[key] = append([]byte(nil), value...)
	return nil
}

// Delete удаляет ключ; отсутствие ключа не ошибка.
func (s *snapshotStorageInMemory) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
	return nil
}

var _ domain.SnapshotStorage = (*snapshotStorageInMemory)(nil)
