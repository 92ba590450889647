package menu

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/menuboard/internal/domain"
)

// Store — единственный источник правды о меню в рамках процесса.
// Меню меняется только через AddDish, RemoveDish и Replace.
type Store struct {
	mu     sync.RWMutex
	dishes []domain.Dish
	newID  func() string
}

// StoreOption настраивает Store.
type StoreOption func(*Store)

// WithIDGenerator подменяет генератор идентификаторов (по умолчанию UUIDv4).
func WithIDGenerator(gen func() string) StoreOption {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// NewStore создаёт хранилище с начальным набором блюд.
func NewStore(seed []domain.Dish, opts ...StoreOption) *Store {
	s := &Store{
		dishes: cloneDishes(seed),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddDish проверяет ввод и добавляет блюдо в конец меню.
// При ошибке валидации меню не меняется, а domain.IsValidation(err) == true.
func (s *Store) AddDish(draft domain.DishDraft) (domain.Dish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dish, errs := draft.Build(s.nextID())
	if len(errs) > 0 {
		return domain.Dish{}, errors.Join(errs...)
	}

	s.dishes = append(s.dishes, dish)
	return dish, nil
}

const maxIDAttempts = 8

// nextID выдаёт идентификатор, которого ещё нет в меню.
func (s *Store) nextID() string {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := s.newID()
		if id != "" && s.indexOf(id) < 0 {
			return id
		}
	}
	return uuid.NewString()
}

// RemoveDish удаляет блюдо по id. Для отсутствующего id возвращается false без ошибки.
func (s *Store) RemoveDish(id string) (domain.Dish, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Dish{}, false
	}

	removed := s.dishes[idx]
	next := make([]domain.Dish, 0, len(s.dishes)-1)
	next = append(next, s.dishes[:idx]...)
	next = append(next, s.dishes[idx+1:]...)
	s.dishes = next
	return removed, true
}

// Get возвращает блюдо по id.
func (s *Store) Get(id string) (domain.Dish, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Dish{}, false
	}
	return s.dishes[idx], true
}

func (s *Store) indexOf(id string) int {
	for i := range s.dishes {
		if s.dishes[i].ID == id {
			return i
		}
	}
	return -1
}

// Stats пересчитывает статистику при каждом вызове.
func (s *Store) Stats() domain.MenuStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.ComputeStats(s.dishes)
}

// FilterByCourse возвращает блюда раздела, для AnyCourse всё меню.
func (s *Store) FilterByCourse(course domain.Course) []domain.Dish {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.FilterByCourse(s.dishes, course)
}

// Snapshot возвращает копию текущего меню.
func (s *Store) Snapshot() []domain.Dish {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneDishes(s.dishes)
}

// Len возвращает количество блюд.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.dishes)
}

// Replace целиком заменяет меню (используется при восстановлении снимка).
func (s *Store) Replace(dishes []domain.Dish) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dishes = cloneDishes(dishes)
}

func cloneDishes(dishes []domain.Dish) []domain.Dish {
	out := make([]domain.Dish, len(dishes))
	copy(out, dishes)
	return out
}
