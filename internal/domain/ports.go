package domain

import (
	"context"
	"time"
)

// SnapshotStorage — долговременное key-value хранилище для снимка меню.
type SnapshotStorage interface {
	// Get возвращает значение по ключу или ErrSnapshotNotFound, если ключ не записан.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set целиком перезаписывает значение по ключу.
	Set(ctx context.Context, key string, value []byte) error
	// Delete удаляет ключ; удаление отсутствующего ключа не ошибка.
	Delete(ctx context.Context, key string) error
}

// MenuEventPublisher доставляет уведомления об изменениях меню внешним потребителям.
type MenuEventPublisher interface {
	// Publish передаёт событие наружу; вызывающий код логирует ошибку и продолжает работу.
	Publish(ctx context.Context, event MenuEvent) error
}

// MenuEventType задаёт константы типов событий меню для логов и брокеров.
type MenuEventType string

const (
	MenuEventDishAdded   MenuEventType = "dish.added"
	MenuEventDishRemoved MenuEventType = "dish.removed"
	MenuEventMenuReset   MenuEventType = "menu.reset"
)

// MenuEvent описывает подтверждённое изменение меню.
type MenuEvent struct {
	Type      MenuEventType `json:"event_type"`
	DishID    string        `json:"dish_id,omitempty"`
	Dish      *Dish         `json:"dish,omitempty"`
	Stats     MenuStats     `json:"stats"`
	Timestamp time.Time     `json:"timestamp"`
}

// NewMenuEvent создаёт событие с текущим временем.
func NewMenuEvent(eventType MenuEventType, dish *Dish, stats MenuStats) MenuEvent {
	event := MenuEvent{
		Type:      eventType,
		Dish:      dish,
		Stats:     stats,
		Timestamp: time.Now().UTC(),
	}
	if dish != nil {
		event.DishID = dish.ID
	}
	return event
}
