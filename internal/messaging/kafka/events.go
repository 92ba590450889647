package kafka

import (
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"github.com/vladislavdragonenkov/menuboard/internal/domain"
)

// TopicMenuEvents — topic событий изменения меню по умолчанию.
const TopicMenuEvents = "menu.dish.events"

// Kafka headers событий меню
const (
	HeaderEventType = "x-event-type"
	HeaderDishID    = "x-dish-id"
)

// eventKey возвращает ключ партиционирования: id блюда, а для событий без блюда тип события.
func eventKey(event domain.MenuEvent) string {
	if event.DishID != "" {
		return event.DishID
	}
	return string(event.Type)
}

// ParseMenuEvent разбирает событие меню из сообщения.
func ParseMenuEvent(message *sarama.ConsumerMessage) (domain.MenuEvent, error) {
	var event domain.MenuEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return domain.MenuEvent{}, fmt.Errorf("failed to unmarshal menu event: %w", err)
	}
	if event.Type == "" {
		return domain.MenuEvent{}, fmt.Errorf("menu event without type at offset %d", message.Offset)
	}
	return event, nil
}
