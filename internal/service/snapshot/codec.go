package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/menuboard/internal/domain"
)

// Encode сериализует меню целиком. Пустое меню кодируется как [].
func Encode(dishes []domain.Dish) ([]byte, error) {
	if dishes == nil {
		dishes = []domain.Dish{}
	}
	data, err := json.Marshal(dishes)
	if err != nil {
		return nil, fmt.Errorf("marshal menu snapshot: %w", err)
	}
	return data, nil
}

// Decode разбирает сохранённый снимок. Любое повреждённое значение
// возвращается как ErrSnapshotMalformed.
func Decode(data []byte) ([]domain.Dish, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("%w: empty value", domain.ErrSnapshotMalformed)
	}

	var dishes []domain.Dish
	if err := json.Unmarshal(trimmed, &dishes); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSnapshotMalformed, err)
	}

	seen := make(map[string]struct{}, len(dishes))
	for idx, dish := range dishes {
		if errs := dish.ValidateStored(); len(errs) > 0 {
			return nil, fmt.Errorf("%w: dish[%d]: %w", domain.ErrSnapshotMalformed, idx, errors.Join(errs...))
		}
		if _, dup := seen[dish.ID]; dup {
			return nil, fmt.Errorf("%w: dish[%d]: duplicate id %q", domain.ErrSnapshotMalformed, idx, dish.ID)
		}
		seen[dish.ID] = struct{}{}
	}

	return dishes, nil
}
