package messaging

import (
	"context"
	"errors"

	"github.com/vladislavdragonenkov/menuboard/internal/domain"
)

// Fanout рассылает событие всем паблишерам; ошибка одного не мешает остальным.
type Fanout []domain.MenuEventPublisher

// Publish возвращает объединённую ошибку всех неудачных публикаций.
func (f Fanout) Publish(ctx context.Context, event domain.MenuEvent) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Combine собирает паблишеры в один. Nil пропускаются; при пустом списке возвращается nil.
func Combine(publishers ...domain.MenuEventPublisher) domain.MenuEventPublisher {
	var out Fanout
	for _, p := range publishers {
		if p != nil {
			out = append(out, p)
		}
	}
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	default:
		return out
	}
}
