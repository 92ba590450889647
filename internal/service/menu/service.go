package menu

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/menuboard/internal/domain"
	"github.com/vladislavdragonenkov/menuboard/internal/metrics"
	"github.com/vladislavdragonenkov/menuboard/internal/service/snapshot"
)

const defaultPublishTimeout = 5 * time.Second

// Service связывает Store с сохранением снимка, событиями и метриками.
// Каждая подтверждённая мутация сохраняет меню целиком и публикует событие.
type Service struct {
	store     *Store
	snapshots *snapshot.Adapter
	publisher domain.MenuEventPublisher
	metrics   *metrics.MenuMetrics
	logger    *log.Entry
	seed      func() []domain.Dish

	// mutateMu держит мутацию, снимок и постановку записи в очередь вместе,
	// чтобы номера записей шли в том же порядке, что и изменения.
	mutateMu   sync.Mutex
	publishing sync.WaitGroup
}

// ServiceOption настраивает Service.
type ServiceOption func(*Service)

// WithPublisher включает публикацию событий об изменениях меню.
func WithPublisher(publisher domain.MenuEventPublisher) ServiceOption {
	return func(s *Service) {
		s.publisher = publisher
	}
}

// WithMetrics включает метрики меню.
func WithMetrics(m *metrics.MenuMetrics) ServiceOption {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithLogger задаёт logger сервиса.
func WithLogger(logger *log.Entry) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSeed задаёт набор блюд, к которому возвращается Reset.
func WithSeed(seed func() []domain.Dish) ServiceOption {
	return func(s *Service) {
		if seed != nil {
			s.seed = seed
		}
	}
}

// NewService конструирует сервис меню.
func NewService(store *Store, snapshots *snapshot.Adapter, opts ...ServiceOption) *Service {
	s := &Service{
		store:     store,
		snapshots: snapshots,
		logger:    log.WithField("component", "menu"),
		seed:      domain.DefaultMenu,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics != nil {
		s.metrics.SetMenuSize(store.Len())
	}
	return s
}

// Restore запускает фоновую загрузку сохранённого меню.
// До её завершения пользователи видят стартовый набор.
func (s *Service) Restore(ctx context.Context) *snapshot.Pending {
	return s.snapshots.Restore(ctx, replacerFunc(func(dishes []domain.Dish) {
		s.store.Replace(dishes)
		if s.metrics != nil {
			s.metrics.SetMenuSize(len(dishes))
		}
		s.logger.WithField("dishes", len(dishes)).Info("saved menu restored")
	}))
}

// Load синхронно подгружает сохранённое меню. При false данных нет и меню не тронуто.
func (s *Service) Load(ctx context.Context) bool {
	dishes, ok := s.snapshots.Load(ctx)
	if !ok {
		return false
	}
	s.store.Replace(dishes)
	if s.metrics != nil {
		s.metrics.SetMenuSize(len(dishes))
	}
	return true
}

// AddDish добавляет блюдо и запускает сохранение снимка.
// Ошибка возвращается только для невалидного ввода.
func (s *Service) AddDish(ctx context.Context, draft domain.DishDraft) (domain.Dish, *snapshot.Pending, error) {
	s.mutateMu.Lock()
	defer s.mutateMu.Unlock()

	dish, err := s.store.AddDish(draft)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordValidationFailure()
		}
		s.logger.WithError(err).Debug("dish rejected")
		return domain.Dish{}, nil, err
	}

	dishes := s.store.Snapshot()
	stats := domain.ComputeStats(dishes)
	if s.metrics != nil {
		s.metrics.RecordDishAdded(len(dishes))
	}
	s.logger.WithFields(log.Fields{
		"dish_id": dish.ID,
		"course":  dish.Course,
		"dishes":  len(dishes),
	}).Info("dish added")

	pending := s.snapshots.Save(ctx, dishes)
	s.publish(ctx, domain.NewMenuEvent(domain.MenuEventDishAdded, &dish, stats))
	return dish, pending, nil
}

// RemoveDish удаляет блюдо. Подтверждение у пользователя запрашивает вызывающий код.
// Для отсутствующего id меню не меняется и сохранение не запускается.
func (s *Service) RemoveDish(ctx context.Context, id string) (bool, *snapshot.Pending) {
	s.mutateMu.Lock()
	defer s.mutateMu.Unlock()

	removed, ok := s.store.RemoveDish(id)
	if !ok {
		s.logger.WithField("dish_id", id).Debug("dish to remove not found")
		return false, snapshot.Completed(nil)
	}

	dishes := s.store.Snapshot()
	stats := domain.ComputeStats(dishes)
	if s.metrics != nil {
		s.metrics.RecordDishRemoved(len(dishes))
	}
	s.logger.WithFields(log.Fields{
		"dish_id": removed.ID,
		"dishes":  len(dishes),
	}).Info("dish removed")

	pending := s.snapshots.Save(ctx, dishes)
	s.publish(ctx, domain.NewMenuEvent(domain.MenuEventDishRemoved, &removed, stats))
	return true, pending
}

// Reset удаляет сохранённый снимок и возвращает меню к стартовому набору.
func (s *Service) Reset(ctx context.Context) error {
	s.mutateMu.Lock()
	defer s.mutateMu.Unlock()

	if err := s.snapshots.Clear(ctx); err != nil {
		return err
	}

	seed := s.seed()
	s.store.Replace(seed)
	if s.metrics != nil {
		s.metrics.SetMenuSize(len(seed))
	}
	s.logger.Info("menu reset to default")

	s.publish(ctx, domain.NewMenuEvent(domain.MenuEventMenuReset, nil, domain.ComputeStats(seed)))
	return nil
}

// Get возвращает блюдо по id.
func (s *Service) Get(id string) (domain.Dish, bool) {
	return s.store.Get(id)
}

// Stats возвращает актуальную статистику меню.
func (s *Service) Stats() domain.MenuStats {
	return s.store.Stats()
}

// FilterByCourse возвращает блюда раздела, для AnyCourse всё меню.
func (s *Service) FilterByCourse(course domain.Course) []domain.Dish {
	return s.store.FilterByCourse(course)
}

// Snapshot возвращает копию меню.
func (s *Service) Snapshot() []domain.Dish {
	return s.store.Snapshot()
}

// Flush дожидается фоновых сохранений и публикаций.
func (s *Service) Flush(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.publishing.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return s.snapshots.Flush(ctx)
}

func (s *Service) publish(ctx context.Context, event domain.MenuEvent) {
	if s.publisher == nil {
		return
	}

	ctx = context.WithoutCancel(ctx)
	s.publishing.Add(1)
	go func() {
		defer s.publishing.Done()

		pubCtx, cancel := context.WithTimeout(ctx, defaultPublishTimeout)
		defer cancel()

		result := metrics.ResultOK
		if err := s.publisher.Publish(pubCtx, event); err != nil {
			result = metrics.ResultError
			s.logger.WithError(err).WithFields(log.Fields{
				"event_type": event.Type,
				"dish_id":    event.DishID,
			}).Warn("failed to publish menu event")
		}
		if s.metrics != nil {
			s.metrics.RecordEventPublished(string(event.Type), result)
		}
	}()
}

type replacerFunc func(dishes []domain.Dish)

func (f replacerFunc) Replace(dishes []domain.Dish) { f(dishes) }
