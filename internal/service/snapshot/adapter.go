package snapshot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/menuboard/internal/domain"
	"github.com/vladislavdragonenkov/menuboard/internal/metrics"
)

const (
	// DefaultKey — фиксированный ключ, под которым лежит снимок меню.
	DefaultKey = "@menu_data"

	defaultOpTimeout = 5 * time.Second
)

// Replacer — получатель восстановленного меню.
type Replacer interface {
	Replace(dishes []domain.Dish)
}

// Adapter сохраняет и восстанавливает меню целиком под одним ключом.
// Ошибки хранилища логируются и не прерывают работу сессии.
type Adapter struct {
	storage domain.SnapshotStorage
	key     string
	timeout time.Duration
	logger  *log.Entry
	metrics *metrics.MenuMetrics

	seqMu   sync.Mutex
	nextSeq uint64

	// writeMu сериализует записи, written хранит номер последнего записанного снимка.
	writeMu sync.Mutex
	written uint64

	inflight sync.WaitGroup
}

// Option настраивает Adapter.
type Option func(*Adapter)

// WithKey переопределяет ключ снимка.
func WithKey(key string) Option {
	return func(a *Adapter) {
		if key != "" {
			a.key = key
		}
	}
}

// WithLogger задаёт logger адаптера.
func WithLogger(logger *log.Entry) Option {
	return func(a *Adapter) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithMetrics включает метрики сохранения.
func WithMetrics(m *metrics.MenuMetrics) Option {
	return func(a *Adapter) {
		a.metrics = m
	}
}

// WithTimeout ограничивает длительность одного обращения к хранилищу.
func WithTimeout(timeout time.Duration) Option {
	return func(a *Adapter) {
		if timeout > 0 {
			a.timeout = timeout
		}
	}
}

// NewAdapter создаёт адаптер поверх хранилища.
func NewAdapter(storage domain.SnapshotStorage, opts ...Option) *Adapter {
	a := &Adapter{
		storage: storage,
		key:     DefaultKey,
		timeout: defaultOpTimeout,
		logger:  log.WithField("component", "snapshot"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Key возвращает ключ снимка.
func (a *Adapter) Key() string {
	return a.key
}

// Load читает снимок. false означает "сохранённых данных нет":
// ключ отсутствует, хранилище недоступно или значение повреждено.
func (a *Adapter) Load(ctx context.Context) ([]domain.Dish, bool) {
	dishes, err := a.load(ctx)
	if err != nil {
		return nil, false
	}
	return dishes, true
}

// Restore асинхронно загружает снимок и целиком заменяет им меню target.
// Пока загрузка не завершилась, target показывает то, что в нём было (стартовый набор).
func (a *Adapter) Restore(ctx context.Context, target Replacer) *Pending {
	pending := newPending()
	ctx = context.WithoutCancel(ctx)

	a.inflight.Add(1)
	go func() {
		defer a.inflight.Done()

		dishes, err := a.load(ctx)
		if err == nil {
			target.Replace(dishes)
		}
		pending.complete(err)
	}()

	return pending
}

func (a *Adapter) load(ctx context.Context) ([]domain.Dish, error) {
	opCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	logger := a.logger.WithField("key", a.key)

	data, err := a.storage.Get(opCtx, a.key)
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			a.recordLoad(metrics.ResultMissing)
			logger.Info("saved menu not found, keeping default menu")
			return nil, err
		}
		a.recordLoad(metrics.ResultError)
		logger.WithError(err).Warn("failed to load saved menu")
		return nil, fmt.Errorf("load menu snapshot: %w", err)
	}

	dishes, err := Decode(data)
	if err != nil {
		a.recordLoad(metrics.ResultError)
		logger.WithError(err).Warn("failed to parse saved menu")
		return nil, err
	}

	a.recordLoad(metrics.ResultOK)
	logger.WithField("dishes", len(dishes)).Debug("saved menu loaded")
	return dishes, nil
}

// Save сериализует меню сразу и записывает его в фоне.
// Более старый снимок никогда не перезаписывает более новый.
func (a *Adapter) Save(ctx context.Context, dishes []domain.Dish) *Pending {
	payload, err := Encode(dishes)
	if err != nil {
		a.logger.WithError(err).Warn("failed to encode menu snapshot")
		a.recordSave(metrics.ResultError, 0)
		return Completed(err)
	}

	a.seqMu.Lock()
	a.nextSeq++
	seq := a.nextSeq
	a.seqMu.Unlock()

	pending := newPending()
	ctx = context.WithoutCancel(ctx)

	a.inflight.Add(1)
	go func() {
		defer a.inflight.Done()
		pending.complete(a.write(ctx, seq, payload))
	}()

	return pending
}

func (a *Adapter) write(ctx context.Context, seq uint64, payload []byte) error {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	logger := a.logger.WithFields(log.Fields{"key": a.key, "seq": seq})

	if seq < a.written {
		a.recordSave(metrics.ResultSkipped, 0)
		logger.Debug("newer menu snapshot already written, skipping")
		return nil
	}

	opCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	if err := a.storage.Set(opCtx, a.key, payload); err != nil {
		a.recordSave(metrics.ResultError, time.Since(start))
		logger.WithError(err).Warn("failed to save menu")
		return fmt.Errorf("save menu snapshot: %w", err)
	}

	a.written = seq
	a.recordSave(metrics.ResultOK, time.Since(start))
	logger.WithField("bytes", len(payload)).Debug("menu snapshot saved")
	return nil
}

// Clear удаляет снимок; незавершённые более ранние записи будут пропущены.
func (a *Adapter) Clear(ctx context.Context) error {
	a.seqMu.Lock()
	a.nextSeq++
	seq := a.nextSeq
	a.seqMu.Unlock()

	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	opCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	if err := a.storage.Delete(opCtx, a.key); err != nil {
		a.logger.WithError(err).WithField("key", a.key).Warn("failed to clear saved menu")
		return fmt.Errorf("clear menu snapshot: %w", err)
	}
	a.written = seq
	return nil
}

// Flush дожидается завершения всех фоновых операций.
func (a *Adapter) Flush(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		a.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *Adapter) recordLoad(result string) {
	if a.metrics != nil {
		a.metrics.RecordSnapshotLoad(result)
	}
}

func (a *Adapter) recordSave(result string, duration time.Duration) {
	if a.metrics != nil {
		a.metrics.RecordSnapshotSave(result, duration)
	}
}
