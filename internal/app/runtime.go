package app

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/menuboard/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/menuboard/internal/health"
	"github.com/vladislavdragonenkov/menuboard/internal/messaging"
	"github.com/vladislavdragonenkov/menuboard/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/menuboard/internal/messaging/rabbitmq"
	"github.com/vladislavdragonenkov/menuboard/internal/metrics"
	"github.com/vladislavdragonenkov/menuboard/internal/service/menu"
	"github.com/vladislavdragonenkov/menuboard/internal/service/snapshot"
	"github.com/vladislavdragonenkov/menuboard/internal/storage/file"
	"github.com/vladislavdragonenkov/menuboard/internal/storage/memory"
	"github.com/vladislavdragonenkov/menuboard/internal/storage/postgres"
)

// runtimeDependencies — инфраструктура, общая для всех бинарников.
type runtimeDependencies struct {
	storage        domain.SnapshotStorage
	storageChecker healthcheck.Checker
	publisher      domain.MenuEventPublisher
	closers        []func() error
}

func (d *runtimeDependencies) close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	d.closers = nil
	return errors.Join(errs...)
}

// initRuntimeDependencies поднимает хранилище снимков и брокеры событий.
// Ошибка хранилища фатальна, недоступный брокер только логируется.
func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*runtimeDependencies, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	deps := &runtimeDependencies{}
	if err := deps.initStorage(ctx, cfg, logger); err != nil {
		_ = deps.close()
		return nil, err
	}
	deps.initPublishers(cfg, logger)
	return deps, nil
}

func (d *runtimeDependencies) initStorage(ctx context.Context, cfg Config, logger *log.Entry) error {
	switch cfg.StorageDriver {
	case StorageDriverMemory:
		d.storage = memory.NewSnapshotStorage()
	case StorageDriverFile:
		storage, err := file.NewSnapshotStorage(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("init file storage: %w", err)
		}
		d.storage = storage
	case StorageDriverPostgres:
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return fmt.Errorf("init postgres storage: %w", err)
		}
		d.closers = append(d.closers, store.Close)
		if cfg.PostgresAutoMigrate {
			if err := store.EnsureSchema(ctx); err != nil {
				return fmt.Errorf("apply postgres migrations: %w", err)
			}
		}
		d.storage = postgres.NewSnapshotStorage(store)
	default:
		return fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}

	d.storageChecker = healthcheck.NewStorageChecker("storage", d.storage, cfg.StorageKey)
	logger.WithFields(log.Fields{
		"driver": cfg.StorageDriver,
		"key":    cfg.StorageKey,
	}).Info("snapshot storage initialized")
	return nil
}

func (d *runtimeDependencies) initPublishers(cfg Config, logger *log.Entry) {
	var publishers []domain.MenuEventPublisher

	if brokers := cfg.Brokers(); len(brokers) > 0 {
		producer, err := kafka.NewProducer(brokers)
		if err != nil {
			logger.WithError(err).Warn("failed to create kafka producer, continuing without kafka")
		} else {
			d.closers = append(d.closers, producer.Close)
			publishers = append(publishers, messaging.Resilient("kafka", kafka.NewMenuPublisher(producer, cfg.KafkaTopic), logger))
			logger.WithField("brokers", brokers).Info("kafka producer initialized")
		}
	}

	if cfg.RabbitMQURL != "" {
		publisher, err := rabbitmq.Dial(cfg.RabbitMQURL, cfg.RabbitMQExchange)
		if err != nil {
			logger.WithError(err).Warn("failed to connect to rabbitmq, continuing without rabbitmq")
		} else {
			d.closers = append(d.closers, publisher.Close)
			publishers = append(publishers, messaging.Resilient("rabbitmq", publisher, logger))
			logger.WithField("exchange", cfg.RabbitMQExchange).Info("rabbitmq publisher initialized")
		}
	}

	d.publisher = messaging.Combine(publishers...)
}

// Runtime — собранный сервис меню вместе с инфраструктурой под ним.
type Runtime struct {
	Menu    *menu.Service
	Storage domain.SnapshotStorage
	Checker healthcheck.Checker
	Metrics *metrics.MenuMetrics

	deps *runtimeDependencies
}

// NewRuntime собирает хранилище, брокеры, адаптер снимков и сервис меню.
// Меню стартует с seed; загрузку сохранённого снимка делает вызывающий
// (Restore или Load).
func NewRuntime(ctx context.Context, cfg Config, logger *log.Entry) (*Runtime, error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	deps, err := initRuntimeDependencies(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	m := metrics.NewMenuMetrics()
	adapter := snapshot.NewAdapter(deps.storage,
		snapshot.WithKey(cfg.StorageKey),
		snapshot.WithLogger(logger.WithField("component", "snapshot")),
		snapshot.WithMetrics(m),
	)

	opts := []menu.ServiceOption{
		menu.WithMetrics(m),
		menu.WithLogger(logger.WithField("component", "menu")),
	}
	if deps.publisher != nil {
		opts = append(opts, menu.WithPublisher(deps.publisher))
	}

	return &Runtime{
		Menu:    menu.NewService(menu.NewStore(domain.DefaultMenu()), adapter, opts...),
		Storage: deps.storage,
		Checker: deps.storageChecker,
		Metrics: m,
		deps:    deps,
	}, nil
}

// Close дожидается фоновых сохранений и освобождает подключения.
func (r *Runtime) Close(ctx context.Context) error {
	if r == nil {
		return nil
	}
	flushErr := r.Menu.Flush(ctx)
	return errors.Join(flushErr, r.deps.close())
}
