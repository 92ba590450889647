package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Значения label result для счётчиков хранилища и брокеров.
const (
	ResultOK      = "ok"
	ResultError   = "error"
	ResultMissing = "missing"
	ResultSkipped = "skipped"
)

// MenuMetrics содержит метрики меню и слоя сохранения снимков.
type MenuMetrics struct {
	// Счётчики операций над меню
	dishesAdded        prometheus.Counter
	dishesRemoved      prometheus.Counter
	validationFailures prometheus.Counter

	// Текущее состояние меню
	menuDishes prometheus.Gauge

	// Сохранение и загрузка снимка
	snapshotSaves        *prometheus.CounterVec
	snapshotLoads        *prometheus.CounterVec
	snapshotSaveDuration prometheus.Histogram

	// Экраны и события
	screenViews     *prometheus.CounterVec
	eventsPublished *prometheus.CounterVec
}

// NewMenuMetrics создаёт метрики в реестре по умолчанию.
func NewMenuMetrics() *MenuMetrics {
	return NewMenuMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewMenuMetricsWithRegisterer создаёт метрики в переданном реестре (удобно в тестах).
func NewMenuMetricsWithRegisterer(registerer prometheus.Registerer) *MenuMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &MenuMetrics{
		dishesAdded: registerCounter(registerer, prometheus.CounterOpts{
			Name: "menu_dishes_added_total",
			Help: "Total number of dishes added to the menu",
		}),
		dishesRemoved: registerCounter(registerer, prometheus.CounterOpts{
			Name: "menu_dishes_removed_total",
			Help: "Total number of dishes removed from the menu",
		}),
		validationFailures: registerCounter(registerer, prometheus.CounterOpts{
			Name: "menu_validation_failures_total",
			Help: "Total number of rejected add-dish attempts",
		}),
		menuDishes: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "menu_dishes",
			Help: "Number of dishes currently on the menu",
		}),
		snapshotSaves: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "menu_snapshot_saves_total",
			Help: "Total number of snapshot writes grouped by result",
		}, []string{"result"}),
		snapshotLoads: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "menu_snapshot_loads_total",
			Help: "Total number of snapshot reads grouped by result",
		}, []string{"result"}),
		snapshotSaveDuration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "menu_snapshot_save_duration_seconds",
			Help:    "Duration of snapshot writes in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}),
		screenViews: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "menu_screen_views_total",
			Help: "Total number of rendered screens grouped by screen",
		}, []string{"screen"}),
		eventsPublished: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "menu_events_published_total",
			Help: "Total number of menu change events grouped by type and result",
		}, []string{"type", "result"}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	collector := prometheus.NewGauge(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Gauge)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}

// RecordDishAdded увеличивает счётчик добавленных блюд и обновляет размер меню.
func (m *MenuMetrics) RecordDishAdded(menuSize int) {
	m.dishesAdded.Inc()
	m.SetMenuSize(menuSize)
}

// RecordDishRemoved увеличивает счётчик удалённых блюд и обновляет размер меню.
func (m *MenuMetrics) RecordDishRemoved(menuSize int) {
	m.dishesRemoved.Inc()
	m.SetMenuSize(menuSize)
}

// RecordValidationFailure учитывает отклонённую попытку добавления.
func (m *MenuMetrics) RecordValidationFailure() {
	m.validationFailures.Inc()
}

// SetMenuSize выставляет текущее количество блюд.
func (m *MenuMetrics) SetMenuSize(size int) {
	m.menuDishes.Set(float64(size))
}

// RecordSnapshotSave учитывает запись снимка и её длительность.
func (m *MenuMetrics) RecordSnapshotSave(result string, duration time.Duration) {
	m.snapshotSaves.WithLabelValues(result).Inc()
	if result == ResultOK {
		m.snapshotSaveDuration.Observe(duration.Seconds())
	}
}

// RecordSnapshotLoad учитывает чтение снимка.
func (m *MenuMetrics) RecordSnapshotLoad(result string) {
	m.snapshotLoads.WithLabelValues(result).Inc()
}

// RecordScreenView учитывает отрисовку экрана.
func (m *MenuMetrics) RecordScreenView(screen string) {
	m.screenViews.WithLabelValues(screen).Inc()
}

// RecordEventPublished учитывает попытку публикации события.
func (m *MenuMetrics) RecordEventPublished(eventType, result string) {
	m.eventsPublished.WithLabelValues(eventType, result).Inc()
}
