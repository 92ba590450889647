package snapshot_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/menuboard/internal/domain"
	"github.com/vladislavdragonenkov/menuboard/internal/metrics"
	"github.com/vladislavdragonenkov/menuboard/internal/service/snapshot"
	"github.com/vladislavdragonenkov/menuboard/internal/storage/memory"
)

func testLogger() *log.Entry {
	logger := log.New()
	logger.SetLevel(log.DebugLevel)
	return logger.WithField("component", "test")
}

type recordingReplacer struct {
	mu     sync.Mutex
	dishes []domain.Dish
	calls  int
}

func (r *recordingReplacer) Replace(dishes []domain.Dish) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dishes = dishes
	r.calls++
}

// failingStorage отдаёт ошибки на все операции.
type failingStorage struct{}

func (failingStorage) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk unavailable")
}

func (failingStorage) Set(context.Context, string, []byte) error {
	return errors.New("disk full")
}

func (failingStorage) Delete(context.Context, string) error {
	return errors.New("read-only")
}

// gatedStorage блокирует первую запись до закрытия gate.
type gatedStorage struct {
	domain.SnapshotStorage
	gate    chan struct{}
	entered chan struct{}
	once    sync.Once
}

func (s *gatedStorage) Set(ctx context.Context, key string, value []byte) error {
	first := false
	s.once.Do(func() { first = true })
	if first {
		close(s.entered)
		<-s.gate
	}
	return s.SnapshotStorage.Set(ctx, key, value)
}

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestAdapter_SaveThenLoad(t *testing.T) {
	storage := memory.NewSnapshotStorage()
	adapter := snapshot.NewAdapter(storage, snapshot.WithLogger(testLogger()))

	menu := domain.DefaultMenu()
	require.NoError(t, adapter.Save(context.Background(), menu).Wait(waitCtx(t)))

	raw, err := storage.Get(context.Background(), snapshot.DefaultKey)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"course":"Dessert"`)

	loaded, ok := adapter.Load(context.Background())
	require.True(t, ok)
	require.Equal(t, menu, loaded)
}

func TestAdapter_SaveEmptyMenuRoundTrip(t *testing.T) {
	adapter := snapshot.NewAdapter(memory.NewSnapshotStorage(), snapshot.WithLogger(testLogger()))

	require.NoError(t, adapter.Save(context.Background(), []domain.Dish{}).Wait(waitCtx(t)))

	loaded, ok := adapter.Load(context.Background())
	require.True(t, ok)
	require.Empty(t, loaded)
	require.NotNil(t, loaded)
}

func TestAdapter_LoadMissing(t *testing.T) {
	registry := prometheus.NewRegistry()
	adapter := snapshot.NewAdapter(
		memory.NewSnapshotStorage(),
		snapshot.WithLogger(testLogger()),
		snapshot.WithMetrics(metrics.NewMenuMetricsWithRegisterer(registry)),
	)

	loaded, ok := adapter.Load(context.Background())
	require.False(t, ok)
	require.Nil(t, loaded)
}

func TestAdapter_LoadMalformedIsSwallowed(t *testing.T) {
	storage := memory.NewSnapshotStorage()
	require.NoError(t, storage.Set(context.Background(), snapshot.DefaultKey, []byte("not json")))
	adapter := snapshot.NewAdapter(storage, snapshot.WithLogger(testLogger()))

	_, ok := adapter.Load(context.Background())
	require.False(t, ok)
}

func TestAdapter_CustomKey(t *testing.T) {
	storage := memory.NewSnapshotStorage()
	adapter := snapshot.NewAdapter(storage, snapshot.WithKey("tenant-menu"), snapshot.WithLogger(testLogger()))
	require.Equal(t, "tenant-menu", adapter.Key())

	require.NoError(t, adapter.Save(context.Background(), domain.DefaultMenu()).Wait(waitCtx(t)))

	_, err := storage.Get(context.Background(), snapshot.DefaultKey)
	require.ErrorIs(t, err, domain.ErrSnapshotNotFound)
	_, err = storage.Get(context.Background(), "tenant-menu")
	require.NoError(t, err)
}

func TestAdapter_RestoreReplacesTarget(t *testing.T) {
	storage := memory.NewSnapshotStorage()
	adapter := snapshot.NewAdapter(storage, snapshot.WithLogger(testLogger()))

	saved := domain.DefaultMenu()[:2]
	require.NoError(t, adapter.Save(context.Background(), saved).Wait(waitCtx(t)))

	target := &recordingReplacer{}
	require.NoError(t, adapter.Restore(context.Background(), target).Wait(waitCtx(t)))

	target.mu.Lock()
	defer target.mu.Unlock()
	require.Equal(t, 1, target.calls)
	require.Equal(t, saved, target.dishes)
}

func TestAdapter_RestoreWithoutDataKeepsTarget(t *testing.T) {
	adapter := snapshot.NewAdapter(memory.NewSnapshotStorage(), snapshot.WithLogger(testLogger()))

	target := &recordingReplacer{}
	err := adapter.Restore(context.Background(), target).Wait(waitCtx(t))
	require.ErrorIs(t, err, domain.ErrSnapshotNotFound)

	target.mu.Lock()
	defer target.mu.Unlock()
	require.Zero(t, target.calls)
}

func TestAdapter_StorageFailuresAreReportedNotFatal(t *testing.T) {
	adapter := snapshot.NewAdapter(failingStorage{}, snapshot.WithLogger(testLogger()))

	err := adapter.Save(context.Background(), domain.DefaultMenu()).Wait(waitCtx(t))
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")

	_, ok := adapter.Load(context.Background())
	require.False(t, ok)

	require.Error(t, adapter.Clear(context.Background()))
}

func TestAdapter_StaleSnapshotDoesNotOverwriteNewer(t *testing.T) {
	base := memory.NewSnapshotStorage()
	storage := &gatedStorage{SnapshotStorage: base, gate: make(chan struct{}), entered: make(chan struct{})}
	adapter := snapshot.NewAdapter(storage, snapshot.WithLogger(testLogger()))

	first := adapter.Save(context.Background(), domain.DefaultMenu())
	<-storage.entered

	newer := domain.DefaultMenu()[:1]
	second := adapter.Save(context.Background(), newer)

	// первая запись уже внутри Set; вторая ждёт writeMu
	close(storage.gate)
	require.NoError(t, first.Wait(waitCtx(t)))
	require.NoError(t, second.Wait(waitCtx(t)))

	loaded, ok := adapter.Load(context.Background())
	require.True(t, ok)
	require.Equal(t, newer, loaded)
}

func TestAdapter_ClearRemovesSnapshot(t *testing.T) {
	storage := memory.NewSnapshotStorage()
	adapter := snapshot.NewAdapter(storage, snapshot.WithLogger(testLogger()))

	require.NoError(t, adapter.Save(context.Background(), domain.DefaultMenu()).Wait(waitCtx(t)))
	require.NoError(t, adapter.Clear(context.Background()))

	_, ok := adapter.Load(context.Background())
	require.False(t, ok)
}

func TestAdapter_Flush(t *testing.T) {
	adapter := snapshot.NewAdapter(memory.NewSnapshotStorage(), snapshot.WithLogger(testLogger()))

	pendings := make([]*snapshot.Pending, 0, 10)
	for i := 0; i < 10; i++ {
		pendings = append(pendings, adapter.Save(context.Background(), domain.DefaultMenu()))
	}
	require.NoError(t, adapter.Flush(waitCtx(t)))

	for _, p := range pendings {
		select {
		case <-p.Done():
		default:
			t.Fatal("all saves should be complete after Flush")
		}
		require.NoError(t, p.Err())
	}
}

func TestAdapter_SaveSurvivesCanceledCallerContext(t *testing.T) {
	adapter := snapshot.NewAdapter(memory.NewSnapshotStorage(), snapshot.WithLogger(testLogger()))

	ctx, cancel := context.WithCancel(context.Background())
	pending := adapter.Save(ctx, domain.DefaultMenu())
	cancel()

	require.NoError(t, pending.Wait(waitCtx(t)))
	_, ok := adapter.Load(context.Background())
	require.True(t, ok)
}
