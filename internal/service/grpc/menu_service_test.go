package grpcsvc_test

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/vladislavdragonenkov/menuboard/internal/domain"
	"github.com/vladislavdragonenkov/menuboard/internal/metrics"
	grpcsvc "github.com/vladislavdragonenkov/menuboard/internal/service/grpc"
	"github.com/vladislavdragonenkov/menuboard/internal/service/menu"
	"github.com/vladislavdragonenkov/menuboard/internal/service/snapshot"
	"github.com/vladislavdragonenkov/menuboard/internal/storage/memory"
	menuv1 "github.com/vladislavdragonenkov/menuboard/proto/menu/v1"
)

const bufSize = 1024 * 1024

func loggerForTests() *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: false, DisableTimestamp: true})
	logger.SetLevel(logrus.DebugLevel)
	return logger.WithField("component", "test")
}

func newTestServer(t *testing.T) (menuv1.MenuServiceClient, *menu.Service) {
	t.Helper()

	next := 0
	ids := func() string {
		next++
		return fmt.Sprintf("grpc-%d", next)
	}
	logger := loggerForTests()
	m := metrics.NewMenuMetricsWithRegisterer(prometheus.NewRegistry())
	svc := menu.NewService(
		menu.NewStore(domain.DefaultMenu(), menu.WithIDGenerator(ids)),
		snapshot.NewAdapter(memory.NewSnapshotStorage(), snapshot.WithLogger(logger)),
		menu.WithLogger(logger),
		menu.WithMetrics(m),
	)

	listener := bufconn.Listen(bufSize)
	server := grpc.NewServer()
	menuv1.RegisterMenuServiceServer(server, grpcsvc.NewMenuService(svc, logger))

	go func() {
		if err := server.Serve(listener); err != nil {
			logger.WithError(err).Error("grpc serve failed")
		}
	}()

	dialer := func(context.Context, string) (net.Conn, error) {
		return listener.Dial()
	}
	conn, err := grpc.NewClient("passthrough:///bufnet", grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		server.Stop()
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = svc.Flush(ctx)
	})

	return menuv1.NewMenuServiceClient(conn), svc
}

func TestMenuService_ListDishesSeed(t *testing.T) {
	client, _ := newTestServer(t)

	resp, err := client.ListDishes(context.Background(), &menuv1.ListDishesRequest{})
	require.NoError(t, err)

	seed := domain.DefaultMenu()
	require.Len(t, resp.GetDishes(), len(seed))
	for i, d := range resp.GetDishes() {
		require.Equal(t, seed[i].ID, d.GetId())
		require.Equal(t, seed[i].Name, d.GetName())
		require.Equal(t, seed[i].Price, d.GetPrice())
	}
	require.Equal(t, menuv1.Course_COURSE_STARTER, resp.GetDishes()[0].GetCourse())

	require.EqualValues(t, 6, resp.GetStats().GetTotalItems())
	require.InDelta(t, 11.17, resp.GetStats().GetAveragePrice(), 0.005)
}

func TestMenuService_AddAndRemove(t *testing.T) {
	client, svc := newTestServer(t)
	ctx := context.Background()
	before := svc.Snapshot()

	resp, err := client.AddDish(ctx, &menuv1.AddDishRequest{
		Name: "Soup", Description: "Hot soup", Course: menuv1.Course_COURSE_STARTER, Price: 5,
	})
	require.NoError(t, err)

	dish := resp.GetDish()
	require.Equal(t, "grpc-1", dish.GetId())
	require.Equal(t, menuv1.Course_COURSE_STARTER, dish.GetCourse())
	require.Equal(t, 5.0, dish.GetPrice())
	require.EqualValues(t, 7, resp.GetStats().GetTotalItems())

	stored, ok := svc.Get("grpc-1")
	require.True(t, ok)
	require.Equal(t, domain.CourseStarter, stored.Course)

	removed, err := client.RemoveDish(ctx, &menuv1.RemoveDishRequest{Id: dish.GetId()})
	require.NoError(t, err)
	require.True(t, removed.GetRemoved())
	require.Equal(t, before, svc.Snapshot())
}

func TestMenuService_AddDishValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     *menuv1.AddDishRequest
		message string
	}{
		{
			name:    "missing description",
			req:     &menuv1.AddDishRequest{Name: "Soup", Course: menuv1.Course_COURSE_STARTER, Price: 5},
			message: "description",
		},
		{
			name:    "zero price",
			req:     &menuv1.AddDishRequest{Name: "Soup", Description: "Hot", Course: menuv1.Course_COURSE_STARTER},
			message: "price",
		},
		{
			name:    "negative price",
			req:     &menuv1.AddDishRequest{Name: "Soup", Description: "Hot", Course: menuv1.Course_COURSE_STARTER, Price: -3},
			message: "price",
		},
		{
			name:    "course required",
			req:     &menuv1.AddDishRequest{Name: "Soup", Description: "Hot", Price: 5},
			message: "course",
		},
		{
			name:    "unknown course value",
			req:     &menuv1.AddDishRequest{Name: "Soup", Description: "Hot", Course: menuv1.Course(42), Price: 5},
			message: "course",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, svc := newTestServer(t)

			_, err := client.AddDish(context.Background(), tt.req)
			require.Equal(t, codes.InvalidArgument, status.Code(err))
			require.Contains(t, status.Convert(err).Message(), tt.message)
			require.Equal(t, 6, svc.Stats().TotalItems)
		})
	}
}

func TestMenuService_RemoveUnknown(t *testing.T) {
	client, svc := newTestServer(t)

	resp, err := client.RemoveDish(context.Background(), &menuv1.RemoveDishRequest{Id: "missing"})
	require.NoError(t, err)
	require.False(t, resp.GetRemoved())
	require.Equal(t, 6, svc.Stats().TotalItems)

	_, err = client.RemoveDish(context.Background(), &menuv1.RemoveDishRequest{Id: "  "})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestMenuService_FilterAndStats(t *testing.T) {
	client, _ := newTestServer(t)
	ctx := context.Background()

	resp, err := client.FilterDishes(ctx, &menuv1.FilterDishesRequest{Course: menuv1.Course_COURSE_DESSERT})
	require.NoError(t, err)
	require.Equal(t, menuv1.Course_COURSE_DESSERT, resp.GetCourse())
	require.Len(t, resp.GetDishes(), 1)
	require.Equal(t, "Tiramisu", resp.GetDishes()[0].GetName())

	all, err := client.FilterDishes(ctx, &menuv1.FilterDishesRequest{})
	require.NoError(t, err)
	require.Len(t, all.GetDishes(), 6)

	_, err = client.FilterDishes(ctx, &menuv1.FilterDishesRequest{Course: menuv1.Course(7)})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	stats, err := client.GetStats(ctx, &menuv1.GetStatsRequest{})
	require.NoError(t, err)
	require.EqualValues(t, 6, stats.GetStats().GetTotalItems())
}
