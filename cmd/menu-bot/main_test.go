package main

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/menuboard/internal/app"
	"github.com/vladislavdragonenkov/menuboard/internal/telegram"
)

type stubAPI struct {
	mu      sync.Mutex
	texts   []string
	updates chan tgbotapi.Update
}

func (s *stubAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		s.texts = append(s.texts, msg.Text)
	}
	return tgbotapi.Message{}, nil
}

func (s *stubAPI) Request(tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (s *stubAPI) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return s.updates
}

func (s *stubAPI) StopReceivingUpdates() {}

func (s *stubAPI) sent() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.texts...)
}

func TestRun_RequiresToken(t *testing.T) {
	err := run(context.Background(), app.DefaultConfig(), func(string) (telegram.API, error) {
		t.Fatal("api must not be created without token")
		return nil, nil
	})
	require.ErrorContains(t, err, app.EnvTelegramToken)
}

func TestRun_APIError(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.StorageDriver = app.StorageDriverMemory
	cfg.TelegramToken = "123:abc"

	err := run(context.Background(), cfg, func(string) (telegram.API, error) {
		return nil, errors.New("unauthorized")
	})
	require.ErrorContains(t, err, "unauthorized")
}

func TestRun_ServesUpdatesUntilCancelled(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.TelegramToken = "123:abc"
	cfg.StorageDriver = app.StorageDriverFile
	cfg.DataDir = t.TempDir()

	api := &stubAPI{updates: make(chan tgbotapi.Update, 1)}
	var gotToken string

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx, cfg, func(token string) (telegram.API, error) {
			gotToken = token
			return api, nil
		})
	}()

	api.updates <- tgbotapi.Update{Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 1}, Text: "/start"}}
	require.Eventually(t, func() bool { return len(api.sent()) > 0 }, 2*time.Second, 10*time.Millisecond)
	require.Contains(t, api.sent()[0], "Total Dishes: 6")

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop")
	}
	require.Equal(t, "123:abc", gotToken)
}
