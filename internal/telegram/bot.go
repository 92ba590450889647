package telegram

import (
	"context"
	"fmt"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/menuboard/internal/domain"
	"github.com/vladislavdragonenkov/menuboard/internal/metrics"
	"github.com/vladislavdragonenkov/menuboard/internal/view"
)

const updateTimeoutSeconds = 60

// API — часть *tgbotapi.BotAPI, которой пользуется бот.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Bot показывает меню в чатах Telegram. У каждого чата своя сессия экранов,
// само меню общее.
type Bot struct {
	api     API
	menu    view.Menu
	metrics *metrics.MenuMetrics
	logger  *log.Entry

	mu       sync.Mutex
	sessions map[int64]*view.Session
}

// Option настраивает Bot.
type Option func(*Bot)

// WithMetrics передаёт метрики в сессии чатов.
func WithMetrics(m *metrics.MenuMetrics) Option {
	return func(b *Bot) {
		b.metrics = m
	}
}

// WithLogger задаёт logger бота.
func WithLogger(logger *log.Entry) Option {
	return func(b *Bot) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// New создаёт бота поверх готового API-клиента.
func New(api API, menu view.Menu, opts ...Option) *Bot {
	b := &Bot{
		api:      api,
		menu:     menu,
		logger:   log.WithField("component", "telegram-bot"),
		sessions: make(map[int64]*view.Session),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run читает обновления до отмены ctx.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = updateTimeoutSeconds
	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	b.logger.Info("telegram bot started")
	for {
		select {
		case <-ctx.Done():
			b.logger.Info("telegram bot stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate обрабатывает одно обновление: команду или нажатие кнопки.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.Chat != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) session(chatID int64) *view.Session {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.sessions[chatID]
	if !ok {
		s = view.NewSession(b.menu,
			view.WithSessionMetrics(b.metrics),
			view.WithSessionLogger(b.logger.WithField("chat_id", chatID)),
		)
		b.sessions[chatID] = s
	}
	return s
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	s := b.session(chatID)
	command, args := splitCommand(msg.Text)

	switch command {
	case "/start", "/menu", "/home":
		b.show(chatID, s, view.ScreenHome)
	case "/manage":
		b.show(chatID, s, view.ScreenManageMenu)
	case "/filter":
		course, err := domain.ParseCourseFilter(args)
		if err != nil {
			b.send(chatID, textMessage(chatID, err.Error()))
			return
		}
		b.showFilter(chatID, s, course)
	case "/add":
		b.handleAdd(ctx, chatID, s, args)
	case "/remove":
		b.requestRemove(chatID, s, strings.TrimSpace(args))
	default:
		b.send(chatID, textMessage(chatID, helpText))
	}
}

func (b *Bot) handleAdd(ctx context.Context, chatID int64, s *view.Session, args string) {
	parts := strings.Split(args, "|")
	for len(parts) < 4 {
		parts = append(parts, "")
	}

	_ = s.EditForm(view.FieldName, strings.TrimSpace(parts[0]))
	_ = s.EditForm(view.FieldDescription, strings.TrimSpace(parts[1]))
	_ = s.EditForm(view.FieldPrice, strings.TrimSpace(parts[3]))
	course := strings.TrimSpace(parts[2])
	if course == "" {
		course = string(view.NewManageForm().Course)
	}
	if err := s.EditForm(view.FieldCourse, course); err != nil {
		b.send(chatID, textMessage(chatID, err.Error()))
		return
	}

	alert := s.SubmitForm(ctx)
	b.send(chatID, alertMessage(chatID, alert))
	if alert.Title == view.AlertTitleSuccess {
		b.show(chatID, s, view.ScreenManageMenu)
	}
}

func (b *Bot) requestRemove(chatID int64, s *view.Session, id string) {
	alert := s.RequestRemove(id)
	if alert == nil {
		b.send(chatID, textMessage(chatID, fmt.Sprintf("No dish with id %q.", id)))
		return
	}
	b.send(chatID, alertMessage(chatID, alert))
}

func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		b.logger.WithError(err).Debug("failed to answer callback")
	}
	if cq.Message == nil || cq.Message.Chat == nil {
		return
	}
	chatID := cq.Message.Chat.ID
	s := b.session(chatID)
	kind, value, _ := strings.Cut(cq.Data, ":")

	switch kind {
	case callbackNav:
		screen, err := view.ParseScreen(value)
		if err != nil {
			b.logger.WithField("data", cq.Data).Warn("unknown screen in callback")
			return
		}
		b.show(chatID, s, screen)
	case callbackFilter:
		course, err := domain.ParseCourseFilter(value)
		if err != nil {
			return
		}
		b.showFilter(chatID, s, course)
	case callbackRemove:
		b.requestRemove(chatID, s, value)
	case callbackRemoveConfirm:
		if s.ConfirmRemove(ctx) {
			b.show(chatID, s, s.Screen())
		}
	case callbackRemoveCancel:
		s.CancelRemove()
	default:
		b.logger.WithField("data", cq.Data).Warn("unknown callback")
	}
}

func (b *Bot) show(chatID int64, s *view.Session, screen view.Screen) {
	if err := s.Navigate(screen); err != nil {
		b.logger.WithError(err).Warn("navigation failed")
		return
	}
	b.render(chatID, s)
}

// showFilter выбирает раздел уже на экране фильтра, иначе переход его сбросит.
func (b *Bot) showFilter(chatID int64, s *view.Session, course domain.Course) {
	if err := s.Navigate(view.ScreenFilterMenu); err != nil {
		b.logger.WithError(err).Warn("navigation failed")
		return
	}
	_ = s.SelectCourse(course)
	b.render(chatID, s)
}

func (b *Bot) render(chatID int64, s *view.Session) {
	msg, err := screenMessage(chatID, s.Render())
	if err != nil {
		b.logger.WithError(err).Error("failed to render screen")
		return
	}
	b.send(chatID, msg)
}

func (b *Bot) send(chatID int64, msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		b.logger.WithError(err).WithField("chat_id", chatID).Warn("failed to send telegram message")
	}
}

// splitCommand отделяет команду от аргументов и убирает суффикс @botname.
func splitCommand(text string) (string, string) {
	text = strings.TrimSpace(text)
	command, args, _ := strings.Cut(text, " ")
	command, _, _ = strings.Cut(command, "@")
	return strings.ToLower(command), strings.TrimSpace(args)
}
