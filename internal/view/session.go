package view

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/menuboard/internal/domain"
	"github.com/vladislavdragonenkov/menuboard/internal/metrics"
	"github.com/vladislavdragonenkov/menuboard/internal/service/snapshot"
)

// Menu — операции меню, доступные экранам.
type Menu interface {
	Source
	Get(id string) (domain.Dish, bool)
	AddDish(ctx context.Context, draft domain.DishDraft) (domain.Dish, *snapshot.Pending, error)
	RemoveDish(ctx context.Context, id string) (bool, *snapshot.Pending)
}

// AlertStyle задаёт вид кнопки диалога.
type AlertStyle string

const (
	AlertStyleDefault     AlertStyle = "default"
	AlertStyleCancel      AlertStyle = "cancel"
	AlertStyleDestructive AlertStyle = "destructive"
)

// AlertAction — кнопка диалога.
type AlertAction struct {
	Label string
	Style AlertStyle
}

// Alert — блокирующее сообщение пользователю.
type Alert struct {
	Title   string
	Message string
	Actions []AlertAction
}

// FormField — поле формы добавления блюда.
type FormField string

const (
	FieldName        FormField = "name"
	FieldDescription FormField = "description"
	FieldCourse      FormField = "course"
	FieldPrice       FormField = "price"
)

// Session — экранное состояние одного пользователя поверх общего меню.
type Session struct {
	router  *Router
	menu    Menu
	metrics *metrics.MenuMetrics
	logger  *log.Entry

	mu             sync.Mutex
	form           ManageForm
	filter         domain.Course
	pendingRemoval string
	lastPending    *snapshot.Pending
}

// SessionOption настраивает Session.
type SessionOption func(*Session)

// WithSessionMetrics включает учёт просмотров экранов.
func WithSessionMetrics(m *metrics.MenuMetrics) SessionOption {
	return func(s *Session) {
		s.metrics = m
	}
}

// WithSessionLogger задаёт logger сессии.
func WithSessionLogger(logger *log.Entry) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession создаёт сессию на домашнем экране.
func NewSession(menu Menu, opts ...SessionOption) *Session {
	s := &Session{
		router: NewRouter(),
		menu:   menu,
		form:   NewManageForm(),
		logger: log.WithField("component", "view"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Screen возвращает активный экран.
func (s *Session) Screen() Screen {
	return s.router.Current()
}

// Navigate переключает экран. Форма и фильтр живут только на своём экране:
// при смене экрана они сбрасываются, повторный переход на тот же экран их сохраняет.
func (s *Session) Navigate(to Screen) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := s.router.Current()
	if err := s.router.Navigate(to); err != nil {
		return err
	}
	if from != to {
		s.form = NewManageForm()
		s.filter = domain.AnyCourse
	}
	s.logger.WithFields(log.Fields{"from": from, "screen": to}).Debug("navigated")
	return nil
}

// Render отрисовывает активный экран.
func (s *Session) Render() View {
	s.mu.Lock()
	local := LocalState{Form: s.form, Filter: s.filter}
	s.mu.Unlock()

	v := s.router.Render(s.menu, local)
	if s.metrics != nil {
		s.metrics.RecordScreenView(string(v.Screen()))
	}
	return v
}

// Form возвращает текущее состояние формы.
func (s *Session) Form() ManageForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// EditForm меняет одно поле формы. Раздел проверяется сразу, остальное при отправке.
func (s *Session) EditForm(field FormField, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch field {
	case FieldName:
		s.form.Name = value
	case FieldDescription:
		s.form.Description = value
	case FieldPrice:
		s.form.Price = value
	case FieldCourse:
		course, err := domain.ParseCourse(value)
		if err != nil {
			return err
		}
		s.form.Course = course
	default:
		return fmt.Errorf("unknown form field %q", field)
	}
	return nil
}

// Заголовки диалогов сессии.
const (
	AlertTitleMissingDetails = "Missing Details"
	AlertTitleSuccess        = "Success"
	AlertTitleConfirmRemoval = "Confirm Removal"
)

// SubmitForm добавляет блюдо из формы. При успехе форма сбрасывается.
func (s *Session) SubmitForm(ctx context.Context) *Alert {
	s.mu.Lock()
	form := s.form
	s.mu.Unlock()

	dish, pending, err := s.menu.AddDish(ctx, form.Draft())
	if err != nil {
		s.logger.WithError(err).Debug("add dish rejected")
		return &Alert{
			Title:   AlertTitleMissingDetails,
			Message: "Please enter a valid Name, Description, and Price.",
			Actions: []AlertAction{{Label: "OK", Style: AlertStyleDefault}},
		}
	}

	s.mu.Lock()
	s.form = NewManageForm()
	s.lastPending = pending
	s.mu.Unlock()

	return &Alert{
		Title:   AlertTitleSuccess,
		Message: fmt.Sprintf("%s has been added to the menu!", dish.Name),
		Actions: []AlertAction{{Label: "OK", Style: AlertStyleDefault}},
	}
}

// RequestRemove запрашивает подтверждение удаления. Для неизвестного id диалога нет.
func (s *Session) RequestRemove(id string) *Alert {
	dish, ok := s.menu.Get(id)
	if !ok {
		return nil
	}

	s.mu.Lock()
	s.pendingRemoval = id
	s.mu.Unlock()

	return &Alert{
		Title:   AlertTitleConfirmRemoval,
		Message: fmt.Sprintf("Remove %q?", dish.Name),
		Actions: []AlertAction{
			{Label: "Cancel", Style: AlertStyleCancel},
			{Label: "Remove", Style: AlertStyleDestructive},
		},
	}
}

// PendingRemoval возвращает id блюда, ожидающего подтверждения.
func (s *Session) PendingRemoval() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingRemoval
}

// ConfirmRemove удаляет блюдо, для которого был запрошен диалог.
func (s *Session) ConfirmRemove(ctx context.Context) bool {
	s.mu.Lock()
	id := s.pendingRemoval
	s.pendingRemoval = ""
	s.mu.Unlock()

	if id == "" {
		return false
	}
	removed, pending := s.menu.RemoveDish(ctx, id)

	s.mu.Lock()
	s.lastPending = pending
	s.mu.Unlock()
	return removed
}

// CancelRemove закрывает диалог без изменений.
func (s *Session) CancelRemove() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingRemoval = ""
}

// SelectCourse выбирает раздел на экране фильтра; AnyCourse снимает выбор.
func (s *Session) SelectCourse(course domain.Course) error {
	if course != domain.AnyCourse && !course.Valid() {
		return domain.ErrCourseInvalid
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = course
	return nil
}

// Filter возвращает выбранный раздел.
func (s *Session) Filter() domain.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// LastSave возвращает результат последнего сохранения, запущенного из сессии.
func (s *Session) LastSave() *snapshot.Pending {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastPending == nil {
		return snapshot.Completed(nil)
	}
	return s.lastPending
}
