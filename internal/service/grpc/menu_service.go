package grpcsvc

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/menuboard/internal/domain"
	"github.com/vladislavdragonenkov/menuboard/internal/service/snapshot"
	menuv1 "github.com/vladislavdragonenkov/menuboard/proto/menu/v1"
)

// Menu — операции меню, доступные по gRPC.
type Menu interface {
	Snapshot() []domain.Dish
	Stats() domain.MenuStats
	FilterByCourse(course domain.Course) []domain.Dish
	AddDish(ctx context.Context, draft domain.DishDraft) (domain.Dish, *snapshot.Pending, error)
	RemoveDish(ctx context.Context, id string) (bool, *snapshot.Pending)
}

// MenuService реализует menu.v1.MenuService поверх общего меню.
type MenuService struct {
	menuv1.UnimplementedMenuServiceServer

	menu   Menu
	logger *log.Entry
}

// NewMenuService конструирует сервис с зависимостями.
func NewMenuService(menu Menu, logger *log.Entry) *MenuService {
	if logger == nil {
		logger = log.New().WithField("component", "menu-grpc")
	}
	return &MenuService{menu: menu, logger: logger}
}

// ListDishes возвращает всё меню и статистику.
func (s *MenuService) ListDishes(context.Context, *menuv1.ListDishesRequest) (*menuv1.ListDishesResponse, error) {
	return &menuv1.ListDishesResponse{
		Dishes: dishesToProto(s.menu.Snapshot()),
		Stats:  statsToProto(s.menu.Stats()),
	}, nil
}

// GetStats возвращает количество блюд и среднюю цену.
func (s *MenuService) GetStats(context.Context, *menuv1.GetStatsRequest) (*menuv1.GetStatsResponse, error) {
	return &menuv1.GetStatsResponse{Stats: statsToProto(s.menu.Stats())}, nil
}

// FilterDishes возвращает блюда раздела; COURSE_UNSPECIFIED означает все разделы.
func (s *MenuService) FilterDishes(_ context.Context, req *menuv1.FilterDishesRequest) (*menuv1.FilterDishesResponse, error) {
	course, err := courseFromProto(req.GetCourse())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &menuv1.FilterDishesResponse{
		Course: req.GetCourse(),
		Dishes: dishesToProto(s.menu.FilterByCourse(course)),
	}, nil
}

// AddDish проверяет черновик и добавляет блюдо. Раздел обязателен.
func (s *MenuService) AddDish(ctx context.Context, req *menuv1.AddDishRequest) (*menuv1.AddDishResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	// Раздел и цена проходят ту же проверку, что и ввод с формы.
	course, err := courseFromProto(req.GetCourse())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	draft := domain.DishDraft{
		Name:        req.GetName(),
		Description: req.GetDescription(),
		Course:      course.String(),
		Price:       strconv.FormatFloat(req.GetPrice(), 'f', -1, 64),
	}

	dish, _, err := s.menu.AddDish(ctx, draft)
	if err != nil {
		if domain.IsValidation(err) {
			return nil, status.Error(codes.InvalidArgument, joinErrors(err))
		}
		s.logger.WithError(err).Error("failed to add dish")
		return nil, status.Error(codes.Internal, "failed to add dish")
	}

	s.logger.WithFields(log.Fields{"dish_id": dish.ID, "name": dish.Name}).Info("dish added via grpc")
	return &menuv1.AddDishResponse{
		Dish:  dishToProto(dish),
		Stats: statsToProto(s.menu.Stats()),
	}, nil
}

// RemoveDish удаляет блюдо; неизвестный id даёт removed=false, а не ошибку.
func (s *MenuService) RemoveDish(ctx context.Context, req *menuv1.RemoveDishRequest) (*menuv1.RemoveDishResponse, error) {
	id := strings.TrimSpace(req.GetId())
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	removed, _ := s.menu.RemoveDish(ctx, id)
	return &menuv1.RemoveDishResponse{
		Removed: removed,
		Stats:   statsToProto(s.menu.Stats()),
	}, nil
}

var courseToProto = map[domain.Course]menuv1.Course{
	domain.AnyCourse:      menuv1.Course_COURSE_UNSPECIFIED,
	domain.CourseStarter:  menuv1.Course_COURSE_STARTER,
	domain.CourseMain:     menuv1.Course_COURSE_MAIN,
	domain.CourseDessert:  menuv1.Course_COURSE_DESSERT,
	domain.CourseBeverage: menuv1.Course_COURSE_BEVERAGE,
}

// courseFromProto переводит enum в раздел; COURSE_UNSPECIFIED даёт AnyCourse.
func courseFromProto(c menuv1.Course) (domain.Course, error) {
	for course, pc := range courseToProto {
		if pc == c {
			return course, nil
		}
	}
	return domain.AnyCourse, fmt.Errorf("%w: unknown value %d", domain.ErrCourseInvalid, c)
}

func dishToProto(d domain.Dish) *menuv1.Dish {
	return &menuv1.Dish{
		Id:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Course:      courseToProto[d.Course],
		Price:       d.Price,
	}
}

func dishesToProto(dishes []domain.Dish) []*menuv1.Dish {
	out := make([]*menuv1.Dish, 0, len(dishes))
	for _, d := range dishes {
		out = append(out, dishToProto(d))
	}
	return out
}

func statsToProto(stats domain.MenuStats) *menuv1.MenuStats {
	return &menuv1.MenuStats{
		TotalItems:   int32(stats.TotalItems),
		AveragePrice: stats.AveragePrice,
	}
}

// joinErrors склеивает errors.Join в одну строку через "; ".
func joinErrors(err error) string {
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		return err.Error()
	}
	parts := make([]string, 0, len(joined.Unwrap()))
	for _, e := range joined.Unwrap() {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "; ")
}

var _ menuv1.MenuServiceServer = (*MenuService)(nil)
