package view

import (
	"fmt"

	"github.com/vladislavdragonenkov/menuboard/internal/domain"
)

const (
	homeTitle       = "Christoffel's Digital Menu"
	homeSubtitle    = "Welcome, Chef!"
	manageTitle     = "Menu Item Management"
	removeHeading   = "Remove Existing Dishes"
	filterTitle     = "Guest View Filter"
	filterSubtitle  = "Filter dishes by category"
	emptyMenuText   = "The menu is currently empty!"
	emptyRemoveText = "No dishes to remove."
	emptyMatchText  = "No dishes found for this course."
	allCourseLabel  = "All Dishes"
)

// Source — данные меню, из которых строятся экраны.
type Source interface {
	Snapshot() []domain.Dish
	Stats() domain.MenuStats
	FilterByCourse(course domain.Course) []domain.Dish
}

// View — описание отрисованного экрана.
type View interface {
	Screen() Screen
	Navigation() []NavControl
}

// DishRow — строка списка блюд.
type DishRow struct {
	ID          string
	Name        string
	Description string
	Course      domain.Course
	Price       float64
	PriceLabel  string
}

// Title возвращает заголовок строки в виде "Name ($9.50)".
func (r DishRow) Title() string {
	return fmt.Sprintf("%s (%s)", r.Name, r.PriceLabel)
}

// CourseOption — кнопка выбора раздела.
type CourseOption struct {
	Label    string
	Course   domain.Course
	Selected bool
}

// HomeView — домашний экран: статистика и полный список.
type HomeView struct {
	Title             string
	Subtitle          string
	TotalItems        int
	AveragePrice      float64
	AveragePriceLabel string
	Dishes            []DishRow
	EmptyText         string
	FilterAction      NavControl
	Nav               []NavControl
}

func (HomeView) Screen() Screen             { return ScreenHome }
func (v HomeView) Navigation() []NavControl { return v.Nav }

// ManageForm — локальное состояние формы добавления блюда.
type ManageForm struct {
	Name        string
	Description string
	Course      domain.Course
	Price       string
}

// NewManageForm возвращает пустую форму с разделом по умолчанию.
func NewManageForm() ManageForm {
	return ManageForm{Course: domain.CourseStarter}
}

// Draft превращает форму в черновик для Store.
func (f ManageForm) Draft() domain.DishDraft {
	return domain.DishDraft{
		Name:        f.Name,
		Description: f.Description,
		Course:      string(f.Course),
		Price:       f.Price,
	}
}

// ManageView — экран управления: форма добавления и список на удаление.
type ManageView struct {
	Title         string
	Form          ManageForm
	Courses       []CourseOption
	RemoveHeading string
	TotalItems    int
	Dishes        []DishRow
	EmptyText     string
	Nav           []NavControl
}

func (ManageView) Screen() Screen             { return ScreenManageMenu }
func (v ManageView) Navigation() []NavControl { return v.Nav }

// FilterView — экран фильтрации по разделу.
type FilterView struct {
	Title     string
	Subtitle  string
	Options   []CourseOption
	Selected  domain.Course
	Dishes    []DishRow
	EmptyText string
	Nav       []NavControl
}

func (FilterView) Screen() Screen             { return ScreenFilterMenu }
func (v FilterView) Navigation() []NavControl { return v.Nav }

// FormatPrice форматирует цену как "$11.17".
func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

// RenderHome строит домашний экран из снимка меню и статистики.
func RenderHome(dishes []domain.Dish, stats domain.MenuStats) HomeView {
	return HomeView{
		Title:             homeTitle,
		Subtitle:          homeSubtitle,
		TotalItems:        stats.TotalItems,
		AveragePrice:      stats.AveragePrice,
		AveragePriceLabel: FormatPrice(stats.AveragePrice),
		Dishes:            toRows(dishes),
		EmptyText:         emptyMenuText,
		FilterAction:      NavControl{Label: navLabelFilter, Target: ScreenFilterMenu},
		Nav:               NavControls(ScreenHome),
	}
}

// RenderManage строит экран управления с текущим состоянием формы.
func RenderManage(dishes []domain.Dish, stats domain.MenuStats, form ManageForm) ManageView {
	return ManageView{
		Title:         manageTitle,
		Form:          form,
		Courses:       courseOptions(form.Course, false),
		RemoveHeading: fmt.Sprintf("%s (%d)", removeHeading, stats.TotalItems),
		TotalItems:    stats.TotalItems,
		Dishes:        toRows(dishes),
		EmptyText:     emptyRemoveText,
		Nav:           NavControls(ScreenManageMenu),
	}
}

// RenderFilter строит экран фильтра из уже отфильтрованного списка.
func RenderFilter(filtered []domain.Dish, selected domain.Course) FilterView {
	return FilterView{
		Title:     filterTitle,
		Subtitle:  filterSubtitle,
		Options:   courseOptions(selected, true),
		Selected:  selected,
		Dishes:    toRows(filtered),
		EmptyText: emptyMatchText,
		Nav:       NavControls(ScreenFilterMenu),
	}
}

// LocalState — временное состояние экранов одного пользователя.
type LocalState struct {
	Form   ManageForm
	Filter domain.Course
}

// Render строит активный экран роутера.
func (r *Router) Render(src Source, local LocalState) View {
	switch r.Current() {
	case ScreenManageMenu:
		return RenderManage(src.Snapshot(), src.Stats(), local.Form)
	case ScreenFilterMenu:
		return RenderFilter(src.FilterByCourse(local.Filter), local.Filter)
	default:
		return RenderHome(src.Snapshot(), src.Stats())
	}
}

func courseOptions(selected domain.Course, withAll bool) []CourseOption {
	options := make([]CourseOption, 0, len(domain.Courses)+1)
	if withAll {
		options = append(options, CourseOption{Label: allCourseLabel, Course: domain.AnyCourse, Selected: selected == domain.AnyCourse})
	}
	for _, c := range domain.Courses {
		options = append(options, CourseOption{Label: string(c), Course: c, Selected: selected == c})
	}
	return options
}

func toRows(dishes []domain.Dish) []DishRow {
	rows := make([]DishRow, 0, len(dishes))
	for _, d := range dishes {
		rows = append(rows, DishRow{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Course:      d.Course,
			Price:       d.Price,
			PriceLabel:  FormatPrice(d.Price),
		})
	}
	return rows
}
