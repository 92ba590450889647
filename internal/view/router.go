package view

import (
	"errors"
	"strings"
	"sync"
)

// Screen — один из трёх экранов приложения.
type Screen string

const (
	ScreenHome       Screen = "Home"
	ScreenManageMenu Screen = "ManageMenu"
	ScreenFilterMenu Screen = "FilterMenu"
)

// ErrUnknownScreen возвращается при переходе на несуществующий экран.
var ErrUnknownScreen = errors.New("unknown screen")

// Screens перечисляет все экраны.
var Screens = []Screen{ScreenHome, ScreenManageMenu, ScreenFilterMenu}

// Valid сообщает, известен ли экран.
func (s Screen) Valid() bool {
	switch s {
	case ScreenHome, ScreenManageMenu, ScreenFilterMenu:
		return true
	default:
		return false
	}
}

// ParseScreen принимает имя экрана или короткий псевдоним (home, manage, filter, menu).
func ParseScreen(raw string) (Screen, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "home", "menu":
		return ScreenHome, nil
	case "managemenu", "manage":
		return ScreenManageMenu, nil
	case "filtermenu", "filter":
		return ScreenFilterMenu, nil
	default:
		return "", ErrUnknownScreen
	}
}

// Router хранит активный экран. Переходы возможны из любого экрана в любой,
// без условий и побочных эффектов.
type Router struct {
	mu      sync.RWMutex
	current Screen
}

// NewRouter создаёт роутер на домашнем экране.
func NewRouter() *Router {
	return &Router{current: ScreenHome}
}

// Current возвращает активный экран.
func (r *Router) Current() Screen {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Navigate переключает активный экран.
func (r *Router) Navigate(to Screen) error {
	if !to.Valid() {
		return ErrUnknownScreen
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = to
	return nil
}

// NavControl — элемент навигации, ведущий на экран.
type NavControl struct {
	Label  string
	Target Screen
	Active bool
}

const (
	navLabelHome   = "Home/Menu"
	navLabelManage = "Manage"
	navLabelFilter = "Filter Menu"
)

// NavControls возвращает две всегда видимые кнопки навигации.
func NavControls(current Screen) []NavControl {
	return []NavControl{
		{Label: navLabelHome, Target: ScreenHome, Active: current == ScreenHome},
		{Label: navLabelManage, Target: ScreenManageMenu, Active: current == ScreenManageMenu},
	}
}
