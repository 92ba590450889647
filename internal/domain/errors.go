package domain

import "errors"

var (
	// Ошибка пустого названия блюда.
	ErrDishNameRequired = errors.New("dish name is required")
	// Ошибка пустого описания блюда.
	ErrDishDescriptionRequired = errors.New("dish description is required")
	// Ошибка цены: не число или не больше нуля.
	ErrDishPriceInvalid = errors.New("dish price must be a number greater than zero")
	// Ошибка раздела меню вне фиксированного набора.
	ErrCourseInvalid = errors.New("course must be one of Starter, Main, Dessert, Beverage")
	// Ошибка отсутствующего идентификатора блюда в снимке.
	ErrDishIDRequired = errors.New("dish id is required")
	// ErrSnapshotNotFound возвращается хранилищем, если ключ ещё не записан.
	ErrSnapshotNotFound = errors.New("snapshot not found")
	// ErrSnapshotMalformed — сохранённое значение не удалось разобрать.
	ErrSnapshotMalformed = errors.New("snapshot is malformed")
)

// IsValidation проверяет, вызвана ли ошибка некорректным пользовательским вводом.
func IsValidation(err error) bool {
	return errors.Is(err, ErrDishNameRequired) ||
		errors.Is(err, ErrDishDescriptionRequired) ||
		errors.Is(err, ErrDishPriceInvalid) ||
		errors.Is(err, ErrCourseInvalid)
}

// IsSnapshotNotFound проверяет, что снимок отсутствует в хранилище.
func IsSnapshotNotFound(err error) bool {
	return errors.Is(err, ErrSnapshotNotFound)
}
