package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Course описывает раздел меню, к которому относится блюдо.
type Course string

const (
	// AnyCourse означает отсутствие выбора, при фильтрации возвращается всё меню.
	AnyCourse Course = ""
	// CourseStarter — закуски.
	CourseStarter Course = "Starter"
	// CourseMain — основные блюда.
	CourseMain Course = "Main"
	// CourseDessert — десерты.
	CourseDessert Course = "Dessert"
	// CourseBeverage — напитки.
	CourseBeverage Course = "Beverage"
)

// Courses перечисляет все разделы в порядке отображения.
var Courses = []Course{CourseStarter, CourseMain, CourseDessert, CourseBeverage}

// Valid сообщает, входит ли значение в фиксированный набор разделов.
func (c Course) Valid() bool {
	switch c {
	case CourseStarter, CourseMain, CourseDessert, CourseBeverage:
		return true
	default:
		return false
	}
}

func (c Course) String() string {
	return string(c)
}

// ParseCourse приводит пользовательский ввод к каноническому названию раздела.
// Регистр и пробелы по краям не учитываются.
func ParseCourse(raw string) (Course, error) {
	trimmed := strings.TrimSpace(raw)
	for _, c := range Courses {
		if strings.EqualFold(trimmed, string(c)) {
			return c, nil
		}
	}
	return AnyCourse, ErrCourseInvalid
}

// ParseCourseFilter разбирает выбор фильтра: пустая строка, "all" и "any"
// означают все разделы.
func ParseCourseFilter(raw string) (Course, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "all", "any":
		return AnyCourse, nil
	}
	return ParseCourse(raw)
}

// Dish — одна позиция меню. Поля сериализуются в снимок под этими же именами.
type Dish struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Course      Course  `json:"course"`
	Price       float64 `json:"price"`
}

// DishDraft хранит сырой пользовательский ввод формы добавления блюда.
type DishDraft struct {
	Name        string
	Description string
	Course      string
	Price       string
}

// decimalPrice — цифры с необязательной точкой: "5", "5.", ".5", "14.50".
var decimalPrice = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)$`)

// ParsePrice разбирает цену из текстового поля. Допустима только десятичная запись
// числа > 0; знак, экспонента, hex-форма и разделители "_" отклоняются.
func ParsePrice(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if !decimalPrice.MatchString(raw) {
		return 0, ErrDishPriceInvalid
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || price <= 0 {
		return 0, ErrDishPriceInvalid
	}
	return price, nil
}

// Build проверяет черновик и собирает из него блюдо с переданным идентификатором.
// Строка из одних пробелов считается пустой, но непустой ввод сохраняется как есть.
// При нарушениях возвращает все найденные ошибки валидации.
func (d DishDraft) Build(id string) (Dish, []error) {
	var errs []error

	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, ErrDishNameRequired)
	}
	if strings.TrimSpace(d.Description) == "" {
		errs = append(errs, ErrDishDescriptionRequired)
	}
	course, err := ParseCourse(d.Course)
	if err != nil {
		errs = append(errs, err)
	}
	price, err := ParsePrice(d.Price)
	if err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return Dish{}, errs
	}

	return Dish{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		Course:      course,
		Price:       price,
	}, nil
}

// ValidateStored проверяет блюдо, прочитанное из снимка.
// Имя и описание здесь не проверяются: после создания они не контролируются.
func (d Dish) ValidateStored() []error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, ErrDishIDRequired)
	}
	if !d.Course.Valid() {
		errs = append(errs, ErrCourseInvalid)
	}
	if math.IsNaN(d.Price) || math.IsInf(d.Price, 0) || d.Price <= 0 {
		errs = append(errs, ErrDishPriceInvalid)
	}
	return errs
}
