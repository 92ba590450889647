package domain

// DefaultMenu возвращает встроенный стартовый набор блюд.
// Используется, пока нет корректного сохранённого снимка.
func DefaultMenu() []Dish {
	return []Dish{
		{ID: "1", Name: "Spicy Arancini", Description: "Crispy rice balls with mozzarella and hot sauce.", Course: CourseStarter, Price: 9.5},
		{ID: "2", Name: "Angus Cheeseburger", Description: "Classic burger with aged cheddar and lettuce.", Course: CourseMain, Price: 15.0},
		{ID: "3", Name: "Margherita Pizza", Description: "Tomato sauce, mozzarella, basil.", Course: CourseMain, Price: 14.5},
		{ID: "4", Name: "Tiramisu", Description: "Espresso-soaked ladyfingers with mascarpone cream.", Course: CourseDessert, Price: 7.0},
		{ID: "5", Name: "Carbonara", Description: "Eggs, Pecorino cheese, and pancetta.", Course: CourseMain, Price: 18.0},
		{ID: "6", Name: "Sparkling Water", Description: "Chilled mineral water.", Course: CourseBeverage, Price: 3.0},
	}
}
