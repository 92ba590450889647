package domain

// MenuStats — производная статистика по меню, пересчитывается при каждом чтении.
type MenuStats struct {
	TotalItems   int     `json:"total_items"`
	AveragePrice float64 `json:"average_price"`
}

// ComputeStats считает количество блюд и среднюю цену (0 для пустого меню).
func ComputeStats(dishes []Dish) MenuStats {
	if len(dishes) == 0 {
		return MenuStats{}
	}
	var sum float64
	for _, dish := range dishes {
		sum += dish.Price
	}
	return MenuStats{
		TotalItems:   len(dishes),
		AveragePrice: sum / float64(len(dishes)),
	}
}

// FilterByCourse возвращает блюда выбранного раздела в исходном порядке.
// AnyCourse возвращает копию всего меню.
func FilterByCourse(dishes []Dish, course Course) []Dish {
	result := make([]Dish, 0, len(dishes))
	for _, dish := range dishes {
		if course != AnyCourse && dish.Course != course {
			continue
		}
		result = append(result, dish)
	}
	return result
}
