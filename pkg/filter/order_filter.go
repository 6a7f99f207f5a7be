package filter

import (
	"sort"
	"time"

	"github.com/Gunvolt24/delivery_filter/internal/domain"
)

// Window — фиксированная длина окна доставки.
const Window = 30 * time.Minute

// ByDistrictWindow — отбирает заказы района district со временем доставки в
// закрытом интервале [from, from+Window] (обе границы включительно) и
// возвращает их по возрастанию времени доставки; при равном времени
// сохраняется исходный относительный порядок (стабильная сортировка).
// Чистая функция: вход не изменяется, пустой результат — не ошибка.
func ByDistrictWindow(orders []domain.Order, district string, from time.Time) []domain.Order {
	to := from.Add(Window)

	result := make([]domain.Order, 0, len(orders))
	for i := range orders {
		order := orders[i]
		if order.District != district {
			continue
		}
		t := order.DeliveryTime.Time
		if t.Before(from) || t.After(to) {
			continue
		}
		result = append(result, order)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DeliveryTime.Before(result[j].DeliveryTime.Time)
	})
	return result
}
