package ports

import (
	"context"

	"github.com/Gunvolt24/delivery_filter/internal/domain"
)

// OrderRepository — файловое хранилище заказов.
// LoadAll возвращает записи ровно в том виде, в каком они сохранены:
// валидация — отдельный явный шаг.
type OrderRepository interface {
	LoadAll(ctx context.Context, path string) ([]domain.Order, error)
	SaveAll(ctx context.Context, path string, orders []domain.Order) error
}
