package ports

import (
	"context"

	"github.com/Gunvolt24/delivery_filter/internal/domain"
)

// BatchValidator — пакетная валидация заказов.
// Результат — подпоследовательность входа без дубликатов orderId и заказов
// с некорректными полями; причины отбраковки уходят в лог, не в ошибку.
type BatchValidator interface {
	ValidateBatch(ctx context.Context, orders []domain.Order) []domain.Order
}
