package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/delivery_filter/internal/domain"
	"github.com/Gunvolt24/delivery_filter/internal/ports"
)

// Проверка, что BatchValidator удовлетворяет интерфейсу BatchValidator.
var _ ports.BatchValidator = (*BatchValidator)(nil)

// ErrInvalidOrder — базовая (sentinel error) ошибка валидации.
// Наружу из ValidateBatch не выходит: причины отбраковки уходят в лог.
var ErrInvalidOrder = errors.New("order validation failed")

// NoIDPlaceholder — ключ для заказов без идентификатора в сообщениях лога.
const NoIDPlaceholder = "<без orderId>"

// BatchValidator — пакетная валидация заказов: дубликаты + проверка полей.
type BatchValidator struct {
	log ports.Logger
}

// NewBatchValidator — конструктор BatchValidator.
func NewBatchValidator(log ports.Logger) *BatchValidator {
	return &BatchValidator{log: log}
}

// ValidateBatch — отбирает валидные заказы из пакета.
// Шаги:
//  1. orderId, встретившийся более одного раза, исключает ВСЕ заказы с этим id
//     (ни одна копия не выживает); одно предупреждение на каждый дубль-id;
//  2. у остальных проверяются все четыре поля сразу — причины агрегируются
//     в одно сообщение на заказ, без остановки на первой;
//  3. прошедшие заказы возвращаются в исходном относительном порядке.
//
// Невалидные данные — не ошибка: пустой результат легален, вызывающий обязан
// проверить его сам.
func (v *BatchValidator) ValidateBatch(ctx context.Context, orders []domain.Order) []domain.Order {
	seen := make(map[string]int, len(orders))
	for i := range orders {
		seen[orders[i].OrderID]++
	}

	result := make([]domain.Order, 0, len(orders))
	warned := make(map[string]bool)

	for i := range orders {
		order := orders[i]

		if seen[order.OrderID] > 1 {
			if !warned[order.OrderID] {
				warned[order.OrderID] = true
				v.log.Warnf(ctx, "дубликат orderId=%s: исключены все копии (%d шт.)",
					displayID(order.OrderID), seen[order.OrderID])
			}
			continue
		}

		if err := validateFields(&order); err != nil {
			v.log.Warnf(ctx, "заказ %s отбракован: %v", displayID(order.OrderID), err)
			continue
		}

		result = append(result, order)
	}
	return result
}

// validateFields — проверка полей заказа; собирает ВСЕ нарушения.
func validateFields(order *domain.Order) error {
	var reasons []string

	if order.OrderID == "" {
		reasons = append(reasons, "orderId обязателен")
	}
	if order.Weight <= 0 {
		reasons = append(reasons, fmt.Sprintf("weight должен быть положительным (weight=%v)", order.Weight))
	}
	if order.District == "" {
		reasons = append(reasons, "district обязателен")
	}
	if order.DeliveryTime.IsZero() {
		reasons = append(reasons, "deliveryTime не задан")
	}

	if len(reasons) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidOrder, strings.Join(reasons, "; "))
}

func displayID(id string) string {
	if id == "" {
		return NoIDPlaceholder
	}
	return id
}
