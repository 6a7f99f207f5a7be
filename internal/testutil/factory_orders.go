package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/delivery_filter/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор валидного заказа
func MakeOrder(opts ...func(*domain.Order)) domain.Order {
	o := domain.Order{
		OrderID:      "Order_" + UniqSuffix(),
		Weight:       5,
		District:     "District_1",
		DeliveryTime: domain.NewDateTime(time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func WithID(id string) func(*domain.Order) {
	return func(o *domain.Order) { o.OrderID = id }
}

func WithDistrict(district string) func(*domain.Order) {
	return func(o *domain.Order) { o.District = district }
}

func WithWeight(w float64) func(*domain.Order) {
	return func(o *domain.Order) { o.Weight = w }
}

func WithDeliveryTime(t time.Time) func(*domain.Order) {
	return func(o *domain.Order) { o.DeliveryTime = domain.NewDateTime(t) }
}
