package domain

// Order — заказ на доставку: единственная сущность пайплайна.
// Конструируется при десериализации входного файла и далее не изменяется.
type Order struct {
	OrderID      string   `json:"orderId"`
	Weight       float64  `json:"weight"`
	District     string   `json:"district"`
	DeliveryTime DateTime `json:"deliveryTime"`
}
