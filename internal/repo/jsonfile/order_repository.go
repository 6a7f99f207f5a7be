package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/Gunvolt24/delivery_filter/internal/domain"
	"github.com/Gunvolt24/delivery_filter/internal/ports"
)

// Проверка, что OrderRepository удовлетворяет интерфейсу OrderRepository.
var _ ports.OrderRepository = (*OrderRepository)(nil)

var (
	// ErrNotFound — входной файл заказов отсутствует.
	// Отличим от прочих сбоев: отсутствие файла — проблема окружения, не данных.
	ErrNotFound = errors.New("order file not found")

	// ErrBadFormat — файл существует, но не разбирается в схему заказа.
	ErrBadFormat = errors.New("order file has invalid format")
)

// WriteError — сбой записи результата; несёт путь и исходную причину.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("запись заказов в %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// OrderRepository — JSON-файл как хранилище пакета заказов.
type OrderRepository struct{}

// NewOrderRepository — конструктор OrderRepository.
func NewOrderRepository() *OrderRepository { return &OrderRepository{} }

// LoadAll — читает все заказы из файла path.
// Возвращает записи как есть, без валидации. Ошибки: ErrNotFound при
// отсутствии файла, ErrBadFormat при некорректном содержимом.
func (r *OrderRepository) LoadAll(_ context.Context, path string) ([]domain.Order, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("чтение %s: %w", path, err)
	}

	// Строгое декодирование: запрещаем неизвестные поля.
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var orders []domain.Order
	if err := dec.Decode(&orders); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	// Убеждаемся, что после массива нет лишних данных.
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: лишние данные после массива заказов", ErrBadFormat)
	}
	return orders, nil
}

// SaveAll — сериализует пакет (возможно пустой) в path, перезаписывая файл.
// Формат — человекочитаемый JSON с отступами.
func (r *OrderRepository) SaveAll(_ context.Context, path string, orders []domain.Order) error {
	if orders == nil {
		orders = []domain.Order{}
	}

	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
