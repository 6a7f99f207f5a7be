package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/Gunvolt24/delivery_filter/internal/ports"
	"github.com/Gunvolt24/delivery_filter/internal/repo/jsonfile"
	"github.com/Gunvolt24/delivery_filter/pkg/filter"
)

// DeliveryService — прикладная логика одного прогона фильтрации заказов
// (без знаний о транспорте и о том, откуда взялись параметры).
type DeliveryService struct {
	repo      ports.OrderRepository // прямой доступ к хранилищу
	validator ports.BatchValidator  // прямой доступ к валидатору
	log       ports.Logger          // прямой доступ к логгеру
}

// NewDeliveryService — DI-конструктор.
func NewDeliveryService(
	repo ports.OrderRepository,
	validator ports.BatchValidator,
	log ports.Logger,
) *DeliveryService {
	return &DeliveryService{
		repo:      repo,
		validator: validator,
		log:       log,
	}
}

// RunParams — четыре разрешённых скаляра одного запуска.
type RunParams struct {
	District   string
	From       time.Time
	InputPath  string
	OutputPath string
}

// Run — линейный конвейер: чтение → валидация → фильтр → запись.
// Шаги:
//  1. чтение пакета из входного файла (ErrNotFound логируется как warning —
//     это проблема окружения, остальное — error);
//  2. пакетная валидация; пустой валидный набор — штатное завершение
//     с предупреждением, выходной файл НЕ перезаписывается;
//  3. фильтр по району и окну доставки;
//  4. запись результата (возможно пустого массива) и итоговая сводка.
//
// Возвращённая ошибка означает аварийное завершение прогона; причины
// к этому моменту уже залогированы.
func (s *DeliveryService) Run(ctx context.Context, p RunParams) error {
	start := time.Now()

	orders, err := s.repo.LoadAll(ctx, p.InputPath)
	if err != nil {
		if errors.Is(err, jsonfile.ErrNotFound) {
			s.log.Warnf(ctx, "входной файл заказов не найден, проверьте настройки: %v", err)
		} else {
			s.log.Errorf(ctx, "не удалось прочитать заказы: %v", err)
		}
		return err
	}
	s.log.Infof(ctx, "загружено заказов: %d (файл %s)", len(orders), p.InputPath)

	valid := s.validator.ValidateBatch(ctx, orders)
	if len(valid) == 0 {
		s.log.Warnf(ctx, "валидных заказов не найдено, выходной файл не записан")
		return nil
	}

	selected := filter.ByDistrictWindow(valid, p.District, p.From)

	if err := s.repo.SaveAll(ctx, p.OutputPath, selected); err != nil {
		s.log.Errorf(ctx, "не удалось записать результат: %v", err)
		return err
	}

	s.log.Infof(ctx, "готово: район %s, окно %s от %s, отобрано %d из %d валидных заказов → %s (за %s)",
		p.District, filter.Window, p.From.Format("2006-01-02 15:04:05"),
		len(selected), len(valid), p.OutputPath, time.Since(start))
	return nil
}
