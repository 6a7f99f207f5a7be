package app

import (
	"context"

	"github.com/Gunvolt24/delivery_filter/config"
	"github.com/Gunvolt24/delivery_filter/internal/ports"
	"github.com/Gunvolt24/delivery_filter/internal/repo/jsonfile"
	"github.com/Gunvolt24/delivery_filter/internal/usecase"
	"github.com/Gunvolt24/delivery_filter/pkg/logger"
	"github.com/Gunvolt24/delivery_filter/pkg/validate"
)

// App — собранное приложение: логгер, сервис и параметры прогона.
type App struct {
	Logger  ports.Logger
	Service *usecase.DeliveryService
	Params  usecase.RunParams
}

// Cleanup — функция освобождения ресурсов (сброс буферов лога).
type Cleanup func()

// Bootstrap — собирает зависимости и возвращает приложение и функцию очистки.
// Журнал доставки (cfg.DeliveryLog) подключается как дополнительный
// выход логгера.
func Bootstrap(cfg config.Config) (*App, Cleanup, error) {
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd, cfg.DeliveryLog)
	if err != nil {
		return nil, func() {}, err
	}

	orderRepo := jsonfile.NewOrderRepository()
	batchValidator := validate.NewBatchValidator(logg)
	service := usecase.NewDeliveryService(orderRepo, batchValidator, logg)

	app := &App{
		Logger:  logg,
		Service: service,
		Params: usecase.RunParams{
			District:   cfg.CityDistrict,
			From:       cfg.FirstDeliveryDateTime.Time,
			InputPath:  cfg.InputFile,
			OutputPath: cfg.DeliveryOrder,
		},
	}

	// Лог сбрасывается до выхода из процесса.
	cleanup := func() { _ = cleanupLogger() }

	return app, cleanup, nil
}

// Run — один прогон конвейера.
func (a *App) Run(ctx context.Context) error {
	return a.Service.Run(ctx, a.Params)
}
