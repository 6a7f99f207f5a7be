package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Gunvolt24/delivery_filter/config"
	"github.com/Gunvolt24/delivery_filter/internal/app"
	"github.com/Gunvolt24/delivery_filter/internal/domain"
	"github.com/joho/godotenv"
)

// CLI-приложение фильтрации заказов доставки.
// Позиционные аргументы — переопределения вида _имя=значение:
// _cityDistrict=, _firstDeliveryDateTime=, _deliveryLog=, _deliveryOrder=.
func main() {
	settingsPath := flag.String("settings", "settings.json", "путь к файлу настроек (создаётся при отсутствии)")
	flag.Parse()

	// .env — удобство локального запуска; отсутствие файла не ошибка.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "конфигурация: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.LoadSettings(*settingsPath); err != nil {
		fmt.Fprintf(os.Stderr, "файл настроек: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.ApplyArgs(flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "аргументы: %v\n", err)
		os.Exit(1)
	}

	// Начало окна по умолчанию — момент запуска.
	if cfg.FirstDeliveryDateTime.IsZero() {
		cfg.FirstDeliveryDateTime = domain.NewDateTime(time.Now())
	}

	application, cleanup, err := app.Bootstrap(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "инициализация: %v\n", err)
		os.Exit(1)
	}

	runErr := application.Run(context.Background())
	cleanup()
	if runErr != nil {
		os.Exit(1)
	}
}
