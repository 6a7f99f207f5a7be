package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/Gunvolt24/delivery_filter/internal/domain"
	"github.com/kelseyhightower/envconfig"
)

var (
	// ErrInvalidArgument — некорректный аргумент командной строки.
	ErrInvalidArgument = errors.New("invalid command-line argument")

	// ErrBadSettings — файл настроек существует, но не разбирается.
	ErrBadSettings = errors.New("settings file has invalid format")
)

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

// Config — разрешённые настройки одного запуска.
// Порядок разрешения: значения по умолчанию и окружение (envconfig) →
// файл настроек → аргументы командной строки.
type Config struct {
	CityDistrict          string          `default:"District_1" envconfig:"CITY_DISTRICT"`
	FirstDeliveryDateTime domain.DateTime `envconfig:"FIRST_DELIVERY_DATE_TIME"`
	InputFile             string          `default:"orders.json" envconfig:"INPUT_FILE"`
	DeliveryOrder         string          `default:"delivery_order.json" envconfig:"DELIVERY_ORDER"`
	DeliveryLog           string          `default:"delivery.log" envconfig:"DELIVERY_LOG"`
	Logger                Logger
}

// Load — конфигурация с префиксом окружения по умолчанию.
func Load() (Config, error) { return LoadWithPrefix("DELIVERY") }

// LoadWithPrefix — значения по умолчанию из тегов структуры плюс переменные
// окружения с заданным префиксом.
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config

	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}

	return c, nil
}

// settingsFile — схема файла настроек (те же ключи, что во входных аргументах).
type settingsFile struct {
	CityDistrict          string `json:"cityDistrict,omitempty"`
	FirstDeliveryDateTime string `json:"firstDeliveryDateTime,omitempty"`
	InputFile             string `json:"inputFile,omitempty"`
	DeliveryOrder         string `json:"deliveryOrder,omitempty"`
	DeliveryLog           string `json:"deliveryLog,omitempty"`
}

// LoadSettings — накладывает значения из файла настроек поверх текущих.
// Отсутствующий файл создаётся с текущими значениями (первый запуск) —
// это не ошибка. Незаполненные поля файла оставляют прежние значения.
func (c *Config) LoadSettings(path string) error {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c.saveSettings(path)
	}
	if err != nil {
		return fmt.Errorf("чтение файла настроек %s: %w", path, err)
	}

	var s settingsFile
	if err := json.Unmarshal(raw, &s); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrBadSettings, path, err)
	}

	if s.CityDistrict != "" {
		c.CityDistrict = s.CityDistrict
	}
	if s.FirstDeliveryDateTime != "" {
		parsed, err := domain.ParseDateTime(s.FirstDeliveryDateTime)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrBadSettings, path, err)
		}
		c.FirstDeliveryDateTime = parsed
	}
	if s.InputFile != "" {
		c.InputFile = s.InputFile
	}
	if s.DeliveryOrder != "" {
		c.DeliveryOrder = s.DeliveryOrder
	}
	if s.DeliveryLog != "" {
		c.DeliveryLog = s.DeliveryLog
	}
	return nil
}

// saveSettings — записывает текущие значения в файл настроек.
func (c *Config) saveSettings(path string) error {
	s := settingsFile{
		CityDistrict:  c.CityDistrict,
		InputFile:     c.InputFile,
		DeliveryOrder: c.DeliveryOrder,
		DeliveryLog:   c.DeliveryLog,
	}
	if !c.FirstDeliveryDateTime.IsZero() {
		s.FirstDeliveryDateTime = c.FirstDeliveryDateTime.Format(domain.Layout)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("сериализация настроек: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("создание файла настроек %s: %w", path, err)
	}
	return nil
}

// ApplyArgs — разбирает переопределения вида _имя=значение.
// Любой непустой токен вне этой грамматики — ErrInvalidArgument.
func (c *Config) ApplyArgs(args []string) error {
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || value == "" || !strings.HasPrefix(key, "_") {
			return fmt.Errorf("%w: %q (ожидается _имя=значение)", ErrInvalidArgument, arg)
		}

		switch key {
		case "_cityDistrict":
			c.CityDistrict = value
		case "_firstDeliveryDateTime":
			parsed, err := domain.ParseDateTime(value)
			if err != nil {
				return fmt.Errorf("%w: %q: %v", ErrInvalidArgument, arg, err)
			}
			c.FirstDeliveryDateTime = parsed
		case "_inputFile":
			c.InputFile = value
		case "_deliveryOrder":
			c.DeliveryOrder = value
		case "_deliveryLog":
			c.DeliveryLog = value
		default:
			return fmt.Errorf("%w: неизвестный ключ %q", ErrInvalidArgument, key)
		}
	}
	return nil
}
