package config_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	cfg "github.com/Gunvolt24/delivery_filter/config"
)

// TestLoadWithPrefix_Defaults — проверка наличия значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadWithPrefix("DELIVERY_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	if c.CityDistrict != "District_1" {
		t.Fatalf("CityDistrict: want District_1, got %q", c.CityDistrict)
	}
	if !c.FirstDeliveryDateTime.IsZero() {
		t.Fatalf("FirstDeliveryDateTime: want zero sentinel, got %v", c.FirstDeliveryDateTime)
	}
	if c.InputFile != "orders.json" {
		t.Fatalf("InputFile: want orders.json, got %q", c.InputFile)
	}
	if c.DeliveryOrder != "delivery_order.json" {
		t.Fatalf("DeliveryOrder: want delivery_order.json, got %q", c.DeliveryOrder)
	}
	if c.DeliveryLog != "delivery.log" {
		t.Fatalf("DeliveryLog: want delivery.log, got %q", c.DeliveryLog)
	}
	if c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want false, got true")
	}
}

// Меняем окружение.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	const p = "DELIVERY_TEST_OVR"

	t.Setenv(p+"_CITY_DISTRICT", "District_7")
	t.Setenv(p+"_FIRST_DELIVERY_DATE_TIME", "2024-01-02 09:00:00")
	t.Setenv(p+"_INPUT_FILE", "in.json")
	t.Setenv(p+"_DELIVERY_ORDER", "out.json")
	t.Setenv(p+"_DELIVERY_LOG", "run.log")
	t.Setenv(p+"_LOGGER_IS_PROD", "true")

	c, err := cfg.LoadWithPrefix(p)
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	if c.CityDistrict != "District_7" || c.InputFile != "in.json" ||
		c.DeliveryOrder != "out.json" || c.DeliveryLog != "run.log" {
		t.Fatalf("overrides wrong: %+v", c)
	}
	want := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	if !c.FirstDeliveryDateTime.Equal(want) {
		t.Fatalf("FirstDeliveryDateTime: want %v, got %v", want, c.FirstDeliveryDateTime.Time)
	}
	if !c.Logger.IsProd {
		t.Fatalf("Logger.IsProd override wrong: %+v", c.Logger)
	}
}

// Тоже меняем окружение — но с невалидным значением.
func TestLoadWithPrefix_InvalidValue_ReturnsError(t *testing.T) {
	const p = "DELIVERY_TEST_BAD"
	t.Setenv(p+"_FIRST_DELIVERY_DATE_TIME", "not-a-time")

	if _, err := cfg.LoadWithPrefix(p); err == nil {
		t.Fatalf("expected error for invalid datetime, got nil")
	}
}

func TestLoadSettings_CreatesFileOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	c, err := cfg.LoadWithPrefix("DELIVERY_TEST_CREATE")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	if err := c.LoadSettings(path); err != nil {
		t.Fatalf("LoadSettings error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("settings file should be created: %v", err)
	}

	var s map[string]any
	if err := json.Unmarshal(raw, &s); err != nil {
		t.Fatalf("created settings should be valid json: %v", err)
	}
	if s["cityDistrict"] != "District_1" {
		t.Fatalf("created settings should carry defaults, got %v", s)
	}
}

func TestLoadSettings_OverridesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	content := `{
  "cityDistrict": "District_9",
  "firstDeliveryDateTime": "2024-05-06 10:00:00",
  "deliveryOrder": "result.json"
}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	c, err := cfg.LoadWithPrefix("DELIVERY_TEST_FILE")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}
	if err := c.LoadSettings(path); err != nil {
		t.Fatalf("LoadSettings error: %v", err)
	}

	if c.CityDistrict != "District_9" || c.DeliveryOrder != "result.json" {
		t.Fatalf("settings overrides wrong: %+v", c)
	}
	want := time.Date(2024, 5, 6, 10, 0, 0, 0, time.UTC)
	if !c.FirstDeliveryDateTime.Equal(want) {
		t.Fatalf("FirstDeliveryDateTime: want %v, got %v", want, c.FirstDeliveryDateTime.Time)
	}
	// незаполненные ключи не трогают значения по умолчанию
	if c.InputFile != "orders.json" || c.DeliveryLog != "delivery.log" {
		t.Fatalf("untouched fields changed: %+v", c)
	}
}

func TestLoadSettings_BadFile(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "{{{"},
		{name: "bad datetime", content: `{"firstDeliveryDateTime": "вчера"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.json")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatalf("write settings: %v", err)
			}

			c, err := cfg.LoadWithPrefix("DELIVERY_TEST_CORRUPT")
			if err != nil {
				t.Fatalf("LoadWithPrefix error: %v", err)
			}

			err = c.LoadSettings(path)
			if !errors.Is(err, cfg.ErrBadSettings) {
				t.Fatalf("expected ErrBadSettings, got %v", err)
			}
		})
	}
}

func TestApplyArgs_AllKeys(t *testing.T) {
	c, err := cfg.LoadWithPrefix("DELIVERY_TEST_ARGS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	args := []string{
		"_cityDistrict=District_3",
		"_firstDeliveryDateTime=2024-01-02 09:00:00",
		"_inputFile=batch.json",
		"_deliveryOrder=filtered.json",
		"_deliveryLog=audit.log",
	}
	if err := c.ApplyArgs(args); err != nil {
		t.Fatalf("ApplyArgs error: %v", err)
	}

	if c.CityDistrict != "District_3" || c.InputFile != "batch.json" ||
		c.DeliveryOrder != "filtered.json" || c.DeliveryLog != "audit.log" {
		t.Fatalf("args overrides wrong: %+v", c)
	}
	want := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	if !c.FirstDeliveryDateTime.Equal(want) {
		t.Fatalf("FirstDeliveryDateTime: want %v, got %v", want, c.FirstDeliveryDateTime.Time)
	}
}

func TestApplyArgs_Invalid(t *testing.T) {
	cases := []struct {
		name string
		arg  string
	}{
		{name: "no equals sign", arg: "_cityDistrict"},
		{name: "no underscore prefix", arg: "cityDistrict=District_1"},
		{name: "empty value", arg: "_cityDistrict="},
		{name: "unknown key", arg: "_warehouse=7"},
		{name: "bad datetime", arg: "_firstDeliveryDateTime=вчера"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := cfg.LoadWithPrefix("DELIVERY_TEST_BADARG")
			if err != nil {
				t.Fatalf("LoadWithPrefix error: %v", err)
			}

			err = c.ApplyArgs([]string{tc.arg})
			if !errors.Is(err, cfg.ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument for %q, got %v", tc.arg, err)
			}
		})
	}
}
