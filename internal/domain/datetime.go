package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Layout — основной текстовый формат времени доставки.
const Layout = "2006-01-02 15:04:05"

// DateTime — момент времени в формате Layout (RFC3339 принимается при чтении).
// Нулевое значение — сентинел «время не задано».
type DateTime struct {
	time.Time
}

// NewDateTime — конструктор DateTime.
func NewDateTime(t time.Time) DateTime { return DateTime{Time: t} }

// ParseDateTime — разбирает строку как Layout, затем как RFC3339.
func ParseDateTime(s string) (DateTime, error) {
	if t, err := time.Parse(Layout, s); err == nil {
		return DateTime{Time: t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return DateTime{}, fmt.Errorf("неверный формат времени %q (ожидается %q или RFC3339)", s, Layout)
	}
	return DateTime{Time: t}, nil
}

// Decode — реализация envconfig.Decoder: разбор значения из переменной окружения.
func (d *DateTime) Decode(value string) error {
	parsed, err := ParseDateTime(strings.TrimSpace(value))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// UnmarshalJSON — пустая строка и null трактуются как «не задано».
func (d *DateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = DateTime{}
		return nil
	}
	parsed, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON — всегда пишет формат Layout.
func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.Format(Layout))
}
