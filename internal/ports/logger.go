package ports

import "context"

// Logger — минимальный контракт логгера для всех слоёв пайплайна.
// Внедряется явно: глобального состояния логирования в проекте нет.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)  // Infof — информационные сообщения.
	Warnf(ctx context.Context, format string, args ...any)  // Warnf — предупреждения.
	Errorf(ctx context.Context, format string, args ...any) // Errorf — ошибки.
}
