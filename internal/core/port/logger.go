package port

// Fields - структурированные поля записи лога.
type Fields map[string]interface{}

// LoggerPort - логгер, которым пользуются ядро и адаптеры.
// Реализации: slog (stdout), Fluent Bit и их объединение.
type LoggerPort interface {
	Debug(msg string, fields Fields)
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	// Error пишет сообщение вместе с ошибкой; err может быть nil.
	Error(msg string, err error, fields Fields)

	// WithFields возвращает логгер, который добавляет fields к каждой записи.
	WithFields(fields Fields) LoggerPort
}
