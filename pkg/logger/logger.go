package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger логгер сервиса поверх zerolog.
// Интерфейсы слоёв (usecase, service, repository) объявляют printf-style
// методы Info/Warn/Error - этот тип их реализует.
type Logger struct {
	zl   zerolog.Logger
	file *os.File
}

// New создает логгер, пишущий в файл filename.
// Если filename пустой - пишет в stdout. level: debug|info|warn|error.
func New(filename, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	var (
		out  *os.File
		file *os.File
	)

	if filename == "" {
		out = os.Stdout
	} else {
		file, err = os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: failed to open log file %q: %w", filename, err)
		}
		out = file
	}

	zl := zerolog.New(out).Level(lvl).With().Timestamp().Logger()

	return &Logger{zl: zl, file: file}, nil
}

// Close закрывает файл логов, если он был открыт
func (l *Logger) Close() {
	if l.file != nil {
		_ = l.file.Close()
	}
}

// Debug пишет отладочное сообщение
func (l *Logger) Debug(format string, v ...interface{}) {
	l.zl.Debug().Msgf(format, v...)
}

// Info пишет информационное сообщение
func (l *Logger) Info(format string, v ...interface{}) {
	l.zl.Info().Msgf(format, v...)
}

// Warn пишет предупреждение
func (l *Logger) Warn(format string, v ...interface{}) {
	l.zl.Warn().Msgf(format, v...)
}

// Error пишет сообщение об ошибке
func (l *Logger) Error(format string, v ...interface{}) {
	l.zl.Error().Msgf(format, v...)
}

// Fatal пишет сообщение и завершает процесс с кодом 1
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.zl.Fatal().Msgf(format, v...)
}

// parseLevel конвертирует строковый уровень в zerolog.Level
func parseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(level) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("logger: unknown level %q", level)
	}
}
