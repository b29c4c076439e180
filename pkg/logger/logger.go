package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Logger printf-логгер поверх slog
// Пишет в stdout и, если указан файл, дублирует записи в него
type Logger struct {
	log  *slog.Logger
	file *os.File
}

// New создает логгер. filePath может быть пустым - тогда только stdout
func New(filePath string, level string) (*Logger, error) {
	var (
		out  io.Writer = os.Stdout
		file *os.File
	)

	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", filePath, err)
		}
		file = f
		out = io.MultiWriter(os.Stdout, f)
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: parseLevel(level)})

	return &Logger{
		log:  slog.New(handler),
		file: file,
	}, nil
}

// NewWithWriter создает логгер, пишущий в произвольный writer (используется в тестах)
func NewWithWriter(w io.Writer, level string) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return &Logger{log: slog.New(handler)}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, v...))
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.log.Info(fmt.Sprintf(format, v...))
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.log.Warn(fmt.Sprintf(format, v...))
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.log.Error(fmt.Sprintf(format, v...))
}

// Fatal логирует ошибку и завершает процесс с кодом 1
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.log.Error(fmt.Sprintf(format, v...))
	l.Close()
	os.Exit(1)
}

// Close закрывает файл лога, если он был открыт
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
