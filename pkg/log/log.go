package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	formatter "github.com/antonfisher/nested-logrus-formatter"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger *logrus.Logger
	once   sync.Once
)

const RequestIDKey = "request_id"

type Fields = logrus.Fields

// NewLogger builds the process-wide logger once. LOG_LEVEL picks the level
// (debug by default) and LOG_DIR the rotation directory; file output is
// skipped when APP_ENV=test.
func NewLogger() *logrus.Logger {
	once.Do(func() {
		logger = logrus.New()

		level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
		if err != nil {
			level = logrus.DebugLevel
		}
		logger.SetLevel(level)

		logger.SetFormatter(&formatter.Formatter{
			NoColors:        os.Getenv("APP_ENV") == "production",
			TimestampFormat: "02 Jan 06 - 15:04:05",
			HideKeys:        false,
			CallerFirst:     true,
			CustomCallerFormatter: func(f *runtime.Frame) string {
				s := strings.Split(f.Function, ".")
				funcName := s[len(s)-1]
				return fmt.Sprintf(" \x1b[%dm[%s:%d][%s()]", 34, path.Base(f.File), f.Line, funcName)
			},
		})

		writers := []io.Writer{os.Stderr}

		if os.Getenv("APP_ENV") != "test" {
			dir := os.Getenv("LOG_DIR")
			if dir == "" {
				dir = "./storage/logs"
			}
			writers = append(writers, &lumberjack.Logger{
				Filename:   filepath.Join(dir, fmt.Sprintf("emotion-%s.log", time.Now().Format("2006-01-02"))),
				LocalTime:  true,
				Compress:   true,
				MaxSize:    100,
				MaxAge:     7,
				MaxBackups: 3,
			})
		}

		logger.SetOutput(io.MultiWriter(writers...))
		logger.SetReportCaller(true)
	})

	return logger
}

func Debug(fields Fields, msg string) {
	NewLogger().WithFields(orEmpty(fields)).Debug(msg)
}

func Info(fields Fields, msg string) {
	NewLogger().WithFields(orEmpty(fields)).Info(msg)
}

func Warn(fields Fields, msg string) {
	NewLogger().WithFields(orEmpty(fields)).Warn(msg)
}

func Error(fields Fields, msg string) {
	NewLogger().WithFields(orEmpty(fields)).Error(msg)
}

// ErrorWithTraceID logs at error level and returns the id a client can
// quote back: the request id when present, otherwise a fresh UUID.
func ErrorWithTraceID(fields Fields, msg string) string {
	fields = orEmpty(fields)

	traceID, _ := fields[RequestIDKey].(string)
	if traceID == "" || traceID == "unknown" {
		id, err := uuid.NewRandom()
		if err != nil {
			traceID = "unknown"
		} else {
			traceID = id.String()
		}
	}

	fields["trace_id"] = traceID
	NewLogger().WithFields(fields).Error(msg)

	return traceID
}

// RequestIDFrom reads the request id stored under RequestIDKey.
func RequestIDFrom(ctx context.Context) string {
	if ctx != nil {
		if id, ok := ctx.Value(RequestIDKey).(string); ok && id != "" {
			return id
		}
	}
	return "unknown"
}

func WithRequestID(ctx context.Context) *logrus.Entry {
	return NewLogger().WithField(RequestIDKey, RequestIDFrom(ctx))
}

func orEmpty(fields Fields) Fields {
	if fields == nil {
		return Fields{}
	}
	return fields
}
