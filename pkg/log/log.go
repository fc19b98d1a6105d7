// Package log encapsula o logrus com ID de correlação por requisição e
// filtragem de campos por ambiente.
package log

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

type contextKey string

// CorrelationIDKey guarda o ID de correlação da requisição no contexto
const CorrelationIDKey contextKey = "correlation_id"

const correlationIDField = "correlation_id"

// devVisibleFields lista os campos que permanecem nos logs de
// desenvolvimento. Em produção nenhum campo é filtrado, o agregador indexa
// tudo.
var devVisibleFields = map[string]bool{
	correlationIDField: true,

	// Rastreio de requisição
	"method":      true,
	"path":        true,
	"status_code": true,
	"duration_ms": true,
	"error":       true,

	// Resultados das análises
	"revenue":              true,
	"target":               true,
	"gap":                  true,
	"change_type":          true,
	"pipeline":             true,
	"win_rate":             true,
	"stale_deals":          true,
	"underperforming_reps": true,
	"low_activity":         true,
	"recommendations":      true,
	"total":                true,
	"type":                 true,
}

type wrapper struct {
	entry *logrus.Entry
}

// L é a instância global para uso direto fora do ciclo de uma requisição
var L Logger = &wrapper{entry: logrus.NewEntry(logrus.StandardLogger())}

// IsDevelopment considera ausência de APP_ENV como ambiente local
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

func (l *wrapper) WithField(key string, value interface{}) Logger {
	if IsDevelopment() && !devVisibleFields[key] {
		return l
	}
	return &wrapper{entry: l.entry.WithField(key, value)}
}

func (l *wrapper) WithFields(fields Fields) Logger {
	if !IsDevelopment() {
		return &wrapper{entry: l.entry.WithFields(logrus.Fields(fields))}
	}

	visible := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if devVisibleFields[k] {
			visible[k] = v
		}
	}

	if len(visible) == 0 {
		return l
	}
	return &wrapper{entry: l.entry.WithFields(visible)}
}

func (l *wrapper) WithError(err error) Logger {
	return &wrapper{entry: l.entry.WithError(err)}
}

// WithContext propaga o ID de correlação do contexto, quando presente
func (l *wrapper) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return l.WithField(correlationIDField, correlationID)
	}

	return l
}

func (l *wrapper) Debug(args ...interface{}) { l.entry.Debug(args...) }
func (l *wrapper) Info(args ...interface{})  { l.entry.Info(args...) }
func (l *wrapper) Warn(args ...interface{})  { l.entry.Warn(args...) }
func (l *wrapper) Error(args ...interface{}) { l.entry.Error(args...) }

func (l *wrapper) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *wrapper) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *wrapper) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *wrapper) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

// WithCorrelationID gera um novo ID de correlação e o anexa ao contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

// GetCorrelationID lê o ID de correlação do contexto, vazio quando ausente
func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// ForContext é o ponto de entrada dos handlers: logger já correlacionado
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
