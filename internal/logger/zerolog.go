package logger

import (
	stderrors "errors"
	"io"

	apperrors "csv-flashcards/internal/errors"

	"github.com/rs/zerolog"
)

type ZerologAdapter struct {
	logger zerolog.Logger
}

func NewZerolog(writer io.Writer, level zerolog.Level) *ZerologAdapter {
	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &ZerologAdapter{logger: logger}
}

// Nop discards everything; used by tests and headless helpers
func Nop() *ZerologAdapter {
	return &ZerologAdapter{logger: zerolog.Nop()}
}

// With returns a child logger that stamps fields on every event
func (z *ZerologAdapter) With(fields map[string]interface{}) Logger {
	return &ZerologAdapter{logger: z.logger.With().Fields(fields).Logger()}
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	tag(z.logger.Debug(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	tag(z.logger.Info(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	tag(z.logger.Warn(), component, fields).Msg(message)
}

// Error logs err under its AppError code and title when it carries one
func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	event := tag(z.logger.Error(), component, fields).Err(err)

	var appErr *apperrors.AppError
	if stderrors.As(err, &appErr) {
		event.Str("error_code", appErr.Code).Msg(appErr.Title())
		return
	}
	event.Msg("operation failed")
}

// tag adds the component and the caller's fields. A disabled level yields a
// nil event, which zerolog treats as a no-op.
func tag(event *zerolog.Event, component string, fields map[string]interface{}) *zerolog.Event {
	return event.Str("component", component).Fields(fields)
}
