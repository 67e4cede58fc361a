package errors_test

import (
	"context"
	"fmt"
	"io"
	"testing"

	apperrors "csv-flashcards/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	err := apperrors.NewFileReadError("deck.csv", io.ErrUnexpectedEOF)

	assert.Equal(t, "FILE_READ: could not read deck.csv (unexpected EOF)", err.Error())
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestAppError_WithoutCause(t *testing.T) {
	err := &apperrors.AppError{Code: apperrors.ErrCodeConfig, Message: "bad"}
	assert.Equal(t, "CONFIG: bad", err.Error())
}

func TestHasCode(t *testing.T) {
	wrapped := fmt.Errorf("load: %w", apperrors.NewCancelledError("x.csv", context.Canceled))

	assert.True(t, apperrors.HasCode(wrapped, apperrors.ErrCodeCancelled))
	assert.False(t, apperrors.HasCode(wrapped, apperrors.ErrCodeFileRead))
	assert.False(t, apperrors.HasCode(io.EOF, apperrors.ErrCodeFileRead))
	assert.ErrorIs(t, wrapped, context.Canceled)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "File Load Error", apperrors.Title(apperrors.NewFileReadError("a", io.EOF)))
	assert.Equal(t, "Open Failed", apperrors.Title(apperrors.NewFileOpenError("a", io.EOF)))
	assert.Equal(t, "Error", apperrors.Title(io.EOF))
}
