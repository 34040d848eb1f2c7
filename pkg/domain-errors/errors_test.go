package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodedErrors(t *testing.T) {
	cause := errors.New("connection reset")
	wrapped := Wrap(cause, CodeInternal, "load events")

	t.Run("message includes code and cause", func(t *testing.T) {
		assert.Equal(t, "internal_error: load events: connection reset", wrapped.Error())
		assert.Equal(t, "invalid_span: span 3 ends before it starts", Newf(CodeInvalidSpan, "span %d ends before it starts", 3).Error())
	})

	t.Run("unwraps to cause", func(t *testing.T) {
		assert.ErrorIs(t, wrapped, cause)
	})

	t.Run("errors.Is matches by code", func(t *testing.T) {
		err := New(CodeForbidden, "write permission required")
		assert.ErrorIs(t, err, New(CodeForbidden, ""))
		assert.NotErrorIs(t, err, New(CodeNotFound, ""))
	})

	t.Run("Wrap of nil is nil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, CodeInternal, "nothing"))
	})
}

func TestCodeOfAndHasCode(t *testing.T) {
	inner := New(CodeUnknownLicenseRef, "license 9")
	outer := Wrap(inner, CodeValidation, "record assertion")
	viaFmt := fmt.Errorf("cli: %w", outer)

	assert.Equal(t, CodeValidation, CodeOf(viaFmt))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))

	assert.True(t, HasCode(viaFmt, CodeValidation))
	assert.True(t, HasCode(viaFmt, CodeUnknownLicenseRef))
	assert.False(t, HasCode(viaFmt, CodeNotFound))
	assert.False(t, HasCode(nil, CodeInternal))
}
