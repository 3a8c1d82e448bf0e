package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	cause := errors.New("engine error")
	wrapped := fmt.Errorf("save product: %w", &DuplicateError{Detail: "Key (slug)=(tee) already exists.", Err: cause})

	detail, ok := IsUniqueViolation(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "Key (slug)=(tee) already exists.", detail)
	assert.ErrorIs(t, wrapped, cause)

	_, ok = IsUniqueViolation(errors.New("connection refused"))
	assert.False(t, ok)

	_, ok = IsUniqueViolation(nil)
	assert.False(t, ok)
}

func TestDuplicateErrorMessage(t *testing.T) {
	assert.Equal(t, "duplicate key", (&DuplicateError{}).Error())
	assert.Equal(t, "duplicate key: Key (title)=(X) already exists.", (&DuplicateError{Detail: "Key (title)=(X) already exists."}).Error())
}
