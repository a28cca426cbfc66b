package e

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	err := Wrap("ShowcaseUseCase.Run", ErrInvalidDiscount)

	assert.EqualError(t, err, "ShowcaseUseCase.Run: discount percent must be in range 0-100")
	assert.True(t, errors.Is(err, ErrInvalidDiscount))
}
