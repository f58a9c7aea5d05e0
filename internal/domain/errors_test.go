package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("failed to find booking: %w", NewBookingNotFoundError(5))

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindBookingNotFound, kind)
	assert.EqualError(t, err, "failed to find booking: booking with id 5 not found")
}

func TestKindOf_PlainError(t *testing.T) {
	_, ok := KindOf(errors.New("boom"))
	assert.False(t, ok)
	assert.False(t, IsKind(nil, KindValidation))
}

func TestPageFromOffset(t *testing.T) {
	tests := []struct {
		from, size int
		want       Page
		offset     int
	}{
		{0, 10, Page{0, 10}, 0},
		{10, 10, Page{1, 10}, 10},
		{7, 5, Page{1, 5}, 5},
		{4, 5, Page{0, 5}, 0},
	}
	for _, tt := range tests {
		p := PageFromOffset(tt.from, tt.size)
		assert.Equal(t, tt.want, p)
		assert.Equal(t, tt.offset, p.Offset())
	}
}

func TestValidateOffset(t *testing.T) {
	assert.NoError(t, ValidateOffset(0, 1))
	assert.True(t, IsKind(ValidateOffset(-1, 10), KindValidation))
	assert.True(t, IsKind(ValidateOffset(0, 0), KindValidation))
}
