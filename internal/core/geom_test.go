package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectInset(t *testing.T) {
	assert.Equal(t, NewRect(1, 1, 8, 3), NewRect(0, 0, 10, 5).Inset(1))
	assert.Equal(t, NewRect(3, 3, 0, 0), NewRect(0, 0, 4, 4).Inset(3), "inset never goes negative")
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)
	inner := outer.Centered(20, 10)

	assert.Equal(t, NewRect(30, 7, 20, 10), inner)
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 3, Min(3, 7))
	assert.Equal(t, -2, Min(4, -2))
	assert.Equal(t, 7, Max(3, 7))
	assert.Equal(t, 4, Max(4, -2))
}
