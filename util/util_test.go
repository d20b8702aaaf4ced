package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModAlwaysNonNegative(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(5, Mod(5, 12))
	assert.Equal(5, Mod(17, 12))
	assert.Equal(10, Mod(-2, 12))
	assert.Equal(0, Mod(-24, 12))
}

func TestMin(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1, Min(1, 2))
	assert.Equal(1, Min(2, 1))
	assert.Equal(-3, Min(-3, 0))
}
