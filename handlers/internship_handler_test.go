package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePositions(t *testing.T) {
	assert.Equal(t, 5, ParsePositions("5"))
	assert.Equal(t, 1, ParsePositions("1"))
	assert.Equal(t, 1, ParsePositions("0"))
	assert.Equal(t, 1, ParsePositions("-3"))
	assert.Equal(t, 1, ParsePositions(""))
	assert.Equal(t, 1, ParsePositions("many"))
}
