package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("0"))
	assert.Equal(t, 1, ParsePage("-3"))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 7, ParsePage("7"))
}

func TestParseLimit(t *testing.T) {
	assert.Equal(t, 10, ParseLimit("", 10, 100))
	assert.Equal(t, 10, ParseLimit("abc", 10, 100))
	assert.Equal(t, 1, ParseLimit("-5", 10, 100))
	assert.Equal(t, 100, ParseLimit("500", 10, 100))
	assert.Equal(t, 25, ParseLimit("25", 10, 100))
	assert.Equal(t, 50, ParseLimit("75", 10, 50))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, int64(1), TotalPages(0, 10))
	assert.Equal(t, int64(1), TotalPages(1, 10))
	assert.Equal(t, int64(1), TotalPages(10, 10))
	assert.Equal(t, int64(2), TotalPages(11, 10))
	assert.Equal(t, int64(4), TotalPages(100, 30))
}
