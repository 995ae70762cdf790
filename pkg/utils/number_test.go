package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFloatOrZero(t *testing.T) {
	assert.Equal(t, 12.5, ParseFloatOrZero("12.5"))
	assert.Equal(t, 0.0, ParseFloatOrZero(""))
	assert.Equal(t, 0.0, ParseFloatOrZero("abc"))
	assert.Equal(t, 100.0, ParseFloatOrZero(" 100 "))
	assert.Equal(t, -3.0, ParseFloatOrZero("-3"))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 33.33, RoundWithTwoDecimalPlace(100.0/3.0))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 2.35, RoundWithTwoDecimalPlace(2.345))
}
