package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveMinutes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"empty falls back", "", 25},
		{"whitespace falls back", "   ", 25},
		{"valid integer", "45", 45},
		{"valid fraction", "1.5", 1.5},
		{"zero falls back", "0", 25},
		{"negative falls back", "-10", 25},
		{"unparsable falls back", "soon", 25},
		{"trimmed input", " 30 ", 30},
		{"nan falls back", "nan", 25},
		{"inf falls back", "inf", 25},
		{"positive inf falls back", "+Inf", 25},
		{"negative inf falls back", "-inf", 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveMinutes(tt.raw, 25))
		})
	}
}

func TestResolveCount(t *testing.T) {
	assert.Equal(t, 6, resolveCount("6", 4))
	assert.Equal(t, 4, resolveCount("0", 4))
	assert.Equal(t, 4, resolveCount("-1", 4))
	assert.Equal(t, 4, resolveCount("many", 4))
}

func TestMinutesToDuration(t *testing.T) {
	assert.Equal(t, 25*time.Minute, minutesToDuration(25))
	assert.Equal(t, 90*time.Second, minutesToDuration(1.5))
}

func TestValidatePositiveNumber(t *testing.T) {
	assert.NoError(t, validatePositiveNumber("25"))
	assert.NoError(t, validatePositiveNumber("0.5"))
	assert.Error(t, validatePositiveNumber("0"))
	assert.Error(t, validatePositiveNumber("-2"))
	assert.Error(t, validatePositiveNumber("abc"))
	assert.Error(t, validatePositiveNumber("nan"))
	assert.Error(t, validatePositiveNumber("inf"))
	assert.Error(t, validatePositiveNumber("-inf"))
}

func TestValidatePositiveInt(t *testing.T) {
	assert.NoError(t, validatePositiveInt("4"))
	assert.Error(t, validatePositiveInt("0"))
	assert.Error(t, validatePositiveInt("2.5"))
	assert.Error(t, validatePositiveInt(""))
}
