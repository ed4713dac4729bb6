package passgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrength(t *testing.T) {
	tests := []struct {
		password string
		want     int
	}{
		{"", 0},
		{"abc", 1},
		{"abcdefgh", 2},
		{"abcdefgh1", 3},
		{"Abcdefgh1", 4},
		{"Abcdefgh1!", 5},
		{"abcdefghijklmnop", 4},
		{"Abcdefghijklmnop1!", 5},
		{"!!!!", 1},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, Strength(tt.password))
		})
	}
}

func TestStrengthLabel(t *testing.T) {
	assert.Equal(t, "weak", StrengthLabel(0))
	assert.Equal(t, "weak", StrengthLabel(2))
	assert.Equal(t, "fair", StrengthLabel(3))
	assert.Equal(t, "good", StrengthLabel(4))
	assert.Equal(t, "strong", StrengthLabel(5))
}
