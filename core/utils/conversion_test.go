package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFloat(t *testing.T) {
	f, err := ToFloat(" 12.5 ")
	assert.NoError(t, err)
	assert.Equal(t, 12.5, f)

	_, err = ToFloat("twelve")
	assert.Error(t, err)
}

func TestLeadingFloat(t *testing.T) {
	tests := []struct {
		name string
		val  string
		ok   bool
		want float64
	}{
		{"Plain", "12", true, 12},
		{"PerFlOz", "0.5 / FlOz", true, 0.5},
		{"Missing", "", false, -1},
		{"Garbage", "abc", true, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LeadingFloat(tt.val, tt.ok, -1))
		})
	}
}

func TestFormatFixed(t *testing.T) {
	assert.Equal(t, "12.00", FormatFixed(12, 2))
	assert.Equal(t, "18", FormatFixed(17.5, 0))
	assert.Equal(t, "2", FormatFixed(2.5, 0))
	assert.Equal(t, "7", FormatFixed(6.75, 0))
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool("true"))
	assert.True(t, ToBool("1"))
	assert.True(t, ToBool("True"))
	assert.False(t, ToBool("false"))
	assert.False(t, ToBool(""))
}

func TestJoinNonEmpty(t *testing.T) {
	assert.Equal(t, "10 Fishing", JoinNonEmpty(" ", "10", "Fishing"))
	assert.Equal(t, "10", JoinNonEmpty(" ", "10", ""))
}
