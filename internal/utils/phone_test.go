package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhoneNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"already e164", "+14155550123", "+14155550123", false},
		{"formatted", "+1 (415) 555-0123", "+14155550123", false},
		{"international prefix", "0062 812 3456 789", "+628123456789", false},
		{"missing plus", "628123456789", "+628123456789", false},
		{"too short", "+12345", "", true},
		{"letters", "+1415CALLME", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhoneNumber(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMaskPhoneNumber(t *testing.T) {
	assert.Equal(t, "*******0123", MaskPhoneNumber("+14155550123"))
	assert.Equal(t, "123", MaskPhoneNumber("123"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "resour...", Truncate("resource-exhausted", 9))
	assert.Equal(t, "...", Truncate("abcdef", 2))
}
