package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var e164Pattern = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)

// NormalizePhoneNumber strips formatting characters and validates the result as E.164
func NormalizePhoneNumber(phone string) (string, error) {
	stripped := strings.NewReplacer("-", "", " ", "", "(", "", ")", "", ".", "").Replace(strings.TrimSpace(phone))
	if strings.HasPrefix(stripped, "00") {
		stripped = "+" + stripped[2:]
	}
	if !strings.HasPrefix(stripped, "+") {
		stripped = "+" + stripped
	}

	if !e164Pattern.MatchString(stripped) {
		return "", fmt.Errorf("invalid phone number format")
	}

	return stripped, nil
}
