package logging

import "strings"

// SecretKeyPatterns contains substrings that indicate an attribute key likely
// carries sensitive input. Keys are matched case-insensitively.
var SecretKeyPatterns = []string{
	"PASSWORD",
	"PASSCODE",
	"SECRET",
	"TOKEN",
	"CVV",
	"CARD_NUMBER",
}

// ShouldMask returns true if the key name suggests it holds sensitive data.
func ShouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, pattern := range SecretKeyPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}

// MaskValue masks a potentially sensitive string value.
// Values with 4 or fewer characters are fully masked as "********".
// Longer values show the last 4 characters: "****xxxx".
func MaskValue(value string) string {
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}
