package shared

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const MaxBioLen = 500

func FullHandle(username, instance string) string {
	return "@" + username + "@" + instance
}

func TruncateWithEllipsis(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	// https://stackoverflow.com/a/73939904/7479498
	lastSpaceIx := maxLen
	len := 0
	for i, r := range text {
		if unicode.IsSpace(r) {
			lastSpaceIx = i
		}
		len++
		if len > maxLen {
			return text[:lastSpaceIx] + "…"
		}
	}
	// If here, string is shorter or equal to maxLen
	return text
}

// NormalizeInstanceDomain turns whatever the caller pasted (with scheme,
// trailing slash, mixed case) into a bare lower-case domain.
func NormalizeInstanceDomain(instance string) (string, error) {
	res := strings.TrimSpace(instance)
	res = strings.TrimPrefix(res, "http://")
	res = strings.TrimPrefix(res, "https://")
	if ix := strings.IndexByte(res, '/'); ix != -1 {
		res = res[:ix]
	}
	res = strings.ToLower(res)
	if len(res) == 0 {
		return "", errors.New("instance domain cannot be empty")
	}
	var nDots int
	for i := 0; i < len(res); i++ {
		c := res[i]
		if c == '.' {
			nDots++
			continue
		}
		if c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c == '-' || c == ':' {
			continue
		}
		return "", fmt.Errorf("instance domain contains invalid character: %q", c)
	}
	if nDots == 0 {
		return "", errors.New("instance domain must have at least one dot")
	}
	if strings.HasPrefix(res, ".") || strings.HasSuffix(res, ".") {
		return "", errors.New("instance domain cannot start or end with a dot")
	}
	return res, nil
}

// ValidateFocus checks a media focal point; both coordinates live in [-1, 1].
func ValidateFocus(x, y float64) error {
	if x < -1 || x > 1 || y < -1 || y > 1 {
		return fmt.Errorf("focus coordinates must be between -1.0 and 1.0; got (%v, %v)", x, y)
	}
	return nil
}
