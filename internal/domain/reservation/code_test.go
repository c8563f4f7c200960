package reservation

import (
	"regexp"
	"testing"
)

var codePattern = regexp.MustCompile(`^AFR-[A-Z0-9]{6}$`)

func TestNewCodeFormat(t *testing.T) {
	for i := 0; i < 200; i++ {
		code := NewCode()
		if !codePattern.MatchString(code) {
			t.Fatalf("code %q does not match AFR-XXXXXX", code)
		}
	}
}

func TestNewCodeDistinct(t *testing.T) {
	// Uniqueness is probabilistic (no retry loop); a small sample keeps
	// the collision odds negligible.
	seen := make(map[string]bool, 50)
	for i := 0; i < 50; i++ {
		code := NewCode()
		if seen[code] {
			t.Fatalf("duplicate code %q generated", code)
		}
		seen[code] = true
	}
}
