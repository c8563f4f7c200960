package discount

import (
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func baseCode() DiscountCode {
	return DiscountCode{
		ID:     "dc-1",
		Code:   "SUMMER10",
		Type:   "%",
		Value:  10,
		Active: true,
	}
}

func req(code string) ValidateInput {
	return ValidateInput{Code: code, Email: "alice@example.com", CourseID: "course-1"}
}

func TestEvaluateValid(t *testing.T) {
	res := Evaluate(baseCode(), req("SUMMER10"), testNow)
	if !res.Valid {
		t.Fatalf("expected valid, got message %q", res.Message)
	}
	if res.Code == nil || res.Code.ID != "dc-1" {
		t.Fatal("expected the full code document in the result")
	}
}

func TestEvaluateNormalizesSubmittedCode(t *testing.T) {
	for _, submitted := range []string{"summer10", "  SUMMER10  ", "Summer10"} {
		res := Evaluate(baseCode(), req(submitted), testNow)
		if !res.Valid {
			t.Errorf("submitted %q: expected valid, got %q", submitted, res.Message)
		}
	}
}

func TestEvaluateInactiveAlwaysInvalid(t *testing.T) {
	dc := baseCode()
	dc.Active = false
	res := Evaluate(dc, req("SUMMER10"), testNow)
	if res.Valid {
		t.Fatal("inactive code must never validate")
	}
	if res.Message != "Code inconnu ou invalide" {
		t.Errorf("unexpected message %q", res.Message)
	}
}

func TestEvaluateUnknownCode(t *testing.T) {
	res := Evaluate(baseCode(), req("WINTER20"), testNow)
	if res.Valid {
		t.Fatal("mismatched code must not validate")
	}
	if res.Message != "Code inconnu ou invalide" {
		t.Errorf("unexpected message %q", res.Message)
	}
}

func TestEvaluateExpiry(t *testing.T) {
	tests := []struct {
		name      string
		expiresAt string
		wantValid bool
		wantMsg   string
	}{
		{"expired datetime", "2020-01-01T10:00:00Z", false, "Code promo expiré"},
		{"expired date only", "2020-01-01", false, "Code promo expiré"},
		{"future datetime", "2030-01-01T00:00:00Z", true, ""},
		{"future date only", "2030-01-01", true, ""},
		// Date-only expiry holds until 23:59:59 UTC of that day.
		{"expires today", testNow.Format("2006-01-02"), true, ""},
		// Unparseable expiry is leniently treated as "not expired".
		{"garbage expiry", "not-a-date", true, ""},
		{"empty expiry", "", true, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dc := baseCode()
			dc.ExpiresAt = tc.expiresAt
			res := Evaluate(dc, req("SUMMER10"), testNow)
			if res.Valid != tc.wantValid {
				t.Fatalf("valid=%v, want %v (message %q)", res.Valid, tc.wantValid, res.Message)
			}
			if !tc.wantValid && res.Message != tc.wantMsg {
				t.Errorf("message %q, want %q", res.Message, tc.wantMsg)
			}
		})
	}
}

func TestEvaluateDateOnlyExpiryEndOfDay(t *testing.T) {
	dc := baseCode()
	dc.ExpiresAt = "2025-06-15"

	lateSameDay := time.Date(2025, 6, 15, 23, 59, 58, 0, time.UTC)
	if res := Evaluate(dc, req("SUMMER10"), lateSameDay); !res.Valid {
		t.Errorf("code should hold until end of expiry day, got %q", res.Message)
	}

	nextDay := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	if res := Evaluate(dc, req("SUMMER10"), nextDay); res.Valid {
		t.Error("code should be expired the day after")
	}
}

func TestEvaluateMaxUses(t *testing.T) {
	dc := baseCode()
	dc.MaxUses = 3

	for used := 0; used < 3; used++ {
		dc.Used = used
		if res := Evaluate(dc, req("SUMMER10"), testNow); !res.Valid {
			t.Errorf("used=%d under cap: expected valid, got %q", used, res.Message)
		}
	}

	dc.Used = 3
	res := Evaluate(dc, req("SUMMER10"), testNow)
	if res.Valid {
		t.Fatal("code at usage cap must not validate")
	}
	if !strings.Contains(res.Message, "épuisé") {
		t.Errorf("unexpected message %q", res.Message)
	}
}

func TestEvaluateUncappedUsage(t *testing.T) {
	dc := baseCode()
	dc.Used = 10000
	if res := Evaluate(dc, req("SUMMER10"), testNow); !res.Valid {
		t.Errorf("code without maxUses must not exhaust, got %q", res.Message)
	}
}

func TestEvaluateCourseAllowList(t *testing.T) {
	dc := baseCode()
	dc.Courses = []string{"course-1", "course-2"}

	if res := Evaluate(dc, req("SUMMER10"), testNow); !res.Valid {
		t.Errorf("listed course: expected valid, got %q", res.Message)
	}

	in := req("SUMMER10")
	in.CourseID = "course-9"
	res := Evaluate(dc, in, testNow)
	if res.Valid {
		t.Fatal("unlisted course must not validate")
	}
	if res.Message != "Code non applicable à ce cours" {
		t.Errorf("unexpected message %q", res.Message)
	}

	// Empty allow-list means universally applicable, not "applies to none".
	dc.Courses = nil
	if res := Evaluate(dc, in, testNow); !res.Valid {
		t.Errorf("empty allow-list: expected valid for any course, got %q", res.Message)
	}
}

func TestEvaluateAssignedEmail(t *testing.T) {
	dc := baseCode()
	dc.AssignedEmail = "Alice@Example.com"

	// Comparison is case-insensitive.
	if res := Evaluate(dc, req("SUMMER10"), testNow); !res.Valid {
		t.Errorf("matching email: expected valid, got %q", res.Message)
	}

	in := req("SUMMER10")
	in.Email = "bob@example.com"
	res := Evaluate(dc, in, testNow)
	if res.Valid {
		t.Fatal("code assigned to another account must not validate")
	}
	if res.Message != "Code réservé à un autre compte" {
		t.Errorf("unexpected message %q", res.Message)
	}

	// Blank assignment applies to everyone.
	dc.AssignedEmail = "   "
	if res := Evaluate(dc, in, testNow); !res.Valid {
		t.Errorf("blank assignedEmail: expected valid, got %q", res.Message)
	}
}

func TestEvaluateCheckOrder(t *testing.T) {
	// Expiry is reported before usage, allow-list and assignment failures.
	dc := baseCode()
	dc.ExpiresAt = "2020-01-01"
	dc.MaxUses = 1
	dc.Used = 5
	dc.Courses = []string{"other"}
	dc.AssignedEmail = "bob@example.com"

	res := Evaluate(dc, req("SUMMER10"), testNow)
	if res.Valid || res.Message != "Code promo expiré" {
		t.Errorf("expected expiry to win, got valid=%v message=%q", res.Valid, res.Message)
	}
}

func TestEvaluateExpiredScenario(t *testing.T) {
	// The SUMMER10 scenario: a 2020 expiry validated after 2020.
	dc := DiscountCode{Code: "SUMMER10", Type: "%", Value: 10, ExpiresAt: "2020-01-01", Active: true}
	res := Evaluate(dc, ValidateInput{Code: "SUMMER10"}, testNow)
	if res.Valid {
		t.Fatal("expected invalid")
	}
	if !strings.Contains(res.Message, "expiré") {
		t.Errorf("expected an expiry message, got %q", res.Message)
	}
}

func TestNormalizeCode(t *testing.T) {
	if got := NormalizeCode("  summer10 "); got != "SUMMER10" {
		t.Errorf("NormalizeCode = %q", got)
	}
}
