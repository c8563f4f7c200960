package chat

import (
	"testing"
)

func candidates() []Participant {
	return []Participant{
		{ID: "p1", Name: "Aïcha Diallo", Email: "aicha@example.com", Whatsapp: "+41 79 111 22 33"},
		{ID: "p2", Name: "Ben", Email: "ben@example.com"},
		{ID: "p3", Name: "Chloé", Whatsapp: "0041794445566"},
	}
}

func TestMatchByEmailCaseInsensitive(t *testing.T) {
	got := Match(candidates(), "someone else", "AICHA@Example.COM", "")
	if got == nil || got.ID != "p1" {
		t.Fatalf("expected p1 by email, got %+v", got)
	}
}

func TestMatchByWhatsappSubstring(t *testing.T) {
	// stored with spaces and +41, submitted with 0041 prefix
	got := Match(candidates(), "stranger", "", "0041791112233")
	if got == nil || got.ID != "p1" {
		t.Fatalf("expected p1 by phone, got %+v", got)
	}

	// submitted shorter than stored: still a substring hit
	got = Match(candidates(), "stranger", "", "794445566")
	if got == nil || got.ID != "p3" {
		t.Fatalf("expected p3 by phone suffix, got %+v", got)
	}
}

func TestMatchShortPhoneIgnored(t *testing.T) {
	if got := Match(candidates(), "stranger", "", "4111"); got != nil {
		t.Fatalf("four digits must not match anything, got %+v", got)
	}
}

func TestMatchByNameAccentFolded(t *testing.T) {
	got := Match(candidates(), "chloe", "", "")
	if got == nil || got.ID != "p3" {
		t.Fatalf("expected p3 by folded name, got %+v", got)
	}

	got = Match(candidates(), "AÏCHA DIALLO", "", "")
	if got == nil || got.ID != "p1" {
		t.Fatalf("expected p1 by folded name, got %+v", got)
	}
}

func TestMatchEmailWinsOverName(t *testing.T) {
	// name points at p2, email at p1: email check runs first
	got := Match(candidates(), "Ben", "aicha@example.com", "")
	if got == nil || got.ID != "p1" {
		t.Fatalf("expected email to take precedence, got %+v", got)
	}
}

func TestMatchNoHit(t *testing.T) {
	if got := Match(candidates(), "Nouveau Client", "new@example.com", "+41760000000"); got != nil {
		t.Fatalf("expected no match, got %+v", got)
	}
}

func TestMatchEmptyInputs(t *testing.T) {
	if got := Match(candidates(), "", "", ""); got != nil {
		t.Fatalf("blank visitor must not match, got %+v", got)
	}
}

func TestBackfillFillsOnlyGaps(t *testing.T) {
	p := &Participant{ID: "p2", Name: "Ben", Email: "ben@example.com"}
	updates := Backfill(p, "other@example.com", "+41791234567")

	if _, ok := updates["email"]; ok {
		t.Error("existing email must never be overwritten")
	}
	if updates["whatsapp"] != "+41791234567" {
		t.Errorf("missing whatsapp should be backfilled, got %v", updates["whatsapp"])
	}
}

func TestBackfillNothingToDo(t *testing.T) {
	p := &Participant{ID: "p1", Name: "Aïcha", Email: "a@x.com", Whatsapp: "+41791112233"}
	if updates := Backfill(p, "b@y.com", "+41790000000"); len(updates) != 0 {
		t.Fatalf("fully populated participant should yield no updates, got %v", updates)
	}
}
