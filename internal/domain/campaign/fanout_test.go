package campaign

import (
	"testing"
	"time"

	"afroboost/backend/internal/domain/contact"
)

func testContacts() []contact.Contact {
	return []contact.Contact{
		{ID: "c1", Name: "Aïcha", Email: "aicha@example.com", Whatsapp: "+41791112233"},
		{ID: "c2", Name: "Ben", Email: "ben@example.com"},
		{ID: "c3", Name: "Chloé", Email: "chloe@example.com", Whatsapp: "+41794445566"},
	}
}

func TestBuildResultsSingleChannel(t *testing.T) {
	results := BuildResults(testContacts(), Channels{Whatsapp: true})

	if len(results) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(results))
	}
	for _, r := range results {
		if r.Channel != "whatsapp" {
			t.Errorf("expected channel whatsapp, got %q", r.Channel)
		}
		if r.Status != ResultPending {
			t.Errorf("expected pending status, got %q", r.Status)
		}
		if r.SentAt != nil {
			t.Error("expected nil sentAt on a fresh row")
		}
	}
	if results[0].ContactName != "Aïcha" || results[0].ContactPhone != "+41791112233" {
		t.Error("contact snapshot fields not carried into the row")
	}
}

func TestBuildResultsMultiChannel(t *testing.T) {
	results := BuildResults(testContacts(), Channels{Whatsapp: true, Email: true})
	if len(results) != 6 {
		t.Fatalf("expected 3 contacts x 2 channels = 6 rows, got %d", len(results))
	}
}

func TestBuildResultsNoContacts(t *testing.T) {
	results := BuildResults(nil, Channels{Email: true})
	if len(results) != 0 {
		t.Fatalf("expected no rows, got %d", len(results))
	}
}

func TestMarkSentAndCompletion(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	results := BuildResults(testContacts(), Channels{Email: true})

	if AllSent(results) {
		t.Fatal("fresh rows must not read as completed")
	}

	if !MarkSent(results, "c2", "email", now) {
		t.Fatal("expected to find the c2/email row")
	}
	if results[1].Status != ResultSent || results[1].SentAt == nil {
		t.Error("row not flipped to sent")
	}
	if AllSent(results) {
		t.Fatal("one sent row of three must not complete the campaign")
	}

	MarkSent(results, "c1", "email", now)
	MarkSent(results, "c3", "email", now)
	if !AllSent(results) {
		t.Fatal("all rows sent: campaign should read completed")
	}
}

func TestMarkSentUnknownRow(t *testing.T) {
	results := BuildResults(testContacts(), Channels{Email: true})
	if MarkSent(results, "c1", "whatsapp", time.Now()) {
		t.Fatal("whatsapp row should not exist on an email-only campaign")
	}
	if MarkSent(results, "nope", "email", time.Now()) {
		t.Fatal("unknown contact should not match")
	}
}

func TestAllSentEmpty(t *testing.T) {
	if AllSent(nil) {
		t.Fatal("a campaign with no rows is not completed")
	}
}

func TestChannelsEnabled(t *testing.T) {
	ch := Channels{Whatsapp: true, Instagram: true}
	got := ch.Enabled()
	if len(got) != 2 || got[0] != "whatsapp" || got[1] != "instagram" {
		t.Fatalf("unexpected enabled channels %v", got)
	}
}
