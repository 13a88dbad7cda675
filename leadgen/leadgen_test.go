package leadgen

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	lead := New()
	if lead.FirstName == "" || lead.LastName == "" || lead.Company == "" {
		t.Errorf("expected populated lead, but got %+v", lead)
	}
	if !strings.HasSuffix(lead.Email, "@example.com") {
		t.Errorf("expected example.com email, but got %s", lead.Email)
	}
	if len(lead.Phone) != 10 {
		t.Errorf("expected 10-digit phone, but got %s", lead.Phone)
	}
}

func TestNew_UniqueEmails(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		email := New().Email
		if seen[email] {
			t.Fatalf("expected unique emails, but %s repeated", email)
		}
		seen[email] = true
	}
}

func TestRecord(t *testing.T) {
	lead := New()
	rec := lead.Record()
	if rec["first_name"] != lead.FirstName {
		t.Errorf("expected first_name %s, but got %s", lead.FirstName, rec["first_name"])
	}
	if rec["email"] != lead.Email {
		t.Errorf("expected email %s, but got %s", lead.Email, rec["email"])
	}
	if len(rec) != 5 {
		t.Errorf("expected 5 fields, but got %d", len(rec))
	}
}
