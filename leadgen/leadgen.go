// Package leadgen produces synthetic CRM lead data for test runs that
// need fresh, non-colliding records.
package leadgen

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/spvtestleaf/SonicFramework-main/dataset"
)

type Lead struct {
	FirstName string
	LastName  string
	Company   string
	Email     string
	Phone     string
}

var (
	firstNames = []string{
		"Asha", "Bruno", "Carla", "Deepak", "Elena", "Farid",
		"Greta", "Hiro", "Ingrid", "Jonas", "Kavya", "Luis",
	}
	lastNames = []string{
		"Anand", "Becker", "Costa", "Dubois", "Eriksen", "Fischer",
		"Gomez", "Haruki", "Iyer", "Jensen", "Kaur", "Lindqvist",
	}
	companies = []string{
		"Brightline Media", "Cobalt Logistics", "Fernhill Analytics",
		"Lakeside Motors", "Northwind Traders", "Quarry Systems",
		"Summit Retail", "Verve Outfitters",
	}
)

// New returns a lead with a unique email. Names and companies repeat
// across leads; the uuid fragment in the email address does not.
func New() Lead {
	first := firstNames[rand.Intn(len(firstNames))]
	last := lastNames[rand.Intn(len(lastNames))]
	tag := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return Lead{
		FirstName: first,
		LastName:  last,
		Company:   companies[rand.Intn(len(companies))],
		Email:     fmt.Sprintf("%s.%s.%s@example.com", strings.ToLower(first), strings.ToLower(last), tag),
		Phone:     fmt.Sprintf("9%09d", rand.Intn(1_000_000_000)),
	}
}

// Record converts the lead to a dataset record, keyed the way the lead
// creation forms name their fields, so generated leads can be mixed
// with file-loaded rows.
func (l Lead) Record() dataset.Record {
	return dataset.Record{
		"first_name": l.FirstName,
		"last_name":  l.LastName,
		"company":    l.Company,
		"email":      l.Email,
		"phone":      l.Phone,
	}
}
