package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// LeadStatus is the sales pipeline stage of a lead.
type LeadStatus string

const (
	LeadStatusNew          LeadStatus = "new"
	LeadStatusContacted    LeadStatus = "contacted"
	LeadStatusQualified    LeadStatus = "qualified"
	LeadStatusProposalSent LeadStatus = "proposal_sent"
	LeadStatusWon          LeadStatus = "won"
	LeadStatusLost         LeadStatus = "lost"
	LeadStatusPaid         LeadStatus = "paid"
)

// IsValid checks if the status is a known pipeline stage.
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusProposalSent,
		LeadStatusWon, LeadStatusLost, LeadStatusPaid:
		return true
	default:
		return false
	}
}

// Lead sources.
const (
	LeadSourceContactForm = "contact_form"
	LeadSourceCheckout    = "website_checkout"
)

// Lead is a contact interested in a service.
type Lead struct {
	ID            uuid.UUID  // Primary key.
	Name          string     // Contact name.
	Email         string     // Contact email.
	Phone         string     // Contact phone.
	WebsiteStatus string     // Declared state of the contact's current website, free text.
	Goals         []string   // Ordered goal tags without duplicates.
	Channels      []string   // Ordered marketing channel tags without duplicates.
	Source        string     // Where the lead came from.
	Status        LeadStatus // Pipeline stage.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// UniqueTags returns tags trimmed and de-duplicated in first-seen order.
// Empty tags are dropped.
func UniqueTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	return out
}
