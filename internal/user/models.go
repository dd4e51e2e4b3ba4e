package user

import (
	"time"

	"github.com/google/uuid"
)

// Preferences are the user's email notification flags. They are stored and
// exposed for the profile page; transactional claim mail is sent regardless.
type Preferences struct {
	ClaimUpdates bool `json:"claim_updates"`
	Marketing    bool `json:"marketing"`
	Reminders    bool `json:"reminders"`
}

// Profile is the account record created at signup. Region and WorkType stay
// empty until the user declares them; eligibility matching returns nothing
// until both are present.
type Profile struct {
	ID                 uuid.UUID   `json:"id"`
	Email              string      `json:"email"`
	Name               string      `json:"name"`
	Region             string      `json:"region"`
	WorkType           string      `json:"work_type"`
	IDDocumentRef      string      `json:"id_document_ref,omitempty"`
	OnboardingComplete bool        `json:"onboarding_complete"`
	EmailPreferences   Preferences `json:"email_preferences"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

// DisplayName is what email templates greet the user with.
func (p *Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return "there"
}

// HasWorkProfile reports whether both matching dimensions are declared.
func (p *Profile) HasWorkProfile() bool {
	return p.Region != "" && p.WorkType != ""
}
