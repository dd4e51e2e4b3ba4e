package claim

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"quickclaim/pkg/sentinel"
)

// Status is the closed claim lifecycle enumeration:
//
//	draft → submitted → under_review → {approved | rejected}
//	approved → paid
//
// The user-facing submit is the only path out of draft. Administrators may
// move any non-terminal claim forward to under_review, approved, rejected
// or paid without passing through intermediate states.
type Status string

const (
	StatusDraft       Status = "draft"
	StatusSubmitted   Status = "submitted"
	StatusUnderReview Status = "under_review"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
	StatusPaid        Status = "paid"
)

// ParseStatus validates an externally supplied status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusDraft, StatusSubmitted, StatusUnderReview, StatusApproved, StatusRejected, StatusPaid:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown claim status: %q", s)
}

// Terminal reports whether no further transition is defined.
func (s Status) Terminal() bool {
	return s == StatusPaid || s == StatusRejected
}

// adminTargets are the statuses an administrator may move a claim to.
var adminTargets = map[Status]bool{
	StatusUnderReview: true,
	StatusApproved:    true,
	StatusRejected:    true,
	StatusPaid:        true,
}

// Claim tracks one user's request for a benefit program. Ownership is
// immutable for the claim's entire life. Amount and ReviewedAt stay unset
// until an administrator moves the claim out of draft/submitted.
type Claim struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Type        string     `json:"type"`
	Description string     `json:"description,omitempty"`
	Status      Status     `json:"status"`
	Amount      *float64   `json:"amount,omitempty"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	AdminNotes  string     `json:"admin_notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// New constructs a draft claim. Only program type is required.
func New(userID uuid.UUID, claimType, description string, now time.Time) *Claim {
	return &Claim{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        claimType,
		Description: description,
		Status:      StatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// OwnedBy reports whether the claim belongs to the given user.
func (c *Claim) OwnedBy(userID uuid.UUID) bool {
	return c.UserID == userID
}

// CanSubmit validates the user-facing submit transition. Re-submitting a
// non-draft claim is rejected; accepting it would re-stamp SubmittedAt and
// re-fire the submitted notification.
func (c *Claim) CanSubmit() error {
	if c.Status != StatusDraft {
		return sentinel.ErrInvalidState
	}
	return nil
}

// ApplySubmit transitions the claim to submitted. Call CanSubmit first.
func (c *Claim) ApplySubmit(now time.Time) {
	c.Status = StatusSubmitted
	c.SubmittedAt = &now
	c.UpdatedAt = now
}

// CanReview validates an administrator transition to next.
func (c *Claim) CanReview(next Status) error {
	if c.Status.Terminal() {
		return sentinel.ErrInvalidState
	}
	if !adminTargets[next] {
		return sentinel.ErrInvalidState
	}
	return nil
}

// ApplyReview transitions the claim and stamps ReviewedAt. Amount and notes
// are applied only when explicitly provided: a nil pointer means "not
// supplied" and never clobbers an existing value, while a pointer to zero
// explicitly sets the amount to zero. Call CanReview first.
func (c *Claim) ApplyReview(next Status, amount *float64, notes *string, now time.Time) {
	c.Status = next
	c.ReviewedAt = &now
	c.UpdatedAt = now
	if amount != nil {
		v := *amount
		c.Amount = &v
	}
	if notes != nil {
		c.AdminNotes = *notes
	}
}
