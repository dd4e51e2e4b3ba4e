// Package sources adapts the domain stores to the narrow read interfaces
// the notification dispatcher needs.
package sources

import (
	"context"

	"github.com/google/uuid"

	"quickclaim/internal/claim"
	"quickclaim/internal/notification"
	"quickclaim/internal/user"
)

// ClaimReader resolves a claim together with its owner's email address.
type ClaimReader struct {
	claims claim.Store
	users  user.Store
}

func NewClaimReader(claims claim.Store, users user.Store) *ClaimReader {
	return &ClaimReader{claims: claims, users: users}
}

func (r *ClaimReader) ClaimForNotification(ctx context.Context, claimID uuid.UUID) (notification.ClaimInfo, error) {
	c, err := r.claims.FindByID(ctx, claimID)
	if err != nil {
		return notification.ClaimInfo{}, err
	}
	owner, err := r.users.FindByID(ctx, c.UserID)
	if err != nil {
		return notification.ClaimInfo{}, err
	}
	return notification.ClaimInfo{
		Type:       c.Type,
		Status:     string(c.Status),
		Amount:     c.Amount,
		AdminNotes: c.AdminNotes,
		OwnerEmail: owner.Email,
	}, nil
}

// UserReader resolves the profile fields used to address user-scoped
// notifications.
type UserReader struct {
	users user.Store
}

func NewUserReader(users user.Store) *UserReader {
	return &UserReader{users: users}
}

func (r *UserReader) UserForNotification(ctx context.Context, userID uuid.UUID) (notification.UserInfo, error) {
	p, err := r.users.FindByID(ctx, userID)
	if err != nil {
		return notification.UserInfo{}, err
	}
	return notification.UserInfo{
		Name:  p.Name,
		Email: p.Email,
	}, nil
}
