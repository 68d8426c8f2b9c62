package models

import "time"

// Guest represents a wedding guest
type Guest struct {
	ID                  int64      `json:"id"`
	WeddingID           int64      `json:"wedding_id"`
	Name                string     `json:"name"`
	Email               *string    `json:"email"`
	Phone               *string    `json:"phone"`
	Address             *string    `json:"address"`
	RSVPStatus          RSVPStatus `json:"rsvp_status"`
	PlusOne             bool       `json:"plus_one"`
	DietaryRestrictions *string    `json:"dietary_restrictions"`
	GiftDescription     *string    `json:"gift_description"`
	GiftValue           *Money     `json:"gift_value"`
	TableNumber         *int       `json:"table_number"`
	CreatedAt           time.Time  `json:"created_at"`
}

// RSVPStatus represents the attendance confirmation status
type RSVPStatus string

const (
	RSVPPending      RSVPStatus = "pending"
	RSVPAttending    RSVPStatus = "attending"
	RSVPNotAttending RSVPStatus = "not_attending"
)

// RSVPStatuses lists every accepted status. Store constraints are built from it.
var RSVPStatuses = []RSVPStatus{RSVPPending, RSVPAttending, RSVPNotAttending}

// CreateGuestInput carries no RSVP or gift fields: new guests are pending
// and have received nothing.
type CreateGuestInput struct {
	WeddingID           int64   `json:"wedding_id" validate:"required,gt=0"`
	Name                string  `json:"name" validate:"required"`
	Email               *string `json:"email" validate:"omitempty,email"`
	Phone               *string `json:"phone"`
	Address             *string `json:"address"`
	PlusOne             *bool   `json:"plus_one" validate:"required"`
	DietaryRestrictions *string `json:"dietary_restrictions"`
	TableNumber         *int    `json:"table_number" validate:"omitempty,gt=0"`
}

// UpdateGuestRsvpInput records a guest's answer.
type UpdateGuestRsvpInput struct {
	ID                  int64            `json:"id" validate:"required,gt=0"`
	RSVPStatus          RSVPStatus       `json:"rsvp_status" validate:"required,oneof=pending attending not_attending"`
	DietaryRestrictions Nullable[string] `json:"dietary_restrictions"`
}

// Apply writes the answer onto g.
func (in UpdateGuestRsvpInput) Apply(g *Guest) {
	g.RSVPStatus = in.RSVPStatus
	in.DietaryRestrictions.Apply(&g.DietaryRestrictions)
}

// UpdateGuestGiftInput records a received gift. Both fields must be
// present; either may be null.
type UpdateGuestGiftInput struct {
	ID              int64            `json:"id" validate:"required,gt=0"`
	GiftDescription Nullable[string] `json:"gift_description"`
	GiftValue       Nullable[Money]  `json:"gift_value" validate:"omitempty,gte=0"`
}

// Apply writes the gift onto g.
func (in UpdateGuestGiftInput) Apply(g *Guest) {
	g.GiftDescription = in.GiftDescription.Ptr()
	g.GiftValue = in.GiftValue.Ptr()
}

// GuestFilter selects guests of one wedding, optionally by RSVP status.
type GuestFilter struct {
	WeddingID  int64       `json:"wedding_id" validate:"required,gt=0"`
	RSVPStatus *RSVPStatus `json:"rsvp_status" validate:"omitempty,oneof=pending attending not_attending"`
}

// Match reports whether g satisfies f.
func (f GuestFilter) Match(g Guest) bool {
	if g.WeddingID != f.WeddingID {
		return false
	}
	return f.RSVPStatus == nil || g.RSVPStatus == *f.RSVPStatus
}

// Headcount is the number of seats the guest takes when attending.
func (g Guest) Headcount() int {
	if g.RSVPStatus != RSVPAttending {
		return 0
	}
	if g.PlusOne {
		return 2
	}
	return 1
}
