package handler

import (
	"context"

	"wedding-planner/internal/apperr"
	"wedding-planner/internal/models"
)

// CreateGuest stores a new guest. RSVP starts pending and no gift is recorded.
func (p *Planner) CreateGuest(ctx context.Context, input models.CreateGuestInput) (*models.Guest, error) {
	if err := p.validate(input); err != nil {
		return nil, p.fail("createGuest", err)
	}
	if _, err := p.GetWedding(ctx, input.WeddingID); err != nil {
		return nil, p.fail("createGuest", err)
	}

	guest := models.Guest{
		WeddingID:           input.WeddingID,
		Name:                input.Name,
		Email:               input.Email,
		Phone:               input.Phone,
		Address:             input.Address,
		RSVPStatus:          models.RSVPPending,
		PlusOne:             *input.PlusOne,
		DietaryRestrictions: input.DietaryRestrictions,
		TableNumber:         input.TableNumber,
	}
	if err := p.repo.InsertGuest(ctx, &guest); err != nil {
		return nil, p.fail("createGuest", apperr.Store("insert guest", err))
	}
	return &guest, nil
}

// GetWeddingGuests lists a wedding's guests, optionally by RSVP status
func (p *Planner) GetWeddingGuests(ctx context.Context, filter models.GuestFilter) ([]models.Guest, error) {
	if err := p.validate(filter); err != nil {
		return nil, p.fail("getWeddingGuests", err)
	}
	guests, err := p.repo.SelectGuests(ctx, filter)
	if err != nil {
		return nil, p.fail("getWeddingGuests", apperr.Store("fetch guests", err))
	}
	return guests, nil
}

// GetGuest returns one guest of a wedding
func (p *Planner) GetGuest(ctx context.Context, weddingID, guestID int64) (*models.Guest, error) {
	guests, err := p.GetWeddingGuests(ctx, models.GuestFilter{WeddingID: weddingID})
	if err != nil {
		return nil, err
	}
	for _, g := range guests {
		if g.ID == guestID {
			return &g, nil
		}
	}
	return nil, apperr.NotFound("Guest with id %d not found", guestID)
}

// UpdateGuestRsvp records a guest's answer and, when supplied, their
// dietary restrictions
func (p *Planner) UpdateGuestRsvp(ctx context.Context, input models.UpdateGuestRsvpInput) (*models.Guest, error) {
	if err := p.validate(input); err != nil {
		return nil, p.fail("updateGuestRsvp", err)
	}
	guest, err := p.repo.UpdateGuest(ctx, input.ID, input.Apply)
	if err != nil {
		return nil, p.fail("updateGuestRsvp", updateError("Guest", input.ID, err))
	}
	p.log.Info().Int64("guest_id", guest.ID).Str("rsvp_status", string(guest.RSVPStatus)).Msg("RSVP updated")
	return guest, nil
}

// UpdateGuestGift records the gift a guest gave
func (p *Planner) UpdateGuestGift(ctx context.Context, input models.UpdateGuestGiftInput) (*models.Guest, error) {
	if err := p.validate(input); err != nil {
		return nil, p.fail("updateGuestGift", err)
	}
	if !input.GiftDescription.Set {
		return nil, p.fail("updateGuestGift", apperr.Validation("gift_description", "is required"))
	}
	if !input.GiftValue.Set {
		return nil, p.fail("updateGuestGift", apperr.Validation("gift_value", "is required"))
	}
	guest, err := p.repo.UpdateGuest(ctx, input.ID, input.Apply)
	if err != nil {
		return nil, p.fail("updateGuestGift", updateError("Guest", input.ID, err))
	}
	return guest, nil
}
