package handler

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"go.mau.fi/whatsmeow/types/events"

	"wedding-planner/internal/apperr"
	"wedding-planner/internal/models"
	"wedding-planner/internal/whatsapp"
)

// Messenger delivers a text message to a phone number.
type Messenger interface {
	SendMessage(ctx context.Context, phoneNumber, message string) error
}

var (
	acceptKeywords  = []string{"yes", "yep", "yeah", "accept", "accepting", "attending", "coming", "will come", "will be there", "✅"}
	declineKeywords = []string{"no", "nope", "decline", "declining", "not coming", "can't come", "won't come", "can't make it", "not attending", "❌"}
)

// RSVPHandler turns WhatsApp replies into RSVP updates for one wedding.
type RSVPHandler struct {
	messenger Messenger
	planner   *Planner
	weddingID int64
	log       zerolog.Logger
}

// NewRSVPHandler creates a new RSVP handler
func NewRSVPHandler(messenger Messenger, planner *Planner, weddingID int64, log zerolog.Logger) *RSVPHandler {
	return &RSVPHandler{
		messenger: messenger,
		planner:   planner,
		weddingID: weddingID,
		log:       log.With().Str("component", "rsvp").Int64("wedding_id", weddingID).Logger(),
	}
}

// HandleMessage processes incoming WhatsApp messages for RSVP responses
func (h *RSVPHandler) HandleMessage(msg *events.Message) error {
	if msg.Message == nil {
		return nil
	}
	text := msg.Message.GetConversation()
	if text == "" {
		text = msg.Message.GetExtendedTextMessage().GetText()
	}
	if text == "" {
		return nil
	}
	return h.HandleReply(context.Background(), whatsapp.SenderPhone(msg), text)
}

// HandleReply updates the RSVP of the guest owning phoneNumber when text is a
// clear yes or no, then confirms by message. Unknown senders and unclear
// texts are ignored.
func (h *RSVPHandler) HandleReply(ctx context.Context, phoneNumber, text string) error {
	// Only process RSVP if guest was previously invited
	guest, err := h.guestByPhone(ctx, phoneNumber)
	if err != nil {
		return err
	}
	if guest == nil {
		h.log.Debug().Str("phone", phoneNumber).Msg("Message from unknown sender ignored")
		return nil
	}

	status, ok := parseReply(text)
	if !ok {
		return nil
	}

	wedding, err := h.planner.GetWedding(ctx, h.weddingID)
	if err != nil {
		return err
	}

	if _, err := h.planner.UpdateGuestRsvp(ctx, models.UpdateGuestRsvpInput{ID: guest.ID, RSVPStatus: status}); err != nil {
		return fmt.Errorf("failed to update RSVP: %w", err)
	}

	if err := h.messenger.SendMessage(ctx, phoneNumber, confirmationMessage(wedding, status)); err != nil {
		return fmt.Errorf("failed to send confirmation: %w", err)
	}
	return nil
}

// SendInvitation sends the wedding invitation to a guest's phone
func (h *RSVPHandler) SendInvitation(ctx context.Context, guestID int64) error {
	wedding, err := h.planner.GetWedding(ctx, h.weddingID)
	if err != nil {
		return err
	}
	guest, err := h.planner.GetGuest(ctx, h.weddingID, guestID)
	if err != nil {
		return err
	}
	if guest.Phone == nil || strings.TrimSpace(*guest.Phone) == "" {
		return apperr.Validation("phone", "guest has no phone number")
	}

	if err := h.messenger.SendMessage(ctx, *guest.Phone, invitationMessage(wedding, guest)); err != nil {
		return fmt.Errorf("failed to send invitation: %w", err)
	}
	h.log.Info().Int64("guest_id", guest.ID).Msg("Invitation sent")
	return nil
}

func (h *RSVPHandler) guestByPhone(ctx context.Context, phoneNumber string) (*models.Guest, error) {
	phoneNumber = whatsapp.NormalizePhoneNumber(phoneNumber)
	guests, err := h.planner.GetWeddingGuests(ctx, models.GuestFilter{WeddingID: h.weddingID})
	if err != nil {
		return nil, err
	}
	for _, g := range guests {
		if g.Phone != nil && whatsapp.NormalizePhoneNumber(*g.Phone) == phoneNumber {
			return &g, nil
		}
	}
	return nil, nil
}

// parseReply maps a free-text reply to an RSVP status. Declines are checked
// first since phrases like "not coming" contain an accept keyword.
func parseReply(text string) (models.RSVPStatus, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	switch {
	case containsAny(text, declineKeywords...):
		return models.RSVPNotAttending, true
	case containsAny(text, acceptKeywords...):
		return models.RSVPAttending, true
	}
	return "", false
}

// containsAny checks if the text contains any of the given keywords. Single
// words must match a whole word; phrases and emoji match anywhere.
func containsAny(text string, keywords ...string) bool {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	for _, keyword := range keywords {
		if strings.ContainsRune(keyword, ' ') || !unicode.IsLetter([]rune(keyword)[0]) {
			if strings.Contains(text, keyword) {
				return true
			}
			continue
		}
		for _, w := range words {
			if w == keyword {
				return true
			}
		}
	}
	return false
}

func invitationMessage(w *models.Wedding, g *models.Guest) string {
	location := "Venue TBD"
	if w.Venue != nil && *w.Venue != "" {
		location = *w.Venue
	}
	return fmt.Sprintf(
		"🎉 *Wedding Invitation*\n\n"+
			"Dear %s,\n\n"+
			"You are cordially invited to celebrate the wedding of\n\n"+
			"*%s* & *%s*\n\n"+
			"📅 Date: %s\n"+
			"📍 Location: %s\n\n"+
			"Reply with:\n✅ *YES* to accept\n❌ *NO* to decline",
		g.Name, w.BrideName, w.GroomName, w.WeddingDate.Format("Monday, January 2, 2006"), location,
	)
}

func confirmationMessage(w *models.Wedding, status models.RSVPStatus) string {
	if status == models.RSVPAttending {
		return fmt.Sprintf(
			"🎉 Wonderful! We're so excited to celebrate with you!\n\n"+
				"We've confirmed your attendance for the wedding of %s & %s on %s.\n\n"+
				"See you there! 💕",
			w.BrideName, w.GroomName, w.WeddingDate.Format("Monday, January 2, 2006"),
		)
	}
	return fmt.Sprintf(
		"Thank you for letting us know. We're sorry you won't be able to join us for the wedding of %s & %s.\n\n"+
			"We'll miss you! 💕",
		w.BrideName, w.GroomName,
	)
}
