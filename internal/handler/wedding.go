package handler

import (
	"context"

	"wedding-planner/internal/apperr"
	"wedding-planner/internal/models"
)

// CreateWedding stores a new wedding
func (p *Planner) CreateWedding(ctx context.Context, input models.CreateWeddingInput) (*models.Wedding, error) {
	if err := p.validate(input); err != nil {
		return nil, p.fail("createWedding", err)
	}

	wedding := models.Wedding{
		Title:       input.Title,
		BrideName:   input.BrideName,
		GroomName:   input.GroomName,
		WeddingDate: input.WeddingDate.Time,
		Venue:       input.Venue,
		Description: input.Description,
		TotalBudget: roundMoney(*input.TotalBudget),
	}
	if err := p.repo.InsertWedding(ctx, &wedding); err != nil {
		return nil, p.fail("createWedding", apperr.Store("insert wedding", err))
	}

	p.log.Info().Int64("wedding_id", wedding.ID).Msg("Wedding created")
	return &wedding, nil
}

// GetWeddings returns every wedding
func (p *Planner) GetWeddings(ctx context.Context) ([]models.Wedding, error) {
	weddings, err := p.repo.SelectWeddings(ctx, models.WeddingFilter{})
	if err != nil {
		return nil, p.fail("getWeddings", apperr.Store("fetch weddings", err))
	}
	return weddings, nil
}

// GetWeddingSummary aggregates a wedding's progress: tasks done, money
// planned and spent, and who is coming.
func (p *Planner) GetWeddingSummary(ctx context.Context, input models.WeddingRef) (*models.WeddingSummary, error) {
	if err := p.validate(input); err != nil {
		return nil, p.fail("getWeddingSummary", err)
	}
	wedding, err := p.GetWedding(ctx, input.WeddingID)
	if err != nil {
		return nil, p.fail("getWeddingSummary", err)
	}

	tasks, err := p.repo.SelectTasks(ctx, models.TaskFilter{WeddingID: wedding.ID})
	if err != nil {
		return nil, p.fail("getWeddingSummary", apperr.Store("fetch tasks", err))
	}
	items, err := p.repo.SelectBudgetItems(ctx, models.BudgetFilter{WeddingID: wedding.ID})
	if err != nil {
		return nil, p.fail("getWeddingSummary", apperr.Store("fetch budget", err))
	}
	guests, err := p.repo.SelectGuests(ctx, models.GuestFilter{WeddingID: wedding.ID})
	if err != nil {
		return nil, p.fail("getWeddingSummary", apperr.Store("fetch guests", err))
	}

	summary := &models.WeddingSummary{
		WeddingID:     wedding.ID,
		TasksTotal:    len(tasks),
		TotalBudget:   wedding.TotalBudget,
		GuestsInvited: len(guests),
	}
	for _, t := range tasks {
		if t.Completed {
			summary.TasksCompleted++
		}
	}
	for _, b := range items {
		summary.EstimatedTotal = summary.EstimatedTotal.Add(b.EstimatedCost)
		if b.ActualCost != nil {
			summary.ActualTotal = summary.ActualTotal.Add(*b.ActualCost)
		}
		summary.PaidTotal = summary.PaidTotal.Add(b.Spent())
	}
	summary.RemainingBudget = wedding.TotalBudget.Sub(summary.PaidTotal)
	for _, g := range guests {
		switch g.RSVPStatus {
		case models.RSVPPending:
			summary.GuestsPending++
		case models.RSVPAttending:
			summary.GuestsAttending++
		case models.RSVPNotAttending:
			summary.GuestsDeclined++
		}
		summary.ExpectedHeadcount += g.Headcount()
		if g.GiftValue != nil {
			summary.GiftValueTotal = summary.GiftValueTotal.Add(*g.GiftValue)
		}
	}
	return summary, nil
}
