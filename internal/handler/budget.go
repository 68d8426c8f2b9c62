package handler

import (
	"context"

	"wedding-planner/internal/apperr"
	"wedding-planner/internal/models"
)

// CreateBudgetItem stores a new budget line. The wedding is checked before
// the insert so a missing parent never leaves a partial write.
func (p *Planner) CreateBudgetItem(ctx context.Context, input models.CreateBudgetItemInput) (*models.BudgetItem, error) {
	if err := p.validate(input); err != nil {
		return nil, p.fail("createBudgetItem", err)
	}
	if _, err := p.GetWedding(ctx, input.WeddingID); err != nil {
		return nil, p.fail("createBudgetItem", err)
	}

	item := models.BudgetItem{
		WeddingID:     input.WeddingID,
		Category:      input.Category,
		ItemName:      input.ItemName,
		EstimatedCost: roundMoney(*input.EstimatedCost),
		ActualCost:    roundMoneyPtr(input.ActualCost),
		Paid:          *input.Paid,
		Vendor:        input.Vendor,
		Notes:         input.Notes,
	}
	if err := p.repo.InsertBudgetItem(ctx, &item); err != nil {
		return nil, p.fail("createBudgetItem", apperr.Store("insert budget item", err))
	}
	return &item, nil
}

// GetWeddingBudget lists a wedding's budget lines, optionally one category
func (p *Planner) GetWeddingBudget(ctx context.Context, filter models.BudgetFilter) ([]models.BudgetItem, error) {
	if err := p.validate(filter); err != nil {
		return nil, p.fail("getWeddingBudget", err)
	}
	items, err := p.repo.SelectBudgetItems(ctx, filter)
	if err != nil {
		return nil, p.fail("getWeddingBudget", apperr.Store("fetch budget items", err))
	}
	return items, nil
}

// UpdateBudgetItem applies a partial update to one budget line. A null
// actual_cost clears a previously recorded cost.
func (p *Planner) UpdateBudgetItem(ctx context.Context, input models.UpdateBudgetItemInput) (*models.BudgetItem, error) {
	if err := p.validate(input); err != nil {
		return nil, p.fail("updateBudgetItem", err)
	}
	item, err := p.repo.UpdateBudgetItem(ctx, input.ID, input.Apply)
	if err != nil {
		return nil, p.fail("updateBudgetItem", updateError("Budget item", input.ID, err))
	}
	return item, nil
}
