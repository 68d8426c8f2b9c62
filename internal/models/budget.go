package models

import "time"

// BudgetItem is a planned or actual expense line of one wedding
type BudgetItem struct {
	ID            int64     `json:"id"`
	WeddingID     int64     `json:"wedding_id"`
	Category      string    `json:"category"`
	ItemName      string    `json:"item_name"`
	EstimatedCost Money     `json:"estimated_cost"`
	ActualCost    *Money    `json:"actual_cost"`
	Paid          bool      `json:"paid"`
	Vendor        *string   `json:"vendor"`
	Notes         *string   `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateBudgetItemInput is the accepted shape of a new budget line
type CreateBudgetItemInput struct {
	WeddingID     int64   `json:"wedding_id" validate:"required,gt=0"`
	Category      string  `json:"category" validate:"required"`
	ItemName      string  `json:"item_name" validate:"required"`
	EstimatedCost *Money  `json:"estimated_cost" validate:"required,gte=0"`
	ActualCost    *Money  `json:"actual_cost" validate:"omitempty,gte=0"`
	Paid          *bool   `json:"paid" validate:"required"`
	Vendor        *string `json:"vendor"`
	Notes         *string `json:"notes"`
}

// UpdateBudgetItemInput is a partial update of one budget line.
type UpdateBudgetItemInput struct {
	ID            int64            `json:"id" validate:"required,gt=0"`
	Category      Optional[string] `json:"category" validate:"omitempty,min=1"`
	ItemName      Optional[string] `json:"item_name" validate:"omitempty,min=1"`
	EstimatedCost Optional[Money]  `json:"estimated_cost" validate:"omitempty,gte=0"`
	ActualCost    Nullable[Money]  `json:"actual_cost" validate:"omitempty,gte=0"`
	Paid          Optional[bool]   `json:"paid"`
	Vendor        Nullable[string] `json:"vendor"`
	Notes         Nullable[string] `json:"notes"`
}

// Apply writes the supplied fields onto b.
func (in UpdateBudgetItemInput) Apply(b *BudgetItem) {
	in.Category.Apply(&b.Category)
	in.ItemName.Apply(&b.ItemName)
	in.EstimatedCost.Apply(&b.EstimatedCost)
	in.ActualCost.Apply(&b.ActualCost)
	in.Paid.Apply(&b.Paid)
	in.Vendor.Apply(&b.Vendor)
	in.Notes.Apply(&b.Notes)
}

// BudgetFilter selects budget lines of one wedding, optionally by category.
type BudgetFilter struct {
	WeddingID int64   `json:"wedding_id" validate:"required,gt=0"`
	Category  *string `json:"category"`
}

// Match reports whether b satisfies f.
func (f BudgetFilter) Match(b BudgetItem) bool {
	if b.WeddingID != f.WeddingID {
		return false
	}
	return f.Category == nil || b.Category == *f.Category
}

// Spent is what a paid line cost: the actual cost when recorded, otherwise
// the estimate. Unpaid lines have spent nothing.
func (b BudgetItem) Spent() Money {
	if !b.Paid {
		return Money{}
	}
	if b.ActualCost != nil {
		return *b.ActualCost
	}
	return b.EstimatedCost
}
