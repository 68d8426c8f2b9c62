package models

import "time"

// Wedding is the root record: one couple's event and its budget ceiling
type Wedding struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	BrideName   string    `json:"bride_name"`
	GroomName   string    `json:"groom_name"`
	WeddingDate time.Time `json:"wedding_date"`
	Venue       *string   `json:"venue"`
	Description *string   `json:"description"`
	TotalBudget Money     `json:"total_budget"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateWeddingInput is the accepted shape of a new wedding
type CreateWeddingInput struct {
	Title       string  `json:"title" validate:"required"`
	BrideName   string  `json:"bride_name" validate:"required"`
	GroomName   string  `json:"groom_name" validate:"required"`
	WeddingDate Date    `json:"wedding_date" validate:"required"`
	Venue       *string `json:"venue"`
	Description *string `json:"description"`
	TotalBudget *Money  `json:"total_budget" validate:"required,gte=0"`
}

// WeddingFilter narrows a wedding lookup. A nil ID matches every wedding.
type WeddingFilter struct {
	ID *int64
}

// WeddingRef names one wedding; used by the summary query.
type WeddingRef struct {
	WeddingID int64 `json:"wedding_id" validate:"required,gt=0"`
}

// WeddingSummary aggregates a wedding's tasks, budget and guest list.
type WeddingSummary struct {
	WeddingID         int64 `json:"wedding_id"`
	TasksTotal        int   `json:"tasks_total"`
	TasksCompleted    int   `json:"tasks_completed"`
	TotalBudget       Money `json:"total_budget"`
	EstimatedTotal    Money `json:"estimated_total"`
	ActualTotal       Money `json:"actual_total"`
	PaidTotal         Money `json:"paid_total"`
	RemainingBudget   Money `json:"remaining_budget"`
	GuestsInvited     int   `json:"guests_invited"`
	GuestsPending     int   `json:"guests_pending"`
	GuestsAttending   int   `json:"guests_attending"`
	GuestsDeclined    int   `json:"guests_declined"`
	ExpectedHeadcount int   `json:"expected_headcount"`
	GiftValueTotal    Money `json:"gift_value_total"`
}
