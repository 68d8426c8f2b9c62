// Package repository declares the storage capabilities the planner depends on.
package repository

import (
	"context"
	"errors"

	"wedding-planner/internal/models"
)

// ErrNotFound is returned by update operations whose target id does not exist.
var ErrNotFound = errors.New("record not found")

// Insert methods assign ID and CreatedAt on the passed record. Select methods
// return records ordered by id and an empty, non-nil slice when nothing
// matches. Update methods load the record, hand it to apply, persist every
// mutable column and return the stored result; ID, WeddingID and CreatedAt
// are restored after apply runs.

type WeddingRepository interface {
	InsertWedding(ctx context.Context, w *models.Wedding) error
	SelectWeddings(ctx context.Context, filter models.WeddingFilter) ([]models.Wedding, error)
}

type TaskRepository interface {
	InsertTask(ctx context.Context, t *models.Task) error
	SelectTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	UpdateTask(ctx context.Context, id int64, apply func(*models.Task)) (*models.Task, error)
}

type BudgetRepository interface {
	InsertBudgetItem(ctx context.Context, b *models.BudgetItem) error
	SelectBudgetItems(ctx context.Context, filter models.BudgetFilter) ([]models.BudgetItem, error)
	UpdateBudgetItem(ctx context.Context, id int64, apply func(*models.BudgetItem)) (*models.BudgetItem, error)
}

type GuestRepository interface {
	InsertGuest(ctx context.Context, g *models.Guest) error
	SelectGuests(ctx context.Context, filter models.GuestFilter) ([]models.Guest, error)
	UpdateGuest(ctx context.Context, id int64, apply func(*models.Guest)) (*models.Guest, error)
}

// Repository is the full set of capabilities.
type Repository interface {
	WeddingRepository
	TaskRepository
	BudgetRepository
	GuestRepository
}

// Store is a Repository owning resources that must be released.
type Store interface {
	Repository
	Close() error
}
