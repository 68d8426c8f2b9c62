package handler

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"wedding-planner/internal/apperr"
	"wedding-planner/internal/models"
	"wedding-planner/internal/repository"
	"wedding-planner/internal/validation"
)

// Planner runs every planning operation: validate, check references,
// persist, return. It holds no state besides its repository.
type Planner struct {
	repo      repository.Repository
	validator *validation.Validator
	log       zerolog.Logger
}

// NewPlanner creates a new planner over repo
func NewPlanner(repo repository.Repository, log zerolog.Logger) *Planner {
	return &Planner{
		repo:      repo,
		validator: validation.New(),
		log:       log.With().Str("component", "planner").Logger(),
	}
}

// GetWedding returns the wedding with the given id or a not-found error.
func (p *Planner) GetWedding(ctx context.Context, id int64) (*models.Wedding, error) {
	weddings, err := p.repo.SelectWeddings(ctx, models.WeddingFilter{ID: &id})
	if err != nil {
		return nil, apperr.Store("load wedding", err)
	}
	if len(weddings) == 0 {
		return nil, apperr.NotFound("Wedding not found")
	}
	return &weddings[0], nil
}

func (p *Planner) validate(input any) error {
	return p.validator.Struct(input)
}

// fail logs err for diagnostics and hands it back unchanged.
func (p *Planner) fail(op string, err error) error {
	event := p.log.Error()
	if apperr.IsValidation(err) || apperr.IsNotFound(err) {
		event = p.log.Warn()
	}
	event.Err(err).Str("op", op).Msg("Operation failed")
	return err
}

// updateError converts a repository update failure into a tagged error.
func updateError(entity string, id int64, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound("%s with id %d not found", entity, id)
	}
	return apperr.Store("update "+entity, err)
}

func roundMoney(m models.Money) models.Money {
	return models.Money{Decimal: m.Round(models.MoneyPlaces)}
}

func roundMoneyPtr(m *models.Money) *models.Money {
	if m == nil {
		return nil
	}
	r := roundMoney(*m)
	return &r
}
