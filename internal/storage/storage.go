package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"wedding-planner/internal/models"
	"wedding-planner/internal/repository"
)

var _ repository.Store = (*Storage)(nil)

type snapshot struct {
	Weddings    []models.Wedding    `json:"weddings"`
	Tasks       []models.Task       `json:"tasks"`
	BudgetItems []models.BudgetItem `json:"budget_items"`
	Guests      []models.Guest      `json:"guests"`
	LastIDs     lastIDs             `json:"last_ids"`
}

type lastIDs struct {
	Wedding    int64 `json:"wedding"`
	Task       int64 `json:"task"`
	BudgetItem int64 `json:"budget_item"`
	Guest      int64 `json:"guest"`
}

// Storage keeps every table in memory and, when a file path is set, writes a
// JSON snapshot after each change. Records are kept in insertion order.
// Stored pointer fields are never mutated in place, only replaced.
type Storage struct {
	mu   sync.RWMutex
	data snapshot
	file string
	now  func() time.Time
}

// NewStorage creates a new storage instance. An empty filePath keeps
// everything in memory only.
func NewStorage(filePath string) (*Storage, error) {
	s := &Storage{
		file: filePath,
		now:  func() time.Time { return time.Now().UTC() },
	}

	// Load existing data if file exists
	if filePath != "" {
		if _, err := os.Stat(filePath); err == nil {
			if err := s.Load(); err != nil {
				return nil, fmt.Errorf("failed to load storage: %w", err)
			}
		}
	}

	return s, nil
}

// InsertWedding adds a new wedding
func (s *Storage) InsertWedding(_ context.Context, w *models.Wedding) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.LastIDs.Wedding++
	w.ID = s.data.LastIDs.Wedding
	w.CreatedAt = s.now()
	s.data.Weddings = append(s.data.Weddings, *w)
	return s.Save()
}

// SelectWeddings returns all weddings, or the one named by filter.ID
func (s *Storage) SelectWeddings(_ context.Context, filter models.WeddingFilter) ([]models.Wedding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Wedding, 0, len(s.data.Weddings))
	for _, w := range s.data.Weddings {
		if filter.ID == nil || w.ID == *filter.ID {
			result = append(result, w)
		}
	}
	return result, nil
}

// InsertTask adds a new task
func (s *Storage) InsertTask(_ context.Context, t *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.LastIDs.Task++
	t.ID = s.data.LastIDs.Task
	t.CreatedAt = s.now()
	s.data.Tasks = append(s.data.Tasks, *t)
	return s.Save()
}

// SelectTasks returns tasks matching filter
func (s *Storage) SelectTasks(_ context.Context, filter models.TaskFilter) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Task, 0)
	for _, t := range s.data.Tasks {
		if filter.Match(t) {
			result = append(result, t)
		}
	}
	return result, nil
}

// UpdateTask applies a change to the task with the given id
func (s *Storage) UpdateTask(_ context.Context, id int64, apply func(*models.Task)) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.data.Tasks {
		if t.ID == id {
			updated := t
			apply(&updated)
			updated.ID, updated.WeddingID, updated.CreatedAt = t.ID, t.WeddingID, t.CreatedAt
			s.data.Tasks[i] = updated
			return &updated, s.Save()
		}
	}
	return nil, repository.ErrNotFound
}

// InsertBudgetItem adds a new budget line
func (s *Storage) InsertBudgetItem(_ context.Context, b *models.BudgetItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.LastIDs.BudgetItem++
	b.ID = s.data.LastIDs.BudgetItem
	b.CreatedAt = s.now()
	s.data.BudgetItems = append(s.data.BudgetItems, *b)
	return s.Save()
}

// SelectBudgetItems returns budget lines matching filter
func (s *Storage) SelectBudgetItems(_ context.Context, filter models.BudgetFilter) ([]models.BudgetItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.BudgetItem, 0)
	for _, b := range s.data.BudgetItems {
		if filter.Match(b) {
			result = append(result, b)
		}
	}
	return result, nil
}

// UpdateBudgetItem applies a change to the budget line with the given id
func (s *Storage) UpdateBudgetItem(_ context.Context, id int64, apply func(*models.BudgetItem)) (*models.BudgetItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.data.BudgetItems {
		if b.ID == id {
			updated := b
			apply(&updated)
			updated.ID, updated.WeddingID, updated.CreatedAt = b.ID, b.WeddingID, b.CreatedAt
			s.data.BudgetItems[i] = updated
			return &updated, s.Save()
		}
	}
	return nil, repository.ErrNotFound
}

// InsertGuest adds a new guest
func (s *Storage) InsertGuest(_ context.Context, g *models.Guest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.LastIDs.Guest++
	g.ID = s.data.LastIDs.Guest
	g.CreatedAt = s.now()
	s.data.Guests = append(s.data.Guests, *g)
	return s.Save()
}

// SelectGuests returns guests matching filter
func (s *Storage) SelectGuests(_ context.Context, filter models.GuestFilter) ([]models.Guest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Guest, 0)
	for _, g := range s.data.Guests {
		if filter.Match(g) {
			result = append(result, g)
		}
	}
	return result, nil
}

// UpdateGuest applies a change to the guest with the given id
func (s *Storage) UpdateGuest(_ context.Context, id int64, apply func(*models.Guest)) (*models.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, g := range s.data.Guests {
		if g.ID == id {
			updated := g
			apply(&updated)
			updated.ID, updated.WeddingID, updated.CreatedAt = g.ID, g.WeddingID, g.CreatedAt
			s.data.Guests[i] = updated
			return &updated, s.Save()
		}
	}
	return nil, repository.ErrNotFound
}

// Close flushes the snapshot one last time.
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Save()
}

// Save writes the snapshot to file. Callers hold the write lock.
func (s *Storage) Save() error {
	if s.file == "" {
		return nil
	}

	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	// Ensure directory exists
	dir := filepath.Dir(s.file)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	return os.WriteFile(s.file, data, 0644)
}

// Load loads the snapshot from file
func (s *Storage) Load() error {
	data, err := os.ReadFile(s.file)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if len(data) == 0 {
		s.data = snapshot{}
		return nil
	}

	if err := json.Unmarshal(data, &s.data); err != nil {
		return fmt.Errorf("failed to unmarshal data: %w", err)
	}

	return nil
}
