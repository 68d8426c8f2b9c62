// Package sqlstore is the relational repository, backed by gorm over SQLite
// (mattn/go-sqlite3) or Postgres (pgx).
package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wedding-planner/internal/models"
	"wedding-planner/internal/repository"
)

var _ repository.Store = (*Store)(nil)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Store implements repository.Store on a gorm connection.
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open connects to the database, migrates the schema and returns a Store.
func Open(driver, dsn string, log zerolog.Logger) (*Store, error) {
	log = log.With().Str("component", "sqlstore").Str("driver", driver).Logger()

	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite:
		if path := sqliteFile(dsn); path != "" {
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dialector = sqlite.Open(dsn)
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(log),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to an in-memory SQLite database sees its own empty
	// database, so pin the pool to one.
	if driver == DriverSQLite && strings.Contains(dsn, ":memory:") {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql handle: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	s := &Store{db: db, log: log}
	if err := s.Migrate(); err != nil {
		return nil, err
	}
	log.Info().Msg("Database ready")
	return s, nil
}

// sqliteFile returns the database file named by a SQLite DSN, or "" for
// in-memory databases.
func sqliteFile(dsn string) string {
	path, _, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
	if path == "" || strings.Contains(path, ":memory:") {
		return ""
	}
	return path
}

// Migrate creates or updates the four tables.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&weddingRow{}, &taskRow{}, &budgetItemRow{}, &guestRow{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) InsertWedding(ctx context.Context, w *models.Wedding) error {
	row := weddingToRow(*w)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert wedding: %w", err)
	}
	*w = row.model()
	return nil
}

func (s *Store) SelectWeddings(ctx context.Context, filter models.WeddingFilter) ([]models.Wedding, error) {
	q := s.db.WithContext(ctx).Order("id")
	if filter.ID != nil {
		q = q.Where("id = ?", *filter.ID)
	}
	var rows []weddingRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("select weddings: %w", err)
	}
	result := make([]models.Wedding, 0, len(rows))
	for _, r := range rows {
		result = append(result, r.model())
	}
	return result, nil
}

func (s *Store) InsertTask(ctx context.Context, t *models.Task) error {
	row := taskToRow(*t)
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	*t = row.model()
	return nil
}

func (s *Store) SelectTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	q := s.db.WithContext(ctx).Where("wedding_id = ?", filter.WeddingID).Order("id")
	if filter.Completed != nil {
		q = q.Where("completed = ?", *filter.Completed)
	}
	if filter.Priority != nil {
		q = q.Where("priority = ?", string(*filter.Priority))
	}
	var rows []taskRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}
	result := make([]models.Task, 0, len(rows))
	for _, r := range rows {
		result = append(result, r.model())
	}
	return result, nil
}

func (s *Store) UpdateTask(ctx context.Context, id int64, apply func(*models.Task)) (*models.Task, error) {
	var out models.Task
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current taskRow
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}
		t := current.model()
		apply(&t)
		row := taskToRow(t)
		row.ID, row.WeddingID, row.CreatedAt = current.ID, current.WeddingID, current.CreatedAt
		if err := tx.Omit(clause.Associations).Save(&row).Error; err != nil {
			return err
		}
		out = row.model()
		return nil
	})
	if err != nil {
		return nil, updateError("task", err)
	}
	return &out, nil
}

func (s *Store) InsertBudgetItem(ctx context.Context, b *models.BudgetItem) error {
	row := budgetItemToRow(*b)
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return fmt.Errorf("insert budget item: %w", err)
	}
	*b = row.model()
	return nil
}

func (s *Store) SelectBudgetItems(ctx context.Context, filter models.BudgetFilter) ([]models.BudgetItem, error) {
	q := s.db.WithContext(ctx).Where("wedding_id = ?", filter.WeddingID).Order("id")
	if filter.Category != nil {
		q = q.Where("category = ?", *filter.Category)
	}
	var rows []budgetItemRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("select budget items: %w", err)
	}
	result := make([]models.BudgetItem, 0, len(rows))
	for _, r := range rows {
		result = append(result, r.model())
	}
	return result, nil
}

func (s *Store) UpdateBudgetItem(ctx context.Context, id int64, apply func(*models.BudgetItem)) (*models.BudgetItem, error) {
	var out models.BudgetItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current budgetItemRow
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}
		b := current.model()
		apply(&b)
		row := budgetItemToRow(b)
		row.ID, row.WeddingID, row.CreatedAt = current.ID, current.WeddingID, current.CreatedAt
		if err := tx.Omit(clause.Associations).Save(&row).Error; err != nil {
			return err
		}
		out = row.model()
		return nil
	})
	if err != nil {
		return nil, updateError("budget item", err)
	}
	return &out, nil
}

func (s *Store) InsertGuest(ctx context.Context, g *models.Guest) error {
	row := guestToRow(*g)
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return fmt.Errorf("insert guest: %w", err)
	}
	*g = row.model()
	return nil
}

func (s *Store) SelectGuests(ctx context.Context, filter models.GuestFilter) ([]models.Guest, error) {
	q := s.db.WithContext(ctx).Where("wedding_id = ?", filter.WeddingID).Order("id")
	if filter.RSVPStatus != nil {
		q = q.Where("rsvp_status = ?", string(*filter.RSVPStatus))
	}
	var rows []guestRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("select guests: %w", err)
	}
	result := make([]models.Guest, 0, len(rows))
	for _, r := range rows {
		result = append(result, r.model())
	}
	return result, nil
}

func (s *Store) UpdateGuest(ctx context.Context, id int64, apply func(*models.Guest)) (*models.Guest, error) {
	var out models.Guest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current guestRow
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}
		g := current.model()
		apply(&g)
		row := guestToRow(g)
		row.ID, row.WeddingID, row.CreatedAt = current.ID, current.WeddingID, current.CreatedAt
		if err := tx.Omit(clause.Associations).Save(&row).Error; err != nil {
			return err
		}
		out = row.model()
		return nil
	})
	if err != nil {
		return nil, updateError("guest", err)
	}
	return &out, nil
}

func updateError(entity string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}
	return fmt.Errorf("update %s: %w", entity, err)
}
