package sqlstore

import (
	"time"

	"wedding-planner/internal/models"
)

type weddingRow struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"not null"`
	BrideName   string    `gorm:"not null"`
	GroomName   string    `gorm:"not null"`
	WeddingDate time.Time `gorm:"not null"`
	Venue       *string
	Description *string
	TotalBudget money     `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime"`
}

func (weddingRow) TableName() string { return "weddings" }

type taskRow struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	WeddingID   int64  `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description *string
	DueDate     *time.Time
	Completed   bool   `gorm:"not null;default:false"`
	Priority    string `gorm:"type:varchar(16);not null;default:medium;check:chk_tasks_priority,priority IN ('low','medium','high')"`
	Category    *string
	CreatedAt   time.Time   `gorm:"not null;autoCreateTime"`
	Wedding     *weddingRow `gorm:"foreignKey:WeddingID;constraint:OnDelete:CASCADE"`
}

func (taskRow) TableName() string { return "tasks" }

type budgetItemRow struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	WeddingID     int64  `gorm:"not null;index"`
	Category      string `gorm:"not null"`
	ItemName      string `gorm:"not null"`
	EstimatedCost money  `gorm:"not null"`
	ActualCost    nullMoney
	Paid          bool `gorm:"not null;default:false"`
	Vendor        *string
	Notes         *string
	CreatedAt     time.Time   `gorm:"not null;autoCreateTime"`
	Wedding       *weddingRow `gorm:"foreignKey:WeddingID;constraint:OnDelete:CASCADE"`
}

func (budgetItemRow) TableName() string { return "budget_items" }

type guestRow struct {
	ID                  int64  `gorm:"primaryKey;autoIncrement"`
	WeddingID           int64  `gorm:"not null;index"`
	Name                string `gorm:"not null"`
	Email               *string
	Phone               *string
	Address             *string
	RSVPStatus          string `gorm:"column:rsvp_status;type:varchar(16);not null;default:pending;check:chk_guests_rsvp_status,rsvp_status IN ('pending','attending','not_attending')"`
	PlusOne             bool   `gorm:"not null;default:false"`
	DietaryRestrictions *string
	GiftDescription     *string
	GiftValue           nullMoney
	TableNumber         *int
	CreatedAt           time.Time   `gorm:"not null;autoCreateTime"`
	Wedding             *weddingRow `gorm:"foreignKey:WeddingID;constraint:OnDelete:CASCADE"`
}

func (guestRow) TableName() string { return "guests" }

func weddingToRow(w models.Wedding) weddingRow {
	return weddingRow{
		ID:          w.ID,
		Title:       w.Title,
		BrideName:   w.BrideName,
		GroomName:   w.GroomName,
		WeddingDate: w.WeddingDate,
		Venue:       w.Venue,
		Description: w.Description,
		TotalBudget: toMoney(w.TotalBudget),
		CreatedAt:   w.CreatedAt,
	}
}

func (r weddingRow) model() models.Wedding {
	return models.Wedding{
		ID:          r.ID,
		Title:       r.Title,
		BrideName:   r.BrideName,
		GroomName:   r.GroomName,
		WeddingDate: r.WeddingDate,
		Venue:       r.Venue,
		Description: r.Description,
		TotalBudget: r.TotalBudget.model(),
		CreatedAt:   r.CreatedAt,
	}
}

func taskToRow(t models.Task) taskRow {
	return taskRow{
		ID:          t.ID,
		WeddingID:   t.WeddingID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Completed:   t.Completed,
		Priority:    string(t.Priority),
		Category:    t.Category,
		CreatedAt:   t.CreatedAt,
	}
}

func (r taskRow) model() models.Task {
	return models.Task{
		ID:          r.ID,
		WeddingID:   r.WeddingID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Completed:   r.Completed,
		Priority:    models.Priority(r.Priority),
		Category:    r.Category,
		CreatedAt:   r.CreatedAt,
	}
}

func budgetItemToRow(b models.BudgetItem) budgetItemRow {
	return budgetItemRow{
		ID:            b.ID,
		WeddingID:     b.WeddingID,
		Category:      b.Category,
		ItemName:      b.ItemName,
		EstimatedCost: toMoney(b.EstimatedCost),
		ActualCost:    toNullMoney(b.ActualCost),
		Paid:          b.Paid,
		Vendor:        b.Vendor,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
	}
}

func (r budgetItemRow) model() models.BudgetItem {
	return models.BudgetItem{
		ID:            r.ID,
		WeddingID:     r.WeddingID,
		Category:      r.Category,
		ItemName:      r.ItemName,
		EstimatedCost: r.EstimatedCost.model(),
		ActualCost:    r.ActualCost.model(),
		Paid:          r.Paid,
		Vendor:        r.Vendor,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
	}
}

func guestToRow(g models.Guest) guestRow {
	return guestRow{
		ID:                  g.ID,
		WeddingID:           g.WeddingID,
		Name:                g.Name,
		Email:               g.Email,
		Phone:               g.Phone,
		Address:             g.Address,
		RSVPStatus:          string(g.RSVPStatus),
		PlusOne:             g.PlusOne,
		DietaryRestrictions: g.DietaryRestrictions,
		GiftDescription:     g.GiftDescription,
		GiftValue:           toNullMoney(g.GiftValue),
		TableNumber:         g.TableNumber,
		CreatedAt:           g.CreatedAt,
	}
}

func (r guestRow) model() models.Guest {
	return models.Guest{
		ID:                  r.ID,
		WeddingID:           r.WeddingID,
		Name:                r.Name,
		Email:               r.Email,
		Phone:               r.Phone,
		Address:             r.Address,
		RSVPStatus:          models.RSVPStatus(r.RSVPStatus),
		PlusOne:             r.PlusOne,
		DietaryRestrictions: r.DietaryRestrictions,
		GiftDescription:     r.GiftDescription,
		GiftValue:           r.GiftValue.model(),
		TableNumber:         r.TableNumber,
		CreatedAt:           r.CreatedAt,
	}
}
