package sqlstore

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"wedding-planner/internal/models"
)

// Amounts are NUMERIC(10,2) on Postgres. SQLite would coerce NUMERIC to a
// float, so there they are kept as text.
func moneyColumnType(db *gorm.DB) string {
	if db.Dialector.Name() == "postgres" {
		return "numeric(10,2)"
	}
	return "text"
}

type money struct {
	decimal.Decimal
}

func (money) GormDataType() string { return "decimal" }

func (money) GormDBDataType(db *gorm.DB, _ *schema.Field) string { return moneyColumnType(db) }

func toMoney(m models.Money) money { return money{m.Decimal} }

func (m money) model() models.Money { return models.Money{Decimal: m.Decimal.Round(models.MoneyPlaces)} }

type nullMoney struct {
	decimal.NullDecimal
}

func (nullMoney) GormDataType() string { return "decimal" }

func (nullMoney) GormDBDataType(db *gorm.DB, _ *schema.Field) string { return moneyColumnType(db) }

func toNullMoney(m *models.Money) nullMoney {
	if m == nil {
		return nullMoney{}
	}
	return nullMoney{decimal.NewNullDecimal(m.Decimal)}
}

func (m nullMoney) model() *models.Money {
	if !m.Valid {
		return nil
	}
	return &models.Money{Decimal: m.Decimal.Round(models.MoneyPlaces)}
}
