package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettingsID is the fixed primary key of the singleton settings row.
const SettingsID = 1

// Settings is the single-row configuration record holding the tax and
// marketplace-expense percentages applied by the profit report. Values are
// human percentage points (5.0 = 5%). The row is seeded at database init and
// only ever updated afterwards.
type Settings struct {
	ID         uint            `gorm:"primaryKey"`
	ImpostoPct decimal.Decimal `gorm:"column:imposto_pct;type:decimal(6,2);not null;default:5.0"`
	DespesaPct decimal.Decimal `gorm:"column:despesa_pct;type:decimal(6,2);not null;default:3.5"`
	UpdatedAt  time.Time
}

func (Settings) TableName() string { return "settings" }

// DefaultSettings returns the seed values used when the singleton row does
// not exist yet: 5% tax, 3.5% expenses.
func DefaultSettings() Settings {
	return Settings{
		ID:         SettingsID,
		ImpostoPct: decimal.NewFromFloat(5.0),
		DespesaPct: decimal.NewFromFloat(3.5),
	}
}
