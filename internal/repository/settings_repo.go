package repository

import (
	"context"
	"errors"

	"github.com/oliveirafjdo-web/MetriFy/internal/model"

	"gorm.io/gorm"
)

// SettingsRepository accesses the single-row configuration record. Get never
// caches: the consolidator reads the row fresh on every invocation so settings
// updates take effect immediately.
type SettingsRepository interface {
	Get(ctx context.Context) (*model.Settings, error)
	Update(ctx context.Context, s *model.Settings) error
}

type settingsRepo struct{ db *gorm.DB }

func NewSettingsRepository(db *gorm.DB) SettingsRepository { return &settingsRepo{db: db} }

func (r *settingsRepo) Get(ctx context.Context) (*model.Settings, error) {
	var s model.Settings
	err := r.db.WithContext(ctx).First(&s, model.SettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Seed should have created the row at init; fall back to defaults
		// rather than failing the report.
		def := model.DefaultSettings()
		return &def, nil
	}
	return &s, err
}

func (r *settingsRepo) Update(ctx context.Context, s *model.Settings) error {
	s.ID = model.SettingsID
	return r.db.WithContext(ctx).Model(&model.Settings{}).
		Where("id = ?", model.SettingsID).
		Updates(map[string]interface{}{
			"imposto_pct": s.ImpostoPct,
			"despesa_pct": s.DespesaPct,
		}).Error
}
