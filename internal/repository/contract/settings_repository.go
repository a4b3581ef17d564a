package contract

import (
	"context"

	"landivo-be/internal/entity"
)

// SettingsRepository persists the single application settings row.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.Settings, error)
	Save(ctx context.Context, settings *entity.Settings) error
}
