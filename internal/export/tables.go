package export

import (
	"context"

	"inventory-service/internal/model"
	"inventory-service/internal/repository"
	"inventory-service/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ResetTables brings a backend to an empty but structurally correct state.
// Data is cleared in reverse dependency order, referencing tables first, so
// the pass does not depend on cascade rules of a half-created target. A
// per-table clear failure is expected on a fresh backend (the table may not
// exist yet) and does not abort the pass. The migration step afterwards is
// idempotent.
func ResetTables(ctx context.Context, db *gorm.DB) error {
	log := logger.GetLogger()

	tables := model.Tables()
	for i := len(tables) - 1; i >= 0; i-- {
		result := db.WithContext(ctx).
			Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(tables[i])
		if result.Error != nil {
			log.Warn("Skipping table clear",
				zap.String("table", tableNameOf(tables[i])),
				zap.Error(result.Error))
			continue
		}
		log.Debug("Table cleared",
			zap.String("table", tableNameOf(tables[i])),
			zap.Int64("rows_deleted", result.RowsAffected))
	}

	if err := db.WithContext(ctx).AutoMigrate(tables...); err != nil {
		return repository.Translate(err)
	}
	return nil
}

func tableNameOf(m any) string {
	if named, ok := m.(interface{ TableName() string }); ok {
		return named.TableName()
	}
	return ""
}
