// Package export replaces the contents of a destination backend with a
// consistent copy of a source backend's data. The whole extent of each record
// type is read into memory and replayed one row at a time; that bounds the
// pipeline to datasets that fit in memory, which matches the intended scale.
// The copy is not atomic: a failing pass stops the export and leaves the rows
// already replayed in place.
package export

import (
	"context"

	"inventory-service/internal/model"
	"inventory-service/internal/repository"
	"inventory-service/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Export copies the full dataset from source to destination. The destination
// is reset first, then each record type is replayed in dependency order,
// customers and products before the orders that reference them, with original
// ids preserved so cross-references stay valid on the other side.
func Export(ctx context.Context, source, destination *gorm.DB) error {
	if err := ResetTables(ctx, destination); err != nil {
		return err
	}

	if err := copyAll[model.Customer](ctx, source, destination); err != nil {
		return err
	}
	if err := copyAll[model.Product](ctx, source, destination); err != nil {
		return err
	}
	return copyAll[model.Order](ctx, source, destination)
}

// copyAll replays one record type. The first failing add aborts the pass and
// propagates the repository's translated error untouched.
func copyAll[T any](ctx context.Context, source, destination *gorm.DB) error {
	log := logger.GetLogger()

	from := repository.New[T](source)
	to := repository.New[T](destination)

	records, err := from.GetAll(ctx)
	if err != nil {
		return err
	}

	for i := range records {
		if err := to.Add(ctx, &records[i]); err != nil {
			return err
		}
	}

	log.Info("Table exported",
		zap.String("table", tableNameOf(new(T))),
		zap.Int("records", len(records)))
	return nil
}
