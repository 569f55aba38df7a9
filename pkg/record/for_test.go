package record_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"devreg/pkg/model"
)

// openTestDB prepares a throwaway sqlite database with the registry tables.
// Foreign keys are switched on so restrict-on-delete behaves like the
// production schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbFile := filepath.Join(t.TempDir(), "record_ut.db")
	gormDB, err := gorm.Open(
		sqlite.Open(dbFile+"?_foreign_keys=on"),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err)

	require.NoError(t, gormDB.AutoMigrate(&model.ApiUser{}, &model.Location{}, &model.Device{}))
	return gormDB
}
