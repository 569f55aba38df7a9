package record_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"devreg/pkg/model"
	"devreg/pkg/record"
)

// openMockDB wraps a sqlmock connection with GORM so the generated SQL
// shape can be asserted without a real database.
func openMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{
			Conn:                 mockDB,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err)

	return gormDB, mock
}

func TestStoreCountSQL(t *testing.T) {
	gormDB, mock := openMockDB(t)
	store := record.NewStore(model.LocationType)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "location"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	total, err := store.Count(gormDB)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreSelectSQL(t *testing.T) {
	gormDB, mock := openMockDB(t)
	store := record.NewStore(model.LocationType)

	mock.ExpectQuery(`SELECT \* FROM "location" ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "warehouse").
			AddRow(2, "rooftop"))

	records, err := store.Select(gormDB, 0, 100)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "warehouse", records[0].Name)
	assert.Equal(t, "rooftop", records[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreGetByIDSQLNotFound(t *testing.T) {
	gormDB, mock := openMockDB(t)
	store := record.NewStore(model.LocationType)

	mock.ExpectQuery(`SELECT \* FROM "location" WHERE id = `).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := store.GetByID(gormDB, 42)
	require.Error(t, err)
	assert.True(t, record.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
