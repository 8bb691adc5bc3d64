package database

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sm-ecommerce/category-service/app/config"
	"github.com/sm-ecommerce/category-service/models"
)

func TestNewSQLiteAndMigrate(t *testing.T) {
	db, closeDB, err := New(config.DriverSQLite, ":memory:", zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { closeDB() })

	require.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasTable(&models.Category{}))
	assert.True(t, db.Migrator().HasColumn(&models.Category{}, "category_name"))

	// Running it twice must be harmless.
	require.NoError(t, Migrate(db))
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	db, closeDB, err := New("oracle", "whatever", zerolog.Nop())
	assert.ErrorContains(t, err, "unsupported database driver")
	assert.Nil(t, db)
	assert.Nil(t, closeDB)
}
