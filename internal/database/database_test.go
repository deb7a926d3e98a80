package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog/internal/database"
	"catalog/internal/models"
)

func TestConnectMigratesSchema(t *testing.T) {
	db, err := database.OpenSQLite("file:database_test?mode=memory&cache=shared")
	require.NoError(t, err)

	assert.True(t, db.Migrator().HasTable(&models.Product{}))
	for _, column := range []string{"id", "name", "description", "price", "available", "category"} {
		assert.True(t, db.Migrator().HasColumn(&models.Product{}, column),
			"missing column %s", column)
	}

	// The migrated schema accepts a full product row.
	product := models.NewRandomProduct()
	require.NoError(t, db.Create(product).Error)
	assert.NotZero(t, product.ID)
}
