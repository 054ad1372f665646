package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/shopping_cart/internal/models"
)

func TestIsPostgres(t *testing.T) {
	assert.True(t, IsPostgres("postgres://u:p@localhost:5432/db"))
	assert.True(t, IsPostgres("postgresql://localhost/db"))
	assert.False(t, IsPostgres("shopping_cart.db"))
	assert.False(t, IsPostgres(":memory:"))
}

func TestOpen_EmptyDSN(t *testing.T) {
	_, err := Open(context.Background(), "")
	assert.Error(t, err)
}

func TestOpen_SQLiteMigrates(t *testing.T) {
	gdb, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(gdb) })

	assert.True(t, gdb.Migrator().HasTable(&models.Product{}))
	assert.True(t, gdb.Migrator().HasTable("cart"))
	assert.True(t, gdb.Migrator().HasIndex(&models.CartItem{}, "ProductID"))

	var fk int
	require.NoError(t, gdb.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)
}

func TestOpen_FileDatabasePersists(t *testing.T) {
	path := t.TempDir() + "/cart.db"

	gdb, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, gdb.Create(&models.Product{Name: "kept", Price: 1}).Error)
	require.NoError(t, Close(gdb))

	gdb, err = Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(gdb) })

	var n int64
	require.NoError(t, gdb.Model(&models.Product{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestPing(t *testing.T) {
	gdb, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)

	require.NoError(t, Ping(context.Background(), gdb))
	require.NoError(t, Close(gdb))
	assert.Error(t, Ping(context.Background(), gdb))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, ":memory:?_pragma=foreign_keys(1)", sqliteDSN(":memory:"))
	assert.Equal(t, "cart.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)",
		sqliteDSN("cart.db?_pragma=busy_timeout(5000)"))
}

func TestOpen_ForeignKeysOnFreshConnections(t *testing.T) {
	gdb, err := Open(context.Background(), t.TempDir()+"/fk.db")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(gdb) })

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(0)

	for i := 0; i < 3; i++ {
		var fk int
		require.NoError(t, gdb.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
		assert.Equal(t, 1, fk)
	}
}
