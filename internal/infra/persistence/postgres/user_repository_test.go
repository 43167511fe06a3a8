package postgres

import (
	"context"
	"testing"

	"userlookup/internal/domain/entity"
	domainerrors "userlookup/internal/domain/errors"
	"userlookup/internal/domain/repository"
	"userlookup/internal/infra/persistence/model"
	"userlookup/internal/testutil"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T, maxOpenConns int) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(gormpostgres.Open(testutil.SetupPostgres(t)), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(maxOpenConns)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func TestUserRepository_FindByID(t *testing.T) {
	db := setupTestDB(t, 2)
	ctx := context.Background()

	alice := model.UserModel{ID: uuid.New(), Name: "Alice"}
	require.NoError(t, db.WithContext(ctx).Create(&alice).Error)

	factory := NewConnectionFactory(db)
	repo := NewUserRepository()
	findUser := func(id uuid.UUID) (*entity.User, error) {
		return repository.WithConnection(ctx, factory, func(ctx context.Context, conn *gorm.DB) (*entity.User, error) {
			return repo.FindByID(ctx, conn, id)
		})
	}

	t.Run("existing user", func(t *testing.T) {
		user, err := findUser(alice.ID)

		require.NoError(t, err)
		assert.Equal(t, &entity.User{ID: alice.ID, Name: "Alice"}, user)
	})

	t.Run("missing user", func(t *testing.T) {
		user, err := findUser(uuid.New())

		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("connection is released after a query error", func(t *testing.T) {
		err := factory.Acquire(ctx, func(ctx context.Context, conn *gorm.DB) error {
			return conn.WithContext(ctx).Exec("SELECT * FROM missing_table").Error
		})
		require.Error(t, err)
		assert.NotContains(t, err.Error(), domainerrors.AcquireFailedDetail)

		sqlDB, err := db.DB()
		require.NoError(t, err)
		assert.Equal(t, 0, sqlDB.Stats().InUse)
	})
}

func TestConnectionFactory_ClosedPool(t *testing.T) {
	db := setupTestDB(t, 1)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	called := false
	err = NewConnectionFactory(db).Acquire(context.Background(), func(context.Context, *gorm.DB) error {
		called = true

		return nil
	})

	assert.False(t, called)
	assert.Equal(t, domainerrors.KindInfrastructure, domainerrors.KindOf(err))
	assert.Contains(t, err.Error(), domainerrors.AcquireFailedDetail+": ")
}

func TestConnectionFactory_WorkErrorPassesThrough(t *testing.T) {
	db := setupTestDB(t, 1)
	workErr := errors.New("work failed")

	err := NewConnectionFactory(db).Acquire(context.Background(), func(context.Context, *gorm.DB) error {
		return workErr
	})

	assert.Same(t, workErr, err)
}
