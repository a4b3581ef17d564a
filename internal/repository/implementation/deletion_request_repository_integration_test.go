package implementation

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"landivo-be/internal/entity"
	"landivo-be/internal/model"
	"landivo-be/internal/repository/specification"
	"landivo-be/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Exercises the conditional UPDATE against a real Postgres. Skipped unless
// DB_CONNECTION_STRING points at a scratch database.
func setupDeletionRepoDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("DB_CONNECTION_STRING not set; skipping integration test")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.PropertyDeletionRequest{}))
	return db
}

func insertPendingRequest(t *testing.T, db *gorm.DB) *entity.DeletionRequest {
	t.Helper()

	repo := NewDeletionRequestRepository(db)
	req := &entity.DeletionRequest{
		PropertyId:      uuid.New(),
		Token:           uuid.NewString(),
		RequestedBy:     "it@landivo.local",
		RequestedByName: "Integration Test",
		Status:          entity.DeletionStatusPending,
		ExpiresAt:       time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Create(context.Background(), req))
	t.Cleanup(func() {
		db.Where("token = ?", req.Token).Delete(&model.PropertyDeletionRequest{})
	})
	return req
}

func TestTransitionStatusIntegration(t *testing.T) {
	db := setupDeletionRepoDB(t)
	repo := NewDeletionRequestRepository(db)
	ctx := context.Background()

	t.Run("winning transition sets approved_at", func(t *testing.T) {
		req := insertPendingRequest(t, db)

		now := time.Now()
		won, err := repo.TransitionStatus(ctx, req.Token,
			entity.DeletionStatusPending, entity.DeletionStatusApproved, &now)
		require.NoError(t, err)
		assert.True(t, won)

		stored, err := repo.FindOne(ctx, specification.ByToken{Token: req.Token})
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, entity.DeletionStatusApproved, stored.Status)
		assert.NotNil(t, stored.ApprovedAt)
	})

	t.Run("second transition loses", func(t *testing.T) {
		req := insertPendingRequest(t, db)

		won, err := repo.TransitionStatus(ctx, req.Token,
			entity.DeletionStatusPending, entity.DeletionStatusRejected, nil)
		require.NoError(t, err)
		require.True(t, won)

		won, err = repo.TransitionStatus(ctx, req.Token,
			entity.DeletionStatusPending, entity.DeletionStatusApproved, nil)
		require.NoError(t, err)
		assert.False(t, won)
	})

	t.Run("concurrent approvals yield one winner", func(t *testing.T) {
		req := insertPendingRequest(t, db)

		const callers = 8
		var wg sync.WaitGroup
		wins := make([]bool, callers)
		errs := make([]error, callers)
		now := time.Now()
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				wins[i], errs[i] = repo.TransitionStatus(ctx, req.Token,
					entity.DeletionStatusPending, entity.DeletionStatusApproved, &now)
			}(i)
		}
		wg.Wait()

		total := 0
		for i := 0; i < callers; i++ {
			require.NoError(t, errs[i])
			if wins[i] {
				total++
			}
		}
		assert.Equal(t, 1, total)
	})
}

func TestDeletePendingByPropertyIdIntegration(t *testing.T) {
	db := setupDeletionRepoDB(t)
	repo := NewDeletionRequestRepository(db)
	ctx := context.Background()

	keep := insertPendingRequest(t, db)
	other := insertPendingRequest(t, db)

	// Resolve the first request, then move the second onto the same property
	// so it counts as a pending sibling. Ordering matters when the partial
	// unique index from cmd/migrate is present: at most one PENDING per
	// property may exist at any instant.
	won, err := repo.TransitionStatus(ctx, keep.Token,
		entity.DeletionStatusPending, entity.DeletionStatusApproved, nil)
	require.NoError(t, err)
	require.True(t, won)
	require.NoError(t, db.Model(&model.PropertyDeletionRequest{}).
		Where("token = ?", other.Token).
		Update("property_id", keep.PropertyId).Error)

	purged, err := repo.DeletePendingByPropertyId(ctx, keep.PropertyId, keep.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	stored, err := repo.FindOne(ctx, specification.ByToken{Token: keep.Token})
	require.NoError(t, err)
	require.NotNil(t, stored)
}
