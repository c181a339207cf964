package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "shopmart/internal/adapter/repository"
	"shopmart/internal/domain/entity"
	"shopmart/pkg/errors"
)

func newUserFixture(t *testing.T) (*UserUseCase, *entity.User) {
	t.Helper()

	products := make([]*entity.Product, 0, 15)
	for i := 1; i <= 15; i++ {
		id := fmt.Sprintf("p%d", i)
		products = append(products, &entity.Product{ID: id, Slug: id, Name: id, Price: float64(i), Stock: 10})
	}

	userRepo := adapter.NewMemoryUserRepository()
	user := &entity.User{Name: "Jane Doe", Email: "jane@example.com", Role: entity.RoleCustomer}
	require.NoError(t, userRepo.Create(context.Background(), user))

	return NewUserUseCase(userRepo, adapter.NewMemoryProductRepository(products)), user
}

func TestUpdateProfileMergesFields(t *testing.T) {
	uc, user := newUserFixture(t)
	ctx := context.Background()

	updated, err := uc.UpdateProfile(ctx, user.ID, UpdateProfileInput{Name: "Jane D."})
	require.NoError(t, err)
	assert.Equal(t, "Jane D.", updated.Name)
	assert.Equal(t, "jane@example.com", updated.Email)

	// Empty fields leave the record alone.
	updated, err = uc.UpdateProfile(ctx, user.ID, UpdateProfileInput{Avatar: "https://cdn.example.com/a.png"})
	require.NoError(t, err)
	assert.Equal(t, "Jane D.", updated.Name)
	assert.Equal(t, "https://cdn.example.com/a.png", updated.Avatar)
}

func TestTrackViewedDedupesAndCaps(t *testing.T) {
	uc, user := newUserFixture(t)
	ctx := context.Background()

	for i := 1; i <= 12; i++ {
		_, err := uc.TrackViewed(ctx, user.ID, fmt.Sprintf("p%d", i))
		require.NoError(t, err)
	}

	got, err := uc.GetProfile(ctx, user.ID)
	require.NoError(t, err)

	require.Len(t, got.LastViewed, entity.LastViewedCap)
	assert.Equal(t, "p12", got.LastViewed[0])
	assert.NotContains(t, got.LastViewed, "p1")
	assert.NotContains(t, got.LastViewed, "p2")

	// Re-viewing moves the entry to the front without growing the list.
	got, err = uc.TrackViewed(ctx, user.ID, "p5")
	require.NoError(t, err)
	assert.Len(t, got.LastViewed, entity.LastViewedCap)
	assert.Equal(t, "p5", got.LastViewed[0])
}

func TestTrackViewedUnknownProduct(t *testing.T) {
	uc, user := newUserFixture(t)

	_, err := uc.TrackViewed(context.Background(), user.ID, "missing")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestToggleSavedFlipsMembership(t *testing.T) {
	uc, user := newUserFixture(t)
	ctx := context.Background()

	got, nowSaved, err := uc.ToggleSaved(ctx, user.ID, "p3")
	require.NoError(t, err)
	assert.True(t, nowSaved)
	assert.Contains(t, got.SavedItems, "p3")

	got, nowSaved, err = uc.ToggleSaved(ctx, user.ID, "p3")
	require.NoError(t, err)
	assert.False(t, nowSaved)
	assert.NotContains(t, got.SavedItems, "p3")
}
