package usecase

import (
	"context"

	"shopmart/internal/domain/entity"
	"shopmart/internal/domain/repository"
	"shopmart/pkg/errors"
)

type UserUseCase struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
}

func NewUserUseCase(userRepo repository.UserRepository, productRepo repository.ProductRepository) *UserUseCase {
	return &UserUseCase{
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

type UpdateProfileInput struct {
	Name   string
	Avatar string
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}

// UpdateProfile merges the provided fields into the user record; empty
// fields are left untouched.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Avatar != "" {
		user.Avatar = input.Avatar
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// TrackViewed records a product view on the recently-viewed list: existing
// entries move to the front, the list never exceeds its cap.
func (uc *UserUseCase) TrackViewed(ctx context.Context, userID, productID string) (*entity.User, error) {
	if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	viewed := make([]string, 0, len(user.LastViewed)+1)
	viewed = append(viewed, productID)
	for _, id := range user.LastViewed {
		if id == productID {
			continue
		}
		viewed = append(viewed, id)
	}
	if len(viewed) > entity.LastViewedCap {
		viewed = viewed[:entity.LastViewedCap]
	}
	user.LastViewed = viewed

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ToggleSaved flips a product's membership in the saved-items set and
// reports whether the product is saved afterwards.
func (uc *UserUseCase) ToggleSaved(ctx context.Context, userID, productID string) (*entity.User, bool, error) {
	if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
		return nil, false, err
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, false, errors.NotFound("User", err)
	}

	saved := make([]string, 0, len(user.SavedItems)+1)
	removed := false
	for _, id := range user.SavedItems {
		if id == productID {
			removed = true
			continue
		}
		saved = append(saved, id)
	}
	if !removed {
		saved = append(saved, productID)
	}
	user.SavedItems = saved

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, false, err
	}
	return user, !removed, nil
}
