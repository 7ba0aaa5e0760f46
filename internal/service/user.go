package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nikhil10982006/MRI-Soundscape/internal"
	"github.com/nikhil10982006/MRI-Soundscape/internal/storage"
)

var validate = validator.New()

type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func ValidateCreateUserRequest(req *CreateUserRequest) error {
	return validate.Struct(req)
}

// CreateUser inserts without checking for duplicate usernames; lookups by
// username return the earliest match.
func CreateUser(ctx context.Context, userRepo storage.UserRepository, req *CreateUserRequest) (*internal.User, error) {
	user := &internal.User{
		ID:       uuid.NewString(),
		Username: req.Username,
		Password: req.Password,
	}
	if err := userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
