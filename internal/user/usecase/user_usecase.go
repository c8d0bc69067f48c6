package usecase

import (
	"context"

	validation "github.com/jellydator/validation"

	"github.com/allisson/social/internal/database"
	"github.com/allisson/social/internal/escape"
	"github.com/allisson/social/internal/user/domain"
	appValidation "github.com/allisson/social/internal/validation"
)

// RegisterUserInput contains the data needed to create an account.
type RegisterUserInput struct {
	UserName    string
	Password    string
	PhoneNumber string
	Email       *string
	Biography   *string
}

// LoginInput contains login credentials.
type LoginInput struct {
	PhoneNumber string
	Password    string
}

// UpdateBiographyInput sets the biography of UserID.
type UpdateBiographyInput struct {
	UserID    int64
	Biography *string
}

type userUseCase struct {
	txManager database.TxManager
	userRepo  UserRepository
}

// NewUserUseCase creates the user UseCase.
func NewUserUseCase(txManager database.TxManager, userRepo UserRepository) UseCase {
	return &userUseCase{
		txManager: txManager,
		userRepo:  userRepo,
	}
}

func (uc *userUseCase) validateRegisterInput(input RegisterUserInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.UserName,
			validation.Required.Error("user name is required"),
			appValidation.NotBlank,
			validation.Length(1, domain.MaxUserNameLength).Error("user name must be between 1 and 50 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(1, 128).Error("password must be at most 128 characters"),
		),
		validation.Field(&input.PhoneNumber,
			validation.Required.Error("phone number is required"),
			appValidation.PhoneNumber,
		),
		validation.Field(&input.Email,
			validation.NilOrNotEmpty.Error("email must not be empty"),
			appValidation.Email,
			validation.Length(0, 100).Error("email must be at most 100 characters"),
		),
		validation.Field(&input.Biography,
			validation.Length(0, 500).Error("biography must be at most 500 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Register creates the account and reads it back inside one transaction so the
// returned user carries the id assigned by the store.
func (uc *userUseCase) Register(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	if err := uc.validateRegisterInput(input); err != nil {
		return nil, err
	}

	user := &domain.User{
		UserName:    escape.String(input.UserName),
		Email:       escape.Nullable(input.Email),
		Biography:   escape.Nullable(input.Biography),
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
	}

	var registered *domain.User
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return err
		}

		var err error
		registered, err = uc.userRepo.Login(ctx, input.PhoneNumber, input.Password)
		return err
	})
	if err != nil {
		return nil, err
	}

	return registered, nil
}

func (uc *userUseCase) Login(ctx context.Context, input LoginInput) (*domain.User, error) {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.PhoneNumber, validation.Required.Error("phone number is required")),
		validation.Field(&input.Password, validation.Required.Error("password is required")),
	)
	if err != nil {
		return nil, appValidation.WrapValidationError(err)
	}

	return uc.userRepo.Login(ctx, input.PhoneNumber, input.Password)
}

func (uc *userUseCase) UpdateBiography(ctx context.Context, input UpdateBiographyInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.UserID, validation.Required.Error("user id is required")),
		validation.Field(&input.Biography,
			validation.Length(0, 500).Error("biography must be at most 500 characters"),
		),
	)
	if err != nil {
		return appValidation.WrapValidationError(err)
	}

	return uc.userRepo.UpdateBiography(ctx, input.UserID, escape.Nullable(input.Biography))
}
