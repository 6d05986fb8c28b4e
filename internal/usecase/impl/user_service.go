// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"unicode/utf8"

	deliverycontext "mealtrack/internal/delivery/context"
	"mealtrack/internal/domain/entity"
	domainerrors "mealtrack/internal/domain/errors"
	"mealtrack/internal/domain/repository"
	"mealtrack/internal/domain/service"
	"mealtrack/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the credentials, stores a new account and signs it in.
// Input checks run in a fixed order and stop at the first failure, before any store access.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if input.Login == "" || input.Password == "" || input.PasswordConfirmation == "" {
		return nil, domainerrors.ErrMissingFields
	}
	if input.Password != input.PasswordConfirmation {
		return nil, domainerrors.ErrPasswordMismatch
	}
	if utf8.RuneCountInString(input.Password) < usecase.MinPasswordLength {
		return nil, domainerrors.ErrPasswordTooShort
	}

	srv.log(ctx).Info("Starting registration", slog.String("login", input.Login))

	_, err := srv.userRepo.FindByLogin(ctx, input.Login)
	switch {
	case err == nil:
		return nil, domainerrors.ErrLoginTaken
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to check login availability")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Login:        input.Login,
		PasswordHash: hash,
	}
	// The unique constraint settles concurrent registrations of the same login.
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrLoginTaken) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	out, err := srv.issue(user)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("User registered", slog.Any("userID", user.ID))

	return out, nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input.Login == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingFields
	}

	srv.log(ctx).Debug("Starting user login", slog.String("login", input.Login))

	user, err := srv.userRepo.FindByLogin(ctx, input.Login)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("login", input.Login), slog.Any("error", err))

			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by login")
	}

	ok, err := srv.hasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify password")
	}
	if !ok {
		srv.log(ctx).Warn("Login failed", slog.String("login", input.Login), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials
	}

	out, err := srv.issue(user)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return out, nil
}

// Reauthenticate issues a fresh token for the stored identity behind verified claims.
func (srv *userService) Reauthenticate(ctx context.Context, claims *service.Claims) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return srv.issue(user)
}

// DeleteSelf removes the account behind verified claims in one transaction.
func (srv *userService) DeleteSelf(ctx context.Context, claims *service.Claims) (*entity.PublicUser, error) {
	var deleted entity.PublicUser

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			return err
		}
		if err := userRepo.DeleteByID(ctx, user.ID); err != nil {
			return err
		}
		deleted = user.Public()

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to execute delete user transaction")
	}
	srv.log(ctx).Info("User deleted", slog.Any("userID", deleted.ID))

	return &deleted, nil
}

// ListUsers returns every stored account.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *userService) issue(user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.IssueToken(user.ID, user.Login)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.AuthOutput{
		Token: token,
		User:  user.Public(),
	}, nil
}
