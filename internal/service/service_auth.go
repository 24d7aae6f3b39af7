package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-stay/internal/config"
	"github.com/MKhiriev/go-stay/internal/logger"
	"github.com/MKhiriev/go-stay/internal/store"
	"github.com/MKhiriev/go-stay/internal/utils"
	"github.com/MKhiriev/go-stay/internal/validators"
	"github.com/MKhiriev/go-stay/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and session token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	ids       IDGenerator
	validator validators.Validator

	// passwordHashCost is the bcrypt cost used when hashing new passwords.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// When set, tokens whose issuer does not match are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	// Zero means tokens do not expire.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, ids IDGenerator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		ids:              ids,
		validator:        validators.NewLodgingValidator(),
		passwordHashCost: cfg.PasswordHashCost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that both Email and Password are non-empty, replaces the
// password with its bcrypt hash and delegates persistence to the
// UserRepository.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. email already
//     taken, see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := a.logger.ForContext(ctx)

	user.Email = strings.TrimSpace(user.Email)
	if err := validate(ctx, a.validator, user, validators.FieldEmail, validators.FieldPassword); err != nil {
		log.Err(err).Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, err
	}

	hash, err := utils.HashPassword(user.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user.UserID = a.ids.Generate()
	user.PasswordHash = hash
	user.Password = ""
	user.CreatedAt = time.Now().UTC()

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - A wrapped storage error if the lookup fails (e.g. store.ErrUserNotFound).
//   - ErrWrongPassword if the password does not match the stored hash.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := a.logger.ForContext(ctx)

	user.Email = strings.TrimSpace(user.Email)
	if err := validate(ctx, a.validator, user, validators.FieldEmail, validators.FieldPassword); err != nil {
		log.Err(err).Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, user.Email)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.ComparePassword(foundUser.PasswordHash, user.Password); err != nil {
		log.Err(err).
			Str("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		if errors.Is(err, utils.ErrPasswordMismatch) {
			return models.User{}, ErrWrongPassword
		}
		return models.User{}, fmt.Errorf("password comparison failed: %w", err)
	}

	return foundUser, nil
}

// Profile returns the stored account of userID.
func (a *authService) Profile(ctx context.Context, userID string) (models.User, error) {
	if err := validate(ctx, a.validator, models.User{UserID: userID}, validators.FieldUserID); err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		a.logger.ForContext(ctx).Err(err).Str("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// CreateToken issues a signed session token for the given user.
//
// The token is signed with the configured tokenSignKey, carries tokenIssuer
// as the "iss" claim when set and expires after tokenDuration when set.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session token.
//
// Any validation failure (expired, wrong issuer, malformed, bad signature)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		a.logger.ForContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
