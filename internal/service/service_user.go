package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-social-api/internal/config"
	"github.com/MKhiriev/go-social-api/internal/crypto"
	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/store"
	"github.com/MKhiriev/go-social-api/models"
)

const (
	maxUsernameLen = 64
	maxNameLen     = 64
	maxEmailLen    = 120
)

// userService is the concrete implementation of UserService. It validates
// account data, hashes passwords before they reach the store, and delegates
// persistence to a UserRepository.
type userService struct {
	// userRepository is the data-access layer for accounts and the follow
	// graph.
	userRepository store.UserRepository

	// hasher derives and verifies password digests. Plaintext passwords
	// never cross the service boundary towards the store.
	hasher crypto.PasswordHasher

	// defaultFollowersLimit bounds follower/followee listings when the
	// caller does not supply a limit.
	defaultFollowersLimit int64

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given repository and
// password hasher.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository:        userRepository,
		hasher:                hasher,
		defaultFollowersLimit: cfg.FollowersLimit,
		logger:                logger,
	}
}

// Create registers a new account.
//
// It validates the request fields, hashes the password, and delegates
// persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - models.ValidationErrors keyed by the offending fields.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken — see store.ErrUsernameTaken).
func (s *userService) Create(ctx context.Context, req models.UserCreate) (models.User, error) {
	log := logger.FromContext(ctx)

	if errs := validateUserCreate(req); len(errs) > 0 {
		log.Error().Str("username", req.Username).Msg("invalid user data provided")
		return models.User{}, errs
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		Name:         req.Name,
		Description:  req.Description,
		Email:        req.Email,
		PasswordHash: digest,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// Get returns the user projection by id.
func (s *userService) Get(ctx context.Context, userID int64) (models.User, error) {
	return s.userRepository.GetUser(ctx, userID)
}

// List returns every registered user's projection.
func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepository.ListUsers(ctx)
}

// Edit applies a partial profile update. A password change is re-hashed
// before it reaches the store; all other fields pass through as-is.
//
// Returns models.ValidationErrors when a supplied field is empty or exceeds
// its length bound.
func (s *userService) Edit(ctx context.Context, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if errs := validateUserUpdate(update); len(errs) > 0 {
		log.Error().Int64("user_id", update.ID).Msg("invalid user update provided")
		return models.User{}, errs
	}

	if update.Password != nil {
		digest, err := s.hasher.Hash(*update.Password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		update.Password = &digest
	}

	updated, err := s.userRepository.UpdateUser(ctx, update)
	if err != nil {
		log.Err(err).Int64("user_id", update.ID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updated, nil
}

// Delete removes the account and, via the store's cascade rules, everything
// the account owns.
func (s *userService) Delete(ctx context.Context, userID int64) (bool, error) {
	return s.userRepository.DeleteUser(ctx, userID)
}

// VerifyPassword checks the supplied plaintext against the stored digest.
// A mismatch is not an error: the result is simply false. No token or
// session is issued.
func (s *userService) VerifyPassword(ctx context.Context, userID int64, password string) (bool, error) {
	log := logger.FromContext(ctx)

	digest, err := s.userRepository.GetPasswordHash(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("password hash lookup failed")
		return false, fmt.Errorf("password hash lookup failed: %w", err)
	}

	return s.hasher.Verify(password, digest), nil
}

// Follow records a follow edge. Reports whether the edge was newly created.
func (s *userService) Follow(ctx context.Context, userID, followerID int64) (bool, error) {
	return s.userRepository.FollowUser(ctx, userID, followerID)
}

// Unfollow removes a follow edge. Reports whether an edge was removed.
func (s *userService) Unfollow(ctx context.Context, userID, followerID int64) (bool, error) {
	return s.userRepository.UnfollowUser(ctx, userID, followerID)
}

// IsFollowing reports the current follow state.
func (s *userService) IsFollowing(ctx context.Context, userID, followerID int64) (bool, error) {
	return s.userRepository.IsFollowing(ctx, userID, followerID)
}

// Followers lists the users following userID. A negative limit falls back
// to the configured default; an explicit zero yields an empty page.
func (s *userService) Followers(ctx context.Context, userID, limit int64) ([]models.User, error) {
	return s.userRepository.GetFollowers(ctx, userID, s.boundedLimit(limit))
}

// Followees lists the users userID follows. A negative limit falls back to
// the configured default; an explicit zero yields an empty page.
func (s *userService) Followees(ctx context.Context, userID, limit int64) ([]models.User, error) {
	return s.userRepository.GetFollowees(ctx, userID, s.boundedLimit(limit))
}

// FollowersCount returns the number of users following userID.
func (s *userService) FollowersCount(ctx context.Context, userID int64) (int64, error) {
	return s.userRepository.CountFollowers(ctx, userID)
}

// FolloweesCount returns the number of users userID follows.
func (s *userService) FolloweesCount(ctx context.Context, userID int64) (int64, error) {
	return s.userRepository.CountFollowees(ctx, userID)
}

func (s *userService) boundedLimit(limit int64) int64 {
	if limit < 0 {
		return s.defaultFollowersLimit
	}
	return limit
}

// validateUserCreate checks presence and length bounds of the registration
// fields. Returns a field-keyed error map; empty means valid.
func validateUserCreate(req models.UserCreate) models.ValidationErrors {
	errs := models.ValidationErrors{}

	switch {
	case req.Username == "":
		errs["username"] = "required field"
	case len(req.Username) > maxUsernameLen:
		errs["username"] = fmt.Sprintf("must be at most %d characters", maxUsernameLen)
	}

	switch {
	case req.Name == "":
		errs["name"] = "required field"
	case len(req.Name) > maxNameLen:
		errs["name"] = fmt.Sprintf("must be at most %d characters", maxNameLen)
	}

	switch {
	case req.Email == "":
		errs["email"] = "required field"
	case len(req.Email) > maxEmailLen:
		errs["email"] = fmt.Sprintf("must be at most %d characters", maxEmailLen)
	}

	if req.Password == "" {
		errs["password"] = "required field"
	}

	return errs
}

// validateUserUpdate checks the supplied (non-nil) fields of a partial
// update against the same bounds as registration. It also rejects an update
// carrying no fields at all.
func validateUserUpdate(update models.UserUpdate) models.ValidationErrors {
	errs := models.ValidationErrors{}

	if update.Username == nil && update.Name == nil && update.Description == nil &&
		update.Email == nil && update.Password == nil {
		errs["body"] = "no fields to update"
		return errs
	}

	if update.Username != nil {
		switch {
		case *update.Username == "":
			errs["username"] = "must not be empty"
		case len(*update.Username) > maxUsernameLen:
			errs["username"] = fmt.Sprintf("must be at most %d characters", maxUsernameLen)
		}
	}

	if update.Name != nil {
		switch {
		case *update.Name == "":
			errs["name"] = "must not be empty"
		case len(*update.Name) > maxNameLen:
			errs["name"] = fmt.Sprintf("must be at most %d characters", maxNameLen)
		}
	}

	if update.Email != nil {
		switch {
		case *update.Email == "":
			errs["email"] = "must not be empty"
		case len(*update.Email) > maxEmailLen:
			errs["email"] = fmt.Sprintf("must be at most %d characters", maxEmailLen)
		}
	}

	if update.Password != nil && *update.Password == "" {
		errs["password"] = "must not be empty"
	}

	return errs
}
