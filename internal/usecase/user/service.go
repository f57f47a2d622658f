package user

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	apperrors "github.com/mindvoice-team/mindvoice-backend/errors"
	"github.com/mindvoice-team/mindvoice-backend/internal/adapter/repository"
	"github.com/mindvoice-team/mindvoice-backend/internal/domain/entities"
	"github.com/mindvoice-team/mindvoice-backend/internal/infrastructure/cache"
	"github.com/mindvoice-team/mindvoice-backend/pkg/jwt"
)

// minPasswordLength is the minimum accepted password length
const minPasswordLength = 6

// sessionKeyPrefix namespaces the current-session mirror in the cache
const sessionKeyPrefix = "session:"

// ProfileUpdate carries optional profile field changes; nil fields are
// left untouched
type ProfileUpdate struct {
	Name      *string
	Phone     *string
	Birthdate *string
	Bio       *string
}

// Service defines account and session methods
type Service interface {
	Register(ctx context.Context, name, email, password, confirmPassword string) (*entities.User, string, error)
	Login(ctx context.Context, email, password string) (*entities.User, string, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	GetByID(ctx context.Context, userID uuid.UUID) (*entities.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*entities.User, error)
	SavePreferences(ctx context.Context, userID uuid.UUID, prefs json.RawMessage) error
	SavePrivacySettings(ctx context.Context, userID uuid.UUID, settings json.RawMessage) error
	ChangePassword(ctx context.Context, userID uuid.UUID, current, next, confirm string) error
	DeleteAccount(ctx context.Context, userID uuid.UUID, confirmEmail string) error
	Export(ctx context.Context, userID uuid.UUID, scope ExportScope) ([]byte, string, error)
}

type userService struct {
	userRepo       *repository.UserRepository
	analysisRepo   *repository.AnalysisRepository
	journalRepo    *repository.JournalRepository
	assessmentRepo *repository.AssessmentRepository
	sessions       cache.Store
	tokens         *jwt.Manager
	sessionTTL     time.Duration
	logger         *zap.Logger
}

// NewUserService constructs a new user service
func NewUserService(
	userRepo *repository.UserRepository,
	analysisRepo *repository.AnalysisRepository,
	journalRepo *repository.JournalRepository,
	assessmentRepo *repository.AssessmentRepository,
	sessions cache.Store,
	tokens *jwt.Manager,
	sessionTTL time.Duration,
	logger *zap.Logger,
) Service {
	return &userService{
		userRepo:       userRepo,
		analysisRepo:   analysisRepo,
		journalRepo:    journalRepo,
		assessmentRepo: assessmentRepo,
		sessions:       sessions,
		tokens:         tokens,
		sessionTTL:     sessionTTL,
		logger:         logger,
	}
}

// Register creates an account and opens a session. The password is
// stored as provided; accounts are a convenience boundary, not a
// security one.
func (s *userService) Register(ctx context.Context, name, email, password, confirmPassword string) (*entities.User, string, error) {
	if password != confirmPassword {
		return nil, "", apperrors.ErrPasswordMismatch()
	}
	if len(password) < minPasswordLength {
		return nil, "", apperrors.ErrPasswordTooShort(minPasswordLength)
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, "", apperrors.ErrUserAlreadyExists(email)
	} else if !errors.Is(err, entities.ErrUserNotFound) {
		return nil, "", apperrors.ErrInternal(err)
	}

	user := entities.NewUser(name, email, password)
	if err := user.Validate(); err != nil {
		return nil, "", apperrors.ErrInvalidArgument(err.Error())
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", apperrors.ErrInternal(err)
	}

	token, err := s.openSession(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and opens a session. Lookup failure and
// password mismatch return the same error so emails cannot be probed.
func (s *userService) Login(ctx context.Context, email, password string) (*entities.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials()
		}
		return nil, "", apperrors.ErrInternal(err)
	}

	if user.Password != password {
		return nil, "", apperrors.ErrInvalidCredentials()
	}

	token, err := s.openSession(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// openSession issues a token and mirrors the active account in the
// session store. The mirror is advisory; a cache failure is logged,
// not surfaced.
func (s *userService) openSession(ctx context.Context, user *entities.User) (string, error) {
	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return "", apperrors.ErrInternal(err)
	}

	if err := s.sessions.Set(ctx, sessionKeyPrefix+user.ID.String(), user.Email, s.sessionTTL); err != nil {
		s.logger.Warn("failed to mirror session", zap.Error(err))
	}
	return token, nil
}

// Logout drops the session mirror. The token itself simply expires.
func (s *userService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.sessions.Delete(ctx, sessionKeyPrefix+userID.String()); err != nil {
		s.logger.Warn("failed to drop session mirror", zap.Error(err))
	}
	return nil
}

// GetByID returns an account by ID
func (s *userService) GetByID(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound()
		}
		return nil, apperrors.ErrInternal(err)
	}
	return user, nil
}

// UpdateProfile applies the provided profile fields
func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*entities.User, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.Birthdate != nil {
		user.Birthdate = *update.Birthdate
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	return user, nil
}

// SavePreferences replaces the user's preferences document. The
// document is opaque to the server.
func (s *userService) SavePreferences(ctx context.Context, userID uuid.UUID, prefs json.RawMessage) error {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	user.Preferences = datatypes.JSON(prefs)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return apperrors.ErrInternal(err)
	}
	return nil
}

// SavePrivacySettings replaces the user's privacy document
func (s *userService) SavePrivacySettings(ctx context.Context, userID uuid.UUID, settings json.RawMessage) error {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	user.PrivacySettings = datatypes.JSON(settings)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return apperrors.ErrInternal(err)
	}
	return nil
}

// ChangePassword verifies the current password and applies the new one
func (s *userService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next, confirm string) error {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.Password != current {
		return apperrors.ErrInvalidCredentials()
	}
	if next != confirm {
		return apperrors.ErrPasswordMismatch()
	}
	if len(next) < minPasswordLength {
		return apperrors.ErrPasswordTooShort(minPasswordLength)
	}

	user.Password = next
	if err := s.userRepo.Update(ctx, user); err != nil {
		return apperrors.ErrInternal(err)
	}
	return nil
}

// DeleteAccount removes the account and everything it owns. The
// caller must type the account email back as confirmation.
func (s *userService) DeleteAccount(ctx context.Context, userID uuid.UUID, confirmEmail string) error {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Email != confirmEmail {
		return apperrors.ErrInvalidArgument("email confirmation does not match the account")
	}

	if err := s.analysisRepo.DeleteAllForUser(ctx, userID); err != nil {
		return apperrors.ErrInternal(err)
	}
	if err := s.journalRepo.DeleteAllForUser(ctx, userID); err != nil {
		return apperrors.ErrInternal(err)
	}
	if err := s.assessmentRepo.DeleteForUser(ctx, userID); err != nil {
		return apperrors.ErrInternal(err)
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return apperrors.ErrInternal(err)
	}

	return s.Logout(ctx, userID)
}
