package services

import (
	"DentalDesk/cache"
	"DentalDesk/models"
	"DentalDesk/repositories"
	"DentalDesk/session"
	"DentalDesk/utils"
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// ErrInvalidCredentials is deliberately the same for an unknown or inactive
// username and for a wrong password, so login failures do not leak which
// check failed.
var ErrInvalidCredentials = errors.New("invalid username or password")

type UserService interface {
	ValidateAndCreateUser(ctx context.Context, user *models.User, password string) error
	AuthenticateUser(ctx context.Context, username, password string) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (session.Session, error)
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

type userService struct {
	userRepo repositories.UserRepository
	sessions *session.Store
	codes    *cache.Cache
	mailer   *utils.Mailer
}

func NewUserService(userRepo repositories.UserRepository, sessions *session.Store, codes *cache.Cache, mailer *utils.Mailer) UserService {
	return &userService{userRepo: userRepo, sessions: sessions, codes: codes, mailer: mailer}
}

// ValidateAndCreateUser validates input, rejects duplicate usernames or
// emails, hashes the credential, and inserts the account. The duplicate
// check is a pre-check rather than a constraint-driven one; the process is
// the only writer so the race is theoretical.
func (s *userService) ValidateAndCreateUser(ctx context.Context, user *models.User, password string) error {
	if err := utils.ValidateNewUser(*user, password); err != nil {
		return errors.Wrap(err, "invalid user data")
	}

	exists, err := s.userRepo.UsernameOrEmailExists(ctx, user.Username, user.Email)
	if err != nil {
		return err
	}
	if exists {
		return errors.New("username or email already exists")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}
	user.PasswordHash = hash
	user.IsActive = true

	return s.userRepo.CreateUser(ctx, user)
}

// AuthenticateUser verifies the credential, updates the last-login stamp,
// and persists the session snapshot.
func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetActiveUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		return nil, err
	}

	if err := s.sessions.Save(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to persist session")
	}

	return user, nil
}

func (s *userService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

func (s *userService) CurrentSession(ctx context.Context) (session.Session, error) {
	return s.sessions.Current(ctx)
}

// ChangePassword verifies the old credential before writing the new hash.
func (s *userService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}

	if !utils.CheckPassword(user.PasswordHash, oldPassword) {
		return errors.New("invalid current password")
	}

	if err := utils.ValidatePasswordReset("change", newPassword); err != nil {
		return err
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}
	return s.userRepo.UpdateUserPassword(ctx, user.ID, hash)
}

// RequestPasswordReset issues a short-lived reset code and mails it to the
// account's address. An unknown email succeeds silently.
func (s *userService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	code, err := utils.GenerateResetCode()
	if err != nil {
		return err
	}
	if err := utils.SetResetCode(ctx, s.codes, email, code); err != nil {
		return err
	}

	if s.mailer == nil {
		log.Warn().Msg("mailer not configured, reset code not delivered")
		return nil
	}
	return s.mailer.SendResetCodeEmail(email, code)
}

// ConfirmPasswordReset consumes the code and writes the new credential.
func (s *userService) ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error {
	if err := utils.ValidatePasswordReset(code, newPassword); err != nil {
		return err
	}

	stored, err := utils.GetResetCode(ctx, s.codes, email)
	if err != nil {
		return err
	}
	if stored == nil || *stored != code {
		return utils.ErrInvalidResetCode
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}
	if err := s.userRepo.UpdateUserPassword(ctx, user.ID, hash); err != nil {
		return err
	}

	return utils.DeleteResetCode(ctx, s.codes, email)
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.userRepo.GetUserByUsername(ctx, username)
}

func (s *userService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAllUsers(ctx)
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	return s.userRepo.DeleteUser(ctx, userID)
}
