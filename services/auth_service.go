package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"oneearth/logger"
	"oneearth/metrics"
	"oneearth/models"
	"oneearth/repository"
	"oneearth/store"
	"oneearth/utils"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidRole        = errors.New("role must be user or host")
	ErrNoSession          = errors.New("no active session")
)

// RegisterInput is the sign-up form.
type RegisterInput struct {
	Username string      `json:"username" validate:"required"`
	Email    string      `json:"email" validate:"required"`
	Password string      `json:"password" validate:"required"`
	Role     models.Role `json:"role" validate:"required"`
}

// AuthService keeps the single persisted session slot in sync with the users collection.
type AuthService struct {
	Users      *repository.UserRepository
	Store      store.Store
	SessionKey string
	log        *logrus.Entry
}

func NewAuthService(users *repository.UserRepository, s store.Store, sessionKey string, l *logger.Logger) *AuthService {
	return &AuthService{Users: users, Store: s, SessionKey: sessionKey, log: l.Component("auth")}
}

// Login authenticates by exact email and password match and persists the user as the session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			if err := s.setSession(ctx, &users[i]); err != nil {
				return nil, err
			}
			metrics.Logins.WithLabelValues("success").Inc()
			s.log.WithField("user_id", users[i].ID).Info("🔓 user logged in")
			return &users[i], nil
		}
	}
	metrics.Logins.WithLabelValues("failure").Inc()
	return nil, ErrInvalidCredentials
}

// Register creates a user with zero XP and logs them in. The email must be unused.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return nil, invalidFields(ErrMissingFields, err)
	}
	if !in.Role.Valid() {
		return nil, ErrInvalidRole
	}

	user, created, err := s.Users.CreateIfEmailFree(ctx, models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
		Role:     in.Role,
	})
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrEmailTaken
	}

	if err := s.setSession(ctx, user); err != nil {
		return nil, err
	}
	metrics.Registrations.Inc()
	s.log.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("✅ user registered")
	return user, nil
}

// Logout clears the session slot.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.Store.Delete(ctx, s.SessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Current returns the session user.
func (s *AuthService) Current(ctx context.Context) (*models.User, error) {
	data, ok, err := s.Store.Get(ctx, s.SessionKey)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if !ok {
		return nil, ErrNoSession
	}
	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &u, nil
}

// State loads the session for the route guard. A read failure leaves the state unestablished.
func (s *AuthService) State(ctx context.Context) (SessionState, error) {
	u, err := s.Current(ctx)
	switch {
	case errors.Is(err, ErrNoSession):
		return SessionState{Established: true}, nil
	case err != nil:
		return SessionState{}, err
	}
	return SessionState{Established: true, User: u}, nil
}

// Refresh rewrites the session from the stored user so XP changes show up. A session whose
// user no longer exists is left as is.
func (s *AuthService) Refresh(ctx context.Context) (*models.User, error) {
	cur, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	fresh, err := s.Users.GetByID(ctx, cur.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return cur, nil
	}
	if err != nil {
		return nil, err
	}
	if err := s.setSession(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

func (s *AuthService) setSession(ctx context.Context, u *models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.Store.Put(ctx, s.SessionKey, data); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}
