package auth

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/azzbr/padelx/internal/dependencies/clock"
	"github.com/azzbr/padelx/internal/dependencies/random"
	"github.com/azzbr/padelx/internal/model"
	"github.com/azzbr/padelx/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidSession     = errors.New("invalid or expired session token")
	ErrUsernameExists     = errors.New("username already exists")
)

const (
	idAlphabet    = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength      = 10
	tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	tokenLength   = 32
)

// Config holds auth behavior settings
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns sensible defaults for auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

type tokenSession struct {
	organizerID model.OrganizerID
	expiresAt   time.Time
}

// Service handles organizer registration, login and token validation.
// Tokens are held in memory; a restart logs everyone out.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
	cfg     Config

	mu     sync.RWMutex
	tokens map[string]tokenSession
}

// NewService creates a new auth Service
func NewService(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
	cfg Config,
) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
		cfg:     cfg,
		tokens:  make(map[string]tokenSession),
	}
}

// Register creates a new organizer account with a bcrypt-hashed password
func (s *Service) Register(ctx context.Context, username, password string) (*model.Organizer, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	if _, err := s.storage.GetOrganizerByUsername(ctx, username); err == nil {
		return nil, ErrUsernameExists
	} else if !errors.Is(err, model.ErrOrganizerNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	organizer := &model.Organizer{
		ID:           model.OrganizerID("o_" + s.random.String(idLength, idAlphabet)),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    s.clock.Now(),
	}

	if err := s.storage.SaveOrganizer(ctx, organizer); err != nil {
		return nil, err
	}

	s.logger.Info("organizer registered",
		slog.String("organizer_id", string(organizer.ID)),
		slog.String("username", username),
	)

	return organizer, nil
}

// Login verifies credentials and issues a session token
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	organizer, err := s.storage.GetOrganizerByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrOrganizerNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(organizer.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := s.random.String(tokenLength, tokenAlphabet)

	s.mu.Lock()
	s.tokens[token] = tokenSession{
		organizerID: organizer.ID,
		expiresAt:   s.clock.Now().Add(s.cfg.SessionDuration),
	}
	s.mu.Unlock()

	s.logger.Info("organizer logged in",
		slog.String("organizer_id", string(organizer.ID)),
	)

	return token, nil
}

// Validate resolves a session token to the organizer it belongs to
func (s *Service) Validate(ctx context.Context, token string) (*model.Organizer, error) {
	s.mu.RLock()
	session, ok := s.tokens[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidSession
	}
	if s.clock.Now().After(session.expiresAt) {
		s.mu.Lock()
		delete(s.tokens, token)
		s.mu.Unlock()
		return nil, ErrInvalidSession
	}

	return s.storage.GetOrganizer(ctx, session.organizerID)
}

// Logout revokes a session token
func (s *Service) Logout(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}
