package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/alexedwards/argon2id"
	"github.com/thenoetrevino/listo/internal/converters"
	"github.com/thenoetrevino/listo/internal/database"
	"github.com/thenoetrevino/listo/internal/models"
)

// StorageKey is the byte-store key holding the single user record
const StorageKey = "user"

// errRecordChanged aborts a password upgrade when the stored record moved on
var errRecordChanged = errors.New("account record changed")

// MinPasswordLength is the minimum secret length, counted in characters
const MinPasswordLength = 6

// Service defines all account operations. At most one credential exists.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (models.Credential, error)
	Authenticate(ctx context.Context, email, password string) (models.Credential, error)
	Exists(ctx context.Context) (bool, error)
	Current(ctx context.Context) (models.Credential, error)
	Remove(ctx context.Context) error
}

// RegisterRequest contains the data needed to register the local account
type RegisterRequest struct {
	Username string
	Email    string
	Password string
}

// Hasher turns secrets into stored hashes and checks them back
type Hasher interface {
	Hash(password string) (string, error)
	Compare(password, hash string) (bool, error)
}

// Option configures the auth service
type Option func(*service)

// WithLogger sets the logger for the service
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		s.logger = logger
	}
}

// WithHasher replaces the argon2id hasher
func WithHasher(h Hasher) Option {
	return func(s *service) {
		s.hasher = h
	}
}

type service struct {
	store  database.KeyValueStore
	logger *slog.Logger
	hasher Hasher
	mu     sync.Mutex
}

// NewService creates a new auth service over the given byte store
func NewService(store database.KeyValueStore, opts ...Option) Service {
	s := &service{
		store:  store,
		logger: slog.Default(),
		hasher: Argon2Hasher{Params: argon2id.DefaultParams},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register validates req and stores it as the only account
func (s *service) Register(ctx context.Context, req RegisterRequest) (models.Credential, error) {
	if err := validateRegister(req); err != nil {
		return models.Credential{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The existence check and the write share one store update, so a second
	// process registering at the same time gets a ConflictError
	var cred models.Credential
	err := database.Update(ctx, s.store, StorageKey, func(data []byte, found bool) ([]byte, error) {
		if found {
			existing, err := s.decode(data)
			if err != nil {
				return nil, err
			}
			if existing.Email == req.Email {
				return nil, ErrEmailTaken
			}
			return nil, ErrAccountExists
		}

		hash, err := s.hasher.Hash(req.Password)
		if err != nil {
			return nil, models.NewStorageError("encode", StorageKey, err)
		}
		cred = models.Credential{Username: req.Username, Email: req.Email, Password: hash}
		return encode(cred)
	})
	if err != nil {
		if errors.Is(err, models.ErrStorage) {
			s.logger.Error("failed to register account", "error", err)
		}
		return models.Credential{}, err
	}
	s.logger.Info("account registered", "username", cred.Username)
	return cred.Public(), nil
}

func validateRegister(req RegisterRequest) error {
	if strings.TrimSpace(req.Username) == "" {
		return ErrEmptyUsername
	}
	if !strings.Contains(req.Email, "@") || !strings.Contains(req.Email, ".") {
		return ErrInvalidEmail
	}
	if utf8.RuneCountInString(req.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// Authenticate checks email and password against the stored account
func (s *service) Authenticate(ctx context.Context, email, password string) (models.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cred, found, err := s.read(ctx)
	if err != nil {
		return models.Credential{}, err
	}
	if !found {
		return models.Credential{}, ErrNoAccount
	}
	if cred.Email != email {
		s.logger.Warn("sign-in rejected", "reason", "email")
		return models.Credential{}, ErrInvalidCredentials
	}

	if !isHash(cred.Password) {
		if subtle.ConstantTimeCompare([]byte(cred.Password), []byte(password)) != 1 {
			s.logger.Warn("sign-in rejected", "reason", "password")
			return models.Credential{}, ErrInvalidCredentials
		}
		s.upgrade(ctx, cred, password)
		return cred.Public(), nil
	}

	ok, err := s.hasher.Compare(password, cred.Password)
	if err != nil {
		return models.Credential{}, models.NewStorageError("decode", StorageKey, err)
	}
	if !ok {
		s.logger.Warn("sign-in rejected", "reason", "password")
		return models.Credential{}, ErrInvalidCredentials
	}
	return cred.Public(), nil
}

// upgrade replaces a plaintext secret with its hash; failure only logs.
// The record is left alone if it changed since it was read.
func (s *service) upgrade(ctx context.Context, cred models.Credential, password string) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash legacy password", "error", err)
		return
	}

	err = database.Update(ctx, s.store, StorageKey, func(data []byte, found bool) ([]byte, error) {
		if !found {
			return nil, errRecordChanged
		}
		current, err := s.decode(data)
		if err != nil {
			return nil, err
		}
		if current != cred {
			return nil, errRecordChanged
		}
		current.Password = hash
		return encode(current)
	})
	if errors.Is(err, errRecordChanged) {
		s.logger.Debug("account changed during sign-in, upgrade skipped")
		return
	}
	if err != nil {
		s.logger.Error("failed to upgrade legacy password", "error", err)
		return
	}
	s.logger.Info("legacy password upgraded")
}

// Exists reports whether an account is registered
func (s *service) Exists(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, found, err := s.read(ctx)
	return found, err
}

// Current returns the registered account without its secret
func (s *service) Current(ctx context.Context) (models.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cred, found, err := s.read(ctx)
	if err != nil {
		return models.Credential{}, err
	}
	if !found {
		return models.Credential{}, ErrNoAccount
	}
	return cred.Public(), nil
}

// Remove deletes the registered account
func (s *service) Remove(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, found, err := s.read(ctx)
	if err != nil {
		return err
	}
	if !found {
		return ErrNoAccount
	}
	if err := s.store.Remove(ctx, StorageKey); err != nil {
		s.logger.Error("failed to remove account", "error", err)
		return err
	}
	s.logger.Info("account removed")
	return nil
}

func (s *service) read(ctx context.Context) (models.Credential, bool, error) {
	data, found, err := s.store.Get(ctx, StorageKey)
	if err != nil {
		s.logger.Error("failed to read account", "error", err)
		return models.Credential{}, false, err
	}
	if !found {
		return models.Credential{}, false, nil
	}
	cred, err := s.decode(data)
	if err != nil {
		return models.Credential{}, false, err
	}
	return cred, true, nil
}

func (s *service) decode(data []byte) (models.Credential, error) {
	cred, err := converters.DecodeCredential(data)
	if err != nil {
		s.logger.Error("persisted account is corrupt", "error", err)
		return models.Credential{}, models.NewStorageError("decode", StorageKey, err)
	}
	return cred, nil
}

func encode(cred models.Credential) ([]byte, error) {
	data, err := converters.EncodeCredential(cred)
	if err != nil {
		return nil, models.NewStorageError("encode", StorageKey, err)
	}
	return data, nil
}
