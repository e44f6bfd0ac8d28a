package local

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/careerbot/internal/domain"
	"github.com/bnema/careerbot/internal/ports"
	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/crypto/bcrypt"
)

const (
	usersFileMode   = 0o600
	usersDirMode    = 0o700
	tempFilePattern = ".users-*.toml.tmp"
)

var (
	errEmailExists        = errors.New("email already registered")
	errInvalidCredentials = errors.New("email or password does not match")
)

// Store is a file-backed identity provider for single-machine use. Accounts
// live in a TOML file with bcrypt password hashes and need no email
// verification.
type Store struct {
	usersPath string
	clock     ports.Clock
	cost      int
	mu        *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.IdentityProvider = (*Store)(nil)

func NewStore(usersPath string, clock ports.Clock) (*Store, error) {
	if usersPath == "" {
		return nil, errors.New("users path is empty")
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	absPath, err := filepath.Abs(usersPath)
	if err != nil {
		return nil, fmt.Errorf("resolve users path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	return &Store{
		usersPath: absPath,
		clock:     clock,
		cost:      bcrypt.DefaultCost,
		mu:        lockForPath(absPath),
	}, nil
}

func (s *Store) RequiresVerification() bool {
	return false
}

// SendVerification is a no-op; local accounts are verified on creation.
func (s *Store) SendVerification(context.Context, domain.Identity) error {
	return nil
}

func (s *Store) Register(ctx context.Context, email, password string) (domain.Identity, error) {
	if err := ctx.Err(); err != nil {
		return domain.Identity{}, err
	}
	email = domain.NormalizeEmail(email)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.readSchema()
	if err != nil {
		return domain.Identity{}, err
	}
	for _, user := range file.Users {
		if user.Email == email {
			return domain.Identity{}, domain.NewExternalError(domain.CodeEmailExists, errEmailExists)
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return domain.Identity{}, fmt.Errorf("generate user id: %w", err)
	}
	file.Users = append(file.Users, userSchema{
		ID:           id.String(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.clock.Now().UTC().Format(time.RFC3339),
	})

	if err := ctx.Err(); err != nil {
		return domain.Identity{}, err
	}
	if err := s.writeSchema(file); err != nil {
		return domain.Identity{}, err
	}

	return domain.Identity{UserID: domain.UserID(id.String()), Email: email, Verified: true}, nil
}

func (s *Store) Authenticate(ctx context.Context, email, password string) (domain.Identity, error) {
	if err := ctx.Err(); err != nil {
		return domain.Identity{}, err
	}
	email = domain.NormalizeEmail(email)

	s.mu.RLock()
	file, err := s.readSchema()
	s.mu.RUnlock()
	if err != nil {
		return domain.Identity{}, err
	}

	for _, user := range file.Users {
		if user.Email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			break
		}
		return domain.Identity{UserID: domain.UserID(user.ID), Email: user.Email, Verified: true}, nil
	}

	return domain.Identity{}, domain.NewExternalError(domain.CodeInvalidLoginCredentials, errInvalidCredentials)
}

func (s *Store) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(s.usersPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read users file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode users file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (s *Store) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(s.usersPath), usersDirMode); err != nil {
		return fmt.Errorf("create users directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode users file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.usersPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp users file: %w", err)
	}
	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp users file: %w", err)
	}
	if err := tempFile.Chmod(usersFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp users file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp users file: %w", err)
	}
	if err := os.Rename(tempName, s.usersPath); err != nil {
		return fmt.Errorf("replace users file: %w", err)
	}
	cleanup = false

	return nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
