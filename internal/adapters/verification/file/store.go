// Package file persists verification resend counters in a TOML file so the
// cooldown and attempt limit survive between CLI runs.
package file

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
	toml "github.com/pelletier/go-toml/v2"
)

const (
	currentSchemaVersion = 1
	attemptsFileMode     = 0o600
	attemptsDirMode      = 0o700
	tempFilePattern      = ".verification-*.toml.tmp"
)

type fileSchema struct {
	Version  int             `toml:"version"`
	Attempts []attemptSchema `toml:"attempts"`
}

type attemptSchema struct {
	Email      string `toml:"email"`
	Count      int    `toml:"count"`
	LastSentAt string `toml:"last_sent_at"`
}

type Store struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.VerificationStore = (*Store)(nil)

func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("verification path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve verification path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	return &Store{path: absPath, mu: lockForPath(absPath)}, nil
}

func (s *Store) Get(ctx context.Context, email string) (domain.VerificationAttempts, error) {
	if err := ctx.Err(); err != nil {
		return domain.VerificationAttempts{}, err
	}
	email = domain.NormalizeEmail(email)

	s.mu.RLock()
	file, err := s.read()
	s.mu.RUnlock()
	if err != nil {
		return domain.VerificationAttempts{}, err
	}

	for _, entry := range file.Attempts {
		if entry.Email != email {
			continue
		}
		lastSentAt, err := time.Parse(time.RFC3339Nano, entry.LastSentAt)
		if err != nil {
			return domain.VerificationAttempts{}, fmt.Errorf("parse last sent time for %s: %w", email, err)
		}
		return domain.VerificationAttempts{Email: email, Count: entry.Count, LastSentAt: lastSentAt}, nil
	}

	return domain.VerificationAttempts{Email: email}, nil
}

func (s *Store) Put(ctx context.Context, attempts domain.VerificationAttempts) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	attempts.Email = domain.NormalizeEmail(attempts.Email)
	if attempts.Email == "" {
		return errors.New("verification email is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return err
	}

	entry := attemptSchema{
		Email:      attempts.Email,
		Count:      attempts.Count,
		LastSentAt: attempts.LastSentAt.UTC().Format(time.RFC3339Nano),
	}
	replaced := false
	for i := range file.Attempts {
		if file.Attempts[i].Email == attempts.Email {
			file.Attempts[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		file.Attempts = append(file.Attempts, entry)
	}

	return s.write(file)
}

func (s *Store) read() (fileSchema, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read verification file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode verification file: %w", err)
	}
	if file.Version > currentSchemaVersion {
		return fileSchema{}, fmt.Errorf("unsupported verification schema version %d (current %d)", file.Version, currentSchemaVersion)
	}
	if file.Version == 0 {
		file.Version = currentSchemaVersion
	}

	return file, nil
}

func (s *Store) write(file fileSchema) error {
	if err := os.MkdirAll(filepath.Dir(s.path), attemptsDirMode); err != nil {
		return fmt.Errorf("create verification directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode verification file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp verification file: %w", err)
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
		return fmt.Errorf("write temp verification file: %w", err)
	}
	if err := tempFile.Chmod(attemptsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp verification file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp verification file: %w", err)
	}
	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace verification file: %w", err)
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
