package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/careerbot/internal/domain"
	"github.com/bnema/careerbot/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	storeDirMode    = 0o700
	keysFileMode    = 0o600
	keysFileName    = "keys.toml"
	tempFilePattern = ".keys-*.toml.tmp"
)

// Store keeps API keys in a single private TOML file, for machines without
// the pass command.
type Store struct {
	path string
	mu   sync.RWMutex
}

var _ ports.SecretStore = (*Store)(nil)

type keysFile struct {
	Keys map[string]string `toml:"keys"`
}

func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(filepath.Clean(dir), keysFileName)}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key, err := validateKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return err
	}
	file.Keys[key] = value

	return s.write(file)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key, err := validateKey(key)
	if err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.read()
	if err != nil {
		return "", err
	}
	value, ok := file.Keys[key]
	if !ok {
		return "", fmt.Errorf("file secret %q: %w", key, domain.ErrSecretNotFound)
	}

	return value, nil
}

// Delete is idempotent.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key, err := validateKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := file.Keys[key]; !ok {
		return nil
	}
	delete(file.Keys, key)

	return s.write(file)
}

func (s *Store) read() (keysFile, error) {
	file := keysFile{Keys: map[string]string{}}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return file, nil
		}
		return keysFile{}, fmt.Errorf("read keys file: %w", err)
	}
	if err := toml.Unmarshal(data, &file); err != nil {
		return keysFile{}, fmt.Errorf("decode keys file: %w", err)
	}
	if file.Keys == nil {
		file.Keys = map[string]string{}
	}

	return file, nil
}

func (s *Store) write(file keysFile) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, storeDirMode); err != nil {
		return fmt.Errorf("create keys directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode keys file: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp keys file: %w", err)
	}
	tempName := tempFile.Name()
	defer func() { _ = os.Remove(tempName) }()

	if err := tempFile.Chmod(keysFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp keys file: %w", err)
	}
	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp keys file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp keys file: %w", err)
	}
	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace keys file: %w", err)
	}

	return nil
}

func validateKey(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", errors.New("secret key is empty")
	}
	if strings.ContainsAny(trimmed, " \t\r\n") {
		return "", fmt.Errorf("invalid secret key %q", key)
	}
	return trimmed, nil
}
