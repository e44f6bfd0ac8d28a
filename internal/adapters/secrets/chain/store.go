package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/careerbot/internal/adapters/secrets/file"
	passstore "github.com/bnema/careerbot/internal/adapters/secrets/pass"
	"github.com/bnema/careerbot/internal/domain"
	"github.com/bnema/careerbot/internal/ports"
)

// Store tries its backends in order. Reads return the first hit and writes
// land in the first backend that accepts them. Deletes reach every backend.
type Store struct {
	stores []ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

var errNoStores = errors.New("secret store chain is empty")

func NewStore(stores ...ports.SecretStore) (*Store, error) {
	if len(stores) == 0 {
		return nil, errNoStores
	}
	for i, store := range stores {
		if store == nil {
			return nil, fmt.Errorf("secret store %d is nil", i)
		}
	}

	return &Store{stores: stores}, nil
}

// NewPassFirstWithFileFallback prefers pass(1) and falls back to keys.toml
// under fileDir.
func NewPassFirstWithFileFallback(fileDir string) (*Store, error) {
	return NewStore(passstore.NewStore(), filestore.NewStore(fileDir))
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var errs []error
	for i, store := range s.stores {
		value, err := store.Get(ctx, key)
		if err == nil {
			return value, nil
		}
		if isContextError(err) {
			return "", err
		}
		errs = append(errs, fmt.Errorf("backend %d get: %w", i, err))
	}

	if allNotFound(errs) {
		return "", fmt.Errorf("secret %q: %w", key, domain.ErrSecretNotFound)
	}
	return "", errors.Join(errs...)
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	var errs []error
	for i, store := range s.stores {
		err := store.Put(ctx, key, value)
		if err == nil {
			return nil
		}
		if isContextError(err) {
			return err
		}
		errs = append(errs, fmt.Errorf("backend %d put: %w", i, err))
	}

	return errors.Join(errs...)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	var errs []error
	for i, store := range s.stores {
		err := store.Delete(ctx, key)
		if err == nil || errors.Is(err, domain.ErrSecretNotFound) || errors.Is(err, passstore.ErrUnavailable) {
			continue
		}
		if isContextError(err) {
			return err
		}
		errs = append(errs, fmt.Errorf("backend %d delete: %w", i, err))
	}

	return errors.Join(errs...)
}

// allNotFound treats an unavailable backend as empty so that a missing pass
// binary does not hide a plain not-found.
func allNotFound(errs []error) bool {
	found := false
	for _, err := range errs {
		switch {
		case errors.Is(err, domain.ErrSecretNotFound):
			found = true
		case errors.Is(err, passstore.ErrUnavailable):
		default:
			return false
		}
	}
	return found
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
