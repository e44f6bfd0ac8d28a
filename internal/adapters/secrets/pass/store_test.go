package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/careerbot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const groqKey = "careerbot/groq/api_key"

func TestStoreCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		call      func(*Store) (string, error)
		wantArgs  []string
		wantInput string
		stdout    string
		want      string
	}{
		{
			name: "put inserts multiline with force",
			call: func(s *Store) (string, error) {
				return "", s.Put(context.Background(), groqKey, "gsk-secret")
			},
			wantArgs:  []string{"insert", "--multiline", "--force", groqKey},
			wantInput: "gsk-secret\n",
		},
		{
			name: "get keeps the first line only",
			call: func(s *Store) (string, error) {
				return s.Get(context.Background(), groqKey)
			},
			wantArgs: []string{"show", groqKey},
			stdout:   "gsk-secret\r\nlogin: learner\n",
			want:     "gsk-secret",
		},
		{
			name: "delete removes with force",
			call: func(s *Store) (string, error) {
				return "", s.Delete(context.Background(), groqKey)
			},
			wantArgs: []string{"rm", "--force", groqKey},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			called := false
			store := &Store{
				run: func(_ context.Context, input string, args ...string) (string, string, error) {
					called = true
					assert.Equal(t, tc.wantArgs, args)
					assert.Equal(t, tc.wantInput, input)
					return tc.stdout, "", nil
				},
			}

			got, err := tc.call(store)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.True(t, called)
		})
	}
}

func TestStoreMapsMissingEntries(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(context.Context, string, ...string) (string, string, error) {
			return "", "Error: careerbot/groq/api_key is not in the password store.", errors.New("exit status 1")
		},
	}

	_, err := store.Get(context.Background(), groqKey)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)

	require.NoError(t, store.Delete(context.Background(), groqKey))
}

func TestStoreGetReturnsClearError(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(context.Context, string, ...string) (string, string, error) {
			return "", "gpg: decryption failed: No secret key", errors.New("exit status 2")
		},
	}

	_, err := store.Get(context.Background(), groqKey)
	require.Error(t, err)
	assert.ErrorContains(t, err, `pass show "careerbot/groq/api_key"`)
	assert.ErrorContains(t, err, "decryption failed")
}

func TestStoreSkipsCommandOnCanceledContext(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(context.Context, string, ...string) (string, string, error) {
			t.Fatal("pass should not run")
			return "", "", nil
		},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Put(ctx, groqKey, "x")
	assert.ErrorIs(t, err, context.Canceled)
}
