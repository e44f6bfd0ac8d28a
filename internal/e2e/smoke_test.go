package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runCareerbot(t, binaryPath, home, "", "key", "set", "groq", "--value", "gsk-test-123")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Stored groq API key.")

	stdout, stderr, err = runCareerbot(t, binaryPath, home, "Secret123\n", "account", "register", "--email", "learner@example.com")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Registration successful!")

	stdout, stderr, err = runCareerbot(t, binaryPath, home, "Secret123\nI enjoy design\nquit\n", "chat", "--email", "learner@example.com")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Developing a portfolio and exploring different mediums can be helpful.")

	stdout, stderr, err = runCareerbot(t, binaryPath, home, "Secret123\n", "history", "--email", "learner@example.com")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "I enjoy design")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "careerbot-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/careerbot")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build careerbot binary: %s", string(output))
	return binaryPath
}

func runCareerbot(t *testing.T, binaryPath, home, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = home
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"PATH="+filepath.Join(home, "bin"),
		"CAREERBOT_MODEL_PROVIDER=offline",
	)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
