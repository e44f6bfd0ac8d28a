package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/subosito/gotenv"
)

// loadDotEnv exports variables from path without overriding ones already
// set. A missing file is not an error.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if err := gotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	return nil
}
