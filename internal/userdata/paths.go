package userdata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/veld-sh/veld/internal/branding"
	"github.com/veld-sh/veld/internal/config"
)

// Directory name constants under ~/.veld/.
const (
	ExtensionsDir = "extensions"
)

// GetExtensionsRoot returns the path to the installed-extensions directory.
// Resolution order: the VELD_EXTENSIONS environment variable, the
// extensions.root config key, then ~/.veld/extensions.
func GetExtensionsRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("EXTENSIONS")); v != "" {
		return v, nil
	}
	if v := config.Get(config.KeyExtensionsRoot); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir(), ExtensionsDir), nil
}

// GetExtensionPath returns the install directory for a named extension
// under the given extensions root.
func GetExtensionPath(root, name string) string {
	return filepath.Join(root, name)
}

// EnsureExtensionsRoot creates the extensions directory if it does not exist.
func EnsureExtensionsRoot() (string, error) {
	root, err := GetExtensionsRoot()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return "", fmt.Errorf("creating extensions directory %s: %w", root, err)
	}
	return root, nil
}
