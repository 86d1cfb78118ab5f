package userdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/veld-sh/veld/internal/branding"
)

func TestGetExtensionsRootEnvOverride(t *testing.T) {
	want := t.TempDir()
	t.Setenv(branding.EnvVar("EXTENSIONS"), want)

	got, err := GetExtensionsRoot()
	if err != nil {
		t.Fatalf("GetExtensionsRoot: %v", err)
	}
	if got != want {
		t.Errorf("GetExtensionsRoot = %q, want %q", got, want)
	}
}

func TestGetExtensionsRootDefault(t *testing.T) {
	t.Setenv(branding.EnvVar("EXTENSIONS"), "")

	got, err := GetExtensionsRoot()
	if err != nil {
		t.Fatalf("GetExtensionsRoot: %v", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir: %v", err)
	}
	want := filepath.Join(home, branding.HomeDir(), ExtensionsDir)
	if got != want {
		t.Errorf("GetExtensionsRoot = %q, want %q", got, want)
	}
}

func TestGetExtensionPath(t *testing.T) {
	got := GetExtensionPath("/tmp/exts", "myext")
	if got != filepath.Join("/tmp/exts", "myext") {
		t.Errorf("GetExtensionPath = %q", got)
	}
}

func TestEnsureExtensionsRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "extensions")
	t.Setenv(branding.EnvVar("EXTENSIONS"), root)

	got, err := EnsureExtensionsRoot()
	if err != nil {
		t.Fatalf("EnsureExtensionsRoot: %v", err)
	}
	if got != root {
		t.Errorf("EnsureExtensionsRoot = %q, want %q", got, root)
	}
	info, err := os.Stat(root)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if !info.IsDir() {
		t.Error("extensions root was not created as a directory")
	}
}
