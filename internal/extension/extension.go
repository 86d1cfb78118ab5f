package extension

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// ModPrefix marks the single directory inside an extension package that
	// holds its loadable code module.
	ModPrefix = "veldext_"

	// TypeWheel identifies extensions installed from wheel-style archives.
	TypeWheel = "whl"
)

// Well-known keys in the veldext metadata block.
const (
	MetadataMinCLIVersion = "veldext.minCliVersion"
	MetadataMaxCLIVersion = "veldext.maxCliVersion"
	MetadataIsPreview     = "veldext.isPreview"
)

// Extension describes one installed extension package. Name always equals
// the install directory name under the extensions root.
type Extension struct {
	Name     string                 `json:"name"`
	Version  string                 `json:"version"`
	Type     string                 `json:"type"`
	Path     string                 `json:"path"`
	Metadata map[string]interface{} `json:"metadata"`
}

// List scans root and returns a descriptor for every subdirectory that
// qualifies as an extension package, in directory listing order. A missing,
// empty, or package-free root yields an empty result; List never fails.
func List(root string) []Extension {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}

	var exts []Extension
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		ext, ok := loadWheel(entry.Name(), filepath.Join(root, entry.Name()))
		if !ok {
			continue
		}
		exts = append(exts, ext)
	}
	return exts
}

// WheelExtensions returns only the wheel-type descriptors under root.
func WheelExtensions(root string) []Extension {
	var whl []Extension
	for _, ext := range List(root) {
		if ext.Type == TypeWheel {
			whl = append(whl, ext)
		}
	}
	return whl
}

// Names returns the names of all installed extensions in scan order.
func Names(root string) []string {
	var names []string
	for _, ext := range List(root) {
		names = append(names, ext.Name)
	}
	return names
}

// Exists reports whether an extension named name is installed under root.
func Exists(root, name string) bool {
	for _, ext := range List(root) {
		if ext.Name == name {
			return true
		}
	}
	return false
}

// Get returns the descriptor for the named extension. It returns a
// *NotInstalledError when no such extension is present.
func Get(root, name string) (*Extension, error) {
	for _, ext := range List(root) {
		if ext.Name == name {
			return &ext, nil
		}
	}
	return nil, &NotInstalledError{Name: name}
}

// Path returns the install directory for a named extension under root.
// It does not check that the extension is actually installed.
func Path(root, name string) string {
	return filepath.Join(root, name)
}

// ModuleName resolves the loadable code module inside an extension's install
// directory. Exactly one immediate subdirectory carrying ModPrefix must
// exist; files with the prefix do not count. Anything else means the package
// was built wrong and yields a *MalformedError.
func ModuleName(extDir string) (string, error) {
	entries, err := os.ReadDir(extDir)
	if err != nil {
		return "", &MalformedError{Path: extDir, Reason: "unreadable package directory"}
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), ModPrefix) {
			candidates = append(candidates, entry.Name())
		}
	}

	if len(candidates) != 1 {
		reason := "no " + ModPrefix + "* module directory"
		if len(candidates) > 1 {
			reason = "multiple " + ModPrefix + "* module directories: " + strings.Join(candidates, ", ")
		}
		return "", &MalformedError{Path: extDir, Reason: reason}
	}
	return candidates[0], nil
}
