package extension

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

const (
	distInfoSuffix  = ".dist-info"
	metadataFile    = "metadata.json"
	extMetadataFile = "veldext_metadata.json"
)

// loadWheel builds a descriptor for one extension directory. The directory
// qualifies iff it contains a *.dist-info marker directory. Metadata parsing
// is best-effort: a missing or malformed manifest leaves the metadata map
// empty but never disqualifies the package.
func loadWheel(name, dir string) (Extension, bool) {
	distInfo, ok := findDistInfo(dir)
	if !ok {
		return Extension{}, false
	}

	ext := Extension{
		Name:     name,
		Type:     TypeWheel,
		Path:     dir,
		Metadata: map[string]interface{}{},
	}

	if meta, err := readJSONMap(filepath.Join(dir, distInfo, metadataFile)); err == nil && meta != nil {
		ext.Metadata = meta
	}

	if v, ok := ext.Metadata["version"].(string); ok && v != "" {
		ext.Version = v
	} else {
		ext.Version = versionFromDistInfo(distInfo)
	}

	// The compatibility block ships inside the code module. Its absence is
	// normal; a package without a resolvable module just has no block.
	if path, err := ExtMetadataPath(dir); err == nil {
		if block, err := readJSONMap(path); err == nil {
			for k, v := range block {
				ext.Metadata[k] = v
			}
		}
	}

	return ext, true
}

// findDistInfo returns the name of the first *.dist-info subdirectory of
// dir, if any. A *.dist-info file does not count.
func findDistInfo(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if entry.IsDir() && strings.HasSuffix(entry.Name(), distInfoSuffix) {
			return entry.Name(), true
		}
	}
	return "", false
}

// ExtMetadataPath returns the path of the veldext metadata file inside the
// extension's code module. The file itself may not exist.
func ExtMetadataPath(extDir string) (string, error) {
	modName, err := ModuleName(extDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(extDir, modName, extMetadataFile), nil
}

// versionFromDistInfo recovers the version from a "<name>-<version>.dist-info"
// directory name. The name part may itself contain hyphens, so the version is
// everything after the last one. Returns "" when the name carries no version.
func versionFromDistInfo(distInfo string) string {
	base := strings.TrimSuffix(distInfo, distInfoSuffix)
	if i := strings.LastIndexByte(base, '-'); i >= 0 {
		return base[i+1:]
	}
	return ""
}

// readJSONMap reads a JSON object file into a generic map.
func readJSONMap(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}
