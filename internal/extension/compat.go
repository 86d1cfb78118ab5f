package extension

import (
	"fmt"

	"github.com/veld-sh/veld/internal/version"
)

// Compatibility is the verdict of a host-version check against an
// extension's declared CLI version bounds.
type Compatibility struct {
	Compatible  bool   `json:"compatible"`
	HostVersion string `json:"hostVersion"`
	MinRequired string `json:"minRequired,omitempty"`
	MaxRequired string `json:"maxRequired,omitempty"`
}

// CheckCompatibility decides whether an extension whose metadata declares
// optional minimum/maximum CLI versions can run on hostVersion. An absent
// bound is unbounded on that side; no metadata or no bounds means
// unconditionally compatible. Performs no I/O.
func CheckCompatibility(meta map[string]interface{}, hostVersion string) (Compatibility, error) {
	result := Compatibility{Compatible: true, HostVersion: hostVersion}
	if len(meta) == 0 {
		return result, nil
	}

	minRequired, _ := meta[MetadataMinCLIVersion].(string)
	maxRequired, _ := meta[MetadataMaxCLIVersion].(string)
	result.MinRequired = minRequired
	result.MaxRequired = maxRequired

	if minRequired == "" && maxRequired == "" {
		return result, nil
	}

	host, err := version.Parse(hostVersion)
	if err != nil {
		return Compatibility{}, fmt.Errorf("parsing host version: %w", err)
	}

	if minRequired != "" {
		min, err := version.Parse(minRequired)
		if err != nil {
			return Compatibility{}, fmt.Errorf("parsing minimum required version: %w", err)
		}
		if host.Compare(min) < 0 {
			result.Compatible = false
		}
	}

	if maxRequired != "" {
		max, err := version.Parse(maxRequired)
		if err != nil {
			return Compatibility{}, fmt.Errorf("parsing maximum required version: %w", err)
		}
		if host.Compare(max) > 0 {
			result.Compatible = false
		}
	}

	return result, nil
}
