package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/veld-sh/veld/internal/branding"
	"github.com/veld-sh/veld/internal/extension"
	"github.com/veld-sh/veld/internal/userdata"
)

var (
	extensionListJSON bool
	extensionShowJSON bool
)

func init() {
	extensionListCmd.Flags().BoolVar(&extensionListJSON, "json", false, "Output in JSON format")
	extensionShowCmd.Flags().BoolVar(&extensionShowJSON, "json", false, "Output in JSON format")

	extensionCmd.AddCommand(extensionListCmd)
	extensionCmd.AddCommand(extensionShowCmd)
	extensionCmd.AddCommand(extensionCheckCmd)
	extensionCmd.AddCommand(extensionValidateCmd)
	rootCmd.AddCommand(extensionCmd)
}

var extensionCmd = &cobra.Command{
	Use:     "extension",
	Aliases: []string{"ext"},
	Short:   "Inspect installed extensions",
	Long: `Inspect extension packages installed under ~/.veld/extensions/.

Each extension lives in its own directory named after the extension and is
discovered by its wheel metadata. Set ` + branding.EnvVar("EXTENSIONS") + ` or the
extensions.root config key to point at a different directory.`,
}

// listEntry represents an installed extension for display. Compatible is nil
// when the verdict could not be computed (e.g., an unparseable dev build).
type listEntry struct {
	Name       string `json:"name"`
	Version    string `json:"version"`
	Type       string `json:"type"`
	Compatible *bool  `json:"compatible"`
}

var extensionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed extensions",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := userdata.GetExtensionsRoot()
		if err != nil {
			return fmt.Errorf("resolving extensions directory: %w", err)
		}

		exts := extension.List(root)
		if len(exts) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No extensions installed.")
			return nil
		}

		var entries []listEntry
		for _, ext := range exts {
			entries = append(entries, listEntry{
				Name:       ext.Name,
				Version:    ext.Version,
				Type:       ext.Type,
				Compatible: compatibilityOf(ext, buildVersion),
			})
		}

		if extensionListJSON {
			data, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling extension list: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tVERSION\tTYPE\tCOMPATIBLE")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, orDash(e.Version), e.Type, compatLabel(e.Compatible))
		}
		return w.Flush()
	},
}

var extensionShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show details for an installed extension",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := userdata.GetExtensionsRoot()
		if err != nil {
			return fmt.Errorf("resolving extensions directory: %w", err)
		}

		ext, err := extension.Get(root, args[0])
		if err != nil {
			return err
		}

		// The module name is informational here; a broken package still shows.
		modName, modErr := extension.ModuleName(ext.Path)

		if extensionShowJSON {
			out := struct {
				extension.Extension
				Module string `json:"module,omitempty"`
			}{Extension: *ext, Module: modName}
			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling extension: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintf(w, "Name:\t%s\n", ext.Name)
		fmt.Fprintf(w, "Version:\t%s\n", orDash(ext.Version))
		fmt.Fprintf(w, "Type:\t%s\n", ext.Type)
		fmt.Fprintf(w, "Path:\t%s\n", ext.Path)
		if modErr == nil {
			fmt.Fprintf(w, "Module:\t%s\n", modName)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if len(ext.Metadata) > 0 {
			data, err := json.MarshalIndent(ext.Metadata, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling metadata: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Metadata:\n%s\n", string(data))
		}
		return nil
	},
}

var extensionCheckCmd = &cobra.Command{
	Use:   "check <name>",
	Short: "Check an extension's compatibility with this CLI version",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := userdata.GetExtensionsRoot()
		if err != nil {
			return fmt.Errorf("resolving extensions directory: %w", err)
		}

		ext, err := extension.Get(root, args[0])
		if err != nil {
			return err
		}

		result, err := extension.CheckCompatibility(ext.Metadata, buildVersion)
		if err != nil {
			return fmt.Errorf("checking compatibility of %q: %w", ext.Name, err)
		}

		if !result.Compatible {
			return fmt.Errorf("extension %q is incompatible with CLI version %s (%s)",
				ext.Name, result.HostVersion, formatBounds(result.MinRequired, result.MaxRequired))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Extension %q is compatible with CLI version %s.\n",
			ext.Name, result.HostVersion)
		return nil
	},
}

var extensionValidateCmd = &cobra.Command{
	Use:   "validate <name>",
	Short: "Validate an extension's metadata block against the schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := userdata.GetExtensionsRoot()
		if err != nil {
			return fmt.Errorf("resolving extensions directory: %w", err)
		}

		ext, err := extension.Get(root, args[0])
		if err != nil {
			return err
		}

		path, err := extension.ExtMetadataPath(ext.Path)
		if err != nil {
			return fmt.Errorf("locating metadata block: %w", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Fprintf(cmd.OutOrStdout(), "Extension %q has no metadata block.\n", ext.Name)
				return nil
			}
			return fmt.Errorf("reading metadata block: %w", err)
		}

		result, err := extension.ValidateMetadata(data)
		if err != nil {
			return fmt.Errorf("validating metadata block: %w", err)
		}

		if result.Valid {
			fmt.Fprintf(cmd.OutOrStdout(), "Extension %q metadata is valid.\n", ext.Name)
			return nil
		}

		for _, issue := range result.Issues {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", orDash(issue.Path), issue.Message)
		}
		return fmt.Errorf("extension %q metadata failed validation with %d issue(s)", ext.Name, len(result.Issues))
	},
}

// compatibilityOf computes the compatibility verdict for one extension, or
// nil when the check cannot run (unparseable host or bound versions).
func compatibilityOf(ext extension.Extension, hostVersion string) *bool {
	result, err := extension.CheckCompatibility(ext.Metadata, hostVersion)
	if err != nil {
		return nil
	}
	return &result.Compatible
}

// compatLabel renders a verdict for table output.
func compatLabel(compatible *bool) string {
	switch {
	case compatible == nil:
		return "-"
	case *compatible:
		return "yes"
	}
	return "no"
}

// formatBounds renders declared version bounds for error messages.
func formatBounds(minRequired, maxRequired string) string {
	switch {
	case minRequired != "" && maxRequired != "":
		return fmt.Sprintf("requires CLI version >= %s and <= %s", minRequired, maxRequired)
	case minRequired != "":
		return fmt.Sprintf("requires CLI version >= %s", minRequired)
	case maxRequired != "":
		return fmt.Sprintf("requires CLI version <= %s", maxRequired)
	}
	return "no version bounds declared"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
