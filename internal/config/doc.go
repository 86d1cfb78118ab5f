// Package config manages user-level settings stored at ~/.veld/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the extensions root override consulted by the extension commands.
package config
