// Package env keeps names of environment variables with special significance to
// ecalc.
package env

// Environment variables with special significance to ecalc.
const (
	// Used to find rc.yaml when XDG_CONFIG_HOME is unset.
	HOME = "HOME"
	// Base directory of rc.yaml.
	XDG_CONFIG_HOME = "XDG_CONFIG_HOME"
)
