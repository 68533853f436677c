package config

import "os"

const DefaultSourceDir = "~/Downloads"

// SourceDir returns the organize target from the TIDYDESK_DIR env
// var, falling back to DefaultSourceDir.
func SourceDir() string {
	if env := os.Getenv("TIDYDESK_DIR"); env != "" {
		return env
	}
	return DefaultSourceDir
}
