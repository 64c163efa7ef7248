// Package config provides the embedded generation presets and environment overrides.
package config

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
