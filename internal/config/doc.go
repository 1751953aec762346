// Package config loads inputmux configuration.
//
// Configuration is layered, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← INPUTMUX_SECTION_KEY
//	├─────────────────────────────┤
//	│  2. Config File             │  ← .toml, .yaml or .yml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Environment variables map to keys by dropping the prefix, lower-casing,
// and replacing the first underscore with a dot, so
// INPUTMUX_INPUT_WAIT_TIMEOUT sets input.wait_timeout. Durations accept
// Go duration strings and lists accept comma separated values.
//
// # Basic Usage
//
//	cfg, err := config.Load(path)
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
