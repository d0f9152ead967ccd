// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

// Package config loads Mealmatch configuration with koanf.
//
// Sources are layered, later layers winning:
//
//  1. Struct defaults (defaultConfig)
//  2. An optional YAML file: $CONFIG_PATH, ./config.yaml, ./config.yml,
//     /etc/mealmatch/config.yaml
//  3. Environment variables listed in envMappings
//
// Only mapped environment variables are read, so unrelated variables in the
// process environment never leak into the configuration. Comma separated
// values fill slice fields such as security.cors_origins.
//
// Example:
//
//	cfg, err := config.LoadWithKoanf()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load configuration")
//	}
package config
