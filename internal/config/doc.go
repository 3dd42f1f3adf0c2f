// Package config provides configuration management for the report
// normalization service. Configuration is loaded from the following sources
// in order of precedence:
//
//  1. Environment variables (highest priority)
//  2. An optional YAML configuration file
//  3. Built-in defaults
//
// Environment variables are namespaced under SELLERPULSE_*:
//
//	SELLERPULSE_LOGGING_LEVEL=debug
//	SELLERPULSE_LOGGING_OUTPUT=both
//	SELLERPULSE_PARSER_MAX_INPUT_BYTES=10485760
//
// Loaded configuration is validated before use; an invalid configuration is
// an error at startup, never a silent fallback.
package config
