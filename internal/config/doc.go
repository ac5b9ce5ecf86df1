// Package config provides configuration management for the exercise-quality
// report tool.
//
// Configuration is loaded from environment variables (prefix QR) layered over
// an optional YAML file, then validated. The Paths type is the single source
// of truth for the output directory layout; nothing else in the codebase
// constructs report file paths.
package config
