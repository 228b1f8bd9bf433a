// Package config provides the configuration structure for ransomcheck,
// its defaults, validation, and the optional YAML configuration file.
package config
