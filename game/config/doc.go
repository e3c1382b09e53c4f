// Package config provides table configuration management for the blackjack
// server.
//
// Configurations are JSON files in a directory, one table per file. The
// manager caches parsed configurations, validates them on load, and falls
// back to the built-in classic table when the directory holds no usable
// default. The config name used for session creation is the filename
// without the .json extension.
package config
