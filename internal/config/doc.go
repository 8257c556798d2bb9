package config

// Package config manages application configuration: Fyne preferences for the
// desktop UI and an optional YAML file for the command-line client.
