package config

// Package config holds application configuration: GUI preferences persisted
// through Fyne, and process settings read from the environment or a .env file.
