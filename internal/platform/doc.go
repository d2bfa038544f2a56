package platform

// Package platform contains OS integration glue: destination directory
// handling, the default Downloads location, and opening folders in the
// system file manager.
