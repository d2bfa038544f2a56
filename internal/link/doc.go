package link

// Package link recognizes Google Drive sharing links. It extracts the file
// identifier from the two supported URL shapes and builds the direct
// download URL for it.
