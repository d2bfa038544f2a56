package ui

// Package ui contains the Fyne-based desktop user interface. It collects
// links and a destination folder, hands them to the download service, and
// renders the status events of the running batch as one row per link.
