package model

// Package model defines the domain data shared by the downloader and its
// front ends: download tasks, their status enum, the status events emitted
// while a batch runs, and the batch result.
