package service

import (
	"time"

	hlmodels "clearview/internal/highlight/models"
)

// Config tunes the clearing service.
type Config struct {
	// FetchTimeout bounds each collaborator fetch. A history or span set cut
	// short by it is refused with CodePreconditionFailed.
	FetchTimeout time.Duration
	// FolderConcurrency caps the parallel per-file resolutions of FolderDecisions.
	FolderConcurrency int
	Markers           hlmodels.Markers
}

func DefaultConfig() *Config {
	return &Config{
		FetchTimeout:      5 * time.Second,
		FolderConcurrency: 8,
		Markers:           hlmodels.DefaultMarkers,
	}
}
