package main

import (
	"github.com/Hariprajwal/video-gif-pair-cleaner/internal/logger"

	"github.com/pkg/browser"
)

// openVideo launches the system handler for a video file so a pair can
// be verified before removal.
func openVideo(path string) error {
	logger.TUI("opening video %s", path)
	return browser.OpenFile(path)
}
