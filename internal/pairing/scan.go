package pairing

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Hariprajwal/video-gif-pair-cleaner/internal/errors"
	"github.com/Hariprajwal/video-gif-pair-cleaner/internal/logger"
	"github.com/Hariprajwal/video-gif-pair-cleaner/internal/match"
)

// MarkerSuffix identifies source folders eligible for pairing.
const MarkerSuffix = ".gifs"

// Video file extensions recognized as pairing candidates (lowercase,
// with leading dot).
var videoExtensions = map[string]bool{
	".mp4":  true,
	".avi":  true,
	".mkv":  true,
	".mov":  true,
	".wmv":  true,
	".flv":  true,
	".webm": true,
	".m4v":  true,
	".3gp":  true,
	".mpeg": true,
	".mpg":  true,
	".ts":   true,
	".mts":  true,
	".m2ts": true,
	".vob":  true,
	".ogv":  true,
	".divx": true,
	".xvid": true,
}

// Source is one marker-suffixed folder from the target directory.
type Source struct {
	Name string
	Path string
}

// IsVideoFile reports whether name carries a recognized video extension.
func IsVideoFile(name string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(name))]
}

// IsSourceDir reports whether name carries the marker suffix.
func IsSourceDir(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), MarkerSuffix)
}

// ListSources returns the marker-suffixed directories directly under
// targetDir, sorted by name so runs produce stable output. A missing or
// unreadable target directory is fatal to the run.
func ListSources(targetDir string) ([]Source, error) {
	entries, err := os.ReadDir(targetDir)
	if err != nil {
		return nil, errors.NewTargetDirError(targetDir, err)
	}

	var sources []Source
	for _, entry := range entries {
		if !entry.IsDir() || !IsSourceDir(entry.Name()) {
			continue
		}
		sources = append(sources, Source{
			Name: entry.Name(),
			Path: filepath.Join(targetDir, entry.Name()),
		})
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i].Name < sources[j].Name })

	logger.Scan("found %d %s folder(s) in %s", len(sources), MarkerSuffix, targetDir)
	return sources, nil
}

// BuildIndex maps every video file name directly under downloadsDir to
// its absolute path. The index is built fresh each run and treated as
// read-only afterwards; a repeated run must rebuild it because the
// directory may have changed underneath.
func BuildIndex(downloadsDir string) (match.CandidateIndex, error) {
	entries, err := os.ReadDir(downloadsDir)
	if err != nil {
		return nil, errors.NewDownloadsDirError(downloadsDir, err)
	}

	index := make(match.CandidateIndex)
	for _, entry := range entries {
		if entry.IsDir() || !IsVideoFile(entry.Name()) {
			continue
		}
		path, err := filepath.Abs(filepath.Join(downloadsDir, entry.Name()))
		if err != nil {
			// A name the OS cannot resolve is skipped, not fatal.
			logger.Scan("skipping unresolvable entry %q: %v", entry.Name(), err)
			continue
		}
		index[entry.Name()] = path
	}

	logger.Scan("indexed %d video file(s) in %s", len(index), downloadsDir)
	return index, nil
}
