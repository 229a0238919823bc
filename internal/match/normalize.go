package match

import (
	"regexp"
	"strings"
)

// reExtension strips one trailing media extension, including the .gifs
// marker suffix carried by source folders. Only the final extension is
// removed; "show.s01.mp4" keeps "show.s01" for the punctuation pass.
var reExtension = regexp.MustCompile(
	`(?i)\.(mp4|avi|mkv|mov|wmv|flv|webm|m4v|3gp|mpeg|mpg|ts|mts|m2ts|vob|ogv|divx|xvid|gifs)$`)

// reBracketed drops [...] and (...) groups. These usually carry YouTube
// IDs, release years or codec tags and must not feed into similarity.
var reBracketed = regexp.MustCompile(`\[[^\]]*\]|\([^)]*\)`)

// reJunkWords removes quality markers and release descriptors as whole
// words only; "hd" inside "shadow" stays untouched.
var reJunkWords = regexp.MustCompile(
	`(?i)\b(official|trailer|teaser|hd|full|movie|video|download|1080p|720p|4k|scene|clip|part|version|extended|director|cut|subtitles|subs|x264|h264|hevc|remux|bluray|bdrip)\b`)

var (
	reNonAlnum   = regexp.MustCompile(`[^\pL\pN\s]+`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// Normalize reduces a raw file or folder name to its core string: the
// lowercase, noise-stripped token sequence used for all comparisons.
// The step order matters; punctuation replacement must run after the
// extension and bracket strips or the anchors stop matching.
// Normalize is total and idempotent, and an empty result is valid (the
// scorer guarantees empty cores never match anything).
func Normalize(name string) string {
	s := reExtension.ReplaceAllString(name, "")
	s = reBracketed.ReplaceAllString(s, " ")
	s = reJunkWords.ReplaceAllString(s, " ")
	s = reNonAlnum.ReplaceAllString(s, " ")
	s = reWhitespace.ReplaceAllString(s, " ")
	return strings.ToLower(strings.TrimSpace(s))
}
