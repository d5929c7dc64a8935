package platform

import (
	"strings"
)

// URL parameters and separators
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// Playlist title heuristics
const (
	DefaultPlaylistName = "Unknown Playlist"
	MinPrefixLength     = 10
	PlaylistSuffix      = " Playlist"
)

// IsPlaylistURL checks if the URL carries a playlist parameter
func IsPlaylistURL(url string) bool {
	return strings.Contains(url, PlaylistParam)
}

// ExtractPlaylistID extracts the playlist ID from various URL formats:
//   - https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID&index=1
//   - https://www.youtube.com/playlist?list=PLAYLIST_ID
func ExtractPlaylistID(url string) string {
	if !IsPlaylistURL(url) {
		return ""
	}
	parts := strings.Split(url, PlaylistParam)
	if len(parts) < 2 {
		return ""
	}
	id := parts[1]
	if strings.Contains(id, ParamSeparator) {
		id = strings.Split(id, ParamSeparator)[0]
	}
	return id
}

// PlaylistTitleFromEntries guesses a playlist title for backends that only
// list items. Two titles sharing a long prefix usually name the album or
// series.
func PlaylistTitleFromEntries(titles []string) string {
	if len(titles) == 0 {
		return DefaultPlaylistName
	}
	if len(titles) > 1 {
		prefix := findCommonPrefix(titles[0], titles[1])
		if len(prefix) > MinPrefixLength {
			return strings.TrimSpace(prefix) + PlaylistSuffix
		}
	}
	return titles[0] + PlaylistSuffix
}

// findCommonPrefix finds the common prefix between two strings
func findCommonPrefix(s1, s2 string) string {
	minLen := min(len(s1), len(s2))
	for i := 0; i < minLen; i++ {
		if s1[i] != s2[i] {
			return s1[:i]
		}
	}
	return s1[:minLen]
}
