package model

import (
	"fmt"
	"strings"
)

// FormatMode selects between audio-only and best available quality
type FormatMode string

const (
	FormatBest  FormatMode = "best"
	FormatAudio FormatMode = "audio"
)

// Format preference strings understood by yt-dlp
const (
	FormatStringBest  = "best"
	FormatStringAudio = "bestaudio/best"
)

// File extensions used when the backend needs an explicit output name
const (
	ExtensionVideo = "mp4"
	ExtensionAudio = "m4a"
)

// ModeFor maps the audio-only toggle to a format mode
func ModeFor(audioOnly bool) FormatMode {
	if audioOnly {
		return FormatAudio
	}
	return FormatBest
}

// ParseFormatMode parses a user supplied mode name
func ParseFormatMode(s string) (FormatMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FormatBest), "video":
		return FormatBest, nil
	case string(FormatAudio):
		return FormatAudio, nil
	default:
		return "", fmt.Errorf("unknown format mode: %q", s)
	}
}

// FormatString returns the format preference passed to the downloader
func (m FormatMode) FormatString() string {
	if m == FormatAudio {
		return FormatStringAudio
	}
	return FormatStringBest
}

// Extension returns the container extension for backends that cannot expand
// an %(ext)s template themselves
func (m FormatMode) Extension() string {
	if m == FormatAudio {
		return ExtensionAudio
	}
	return ExtensionVideo
}

// AudioOnly reports whether the mode requests audio only
func (m FormatMode) AudioOnly() bool {
	return m == FormatAudio
}
