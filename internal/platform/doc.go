package platform

// Package platform contains OS integration and the glue to external media
// tooling: the MediaResolver contract, its yt-dlp and native backends, and
// filesystem helpers.
