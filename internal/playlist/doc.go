// Package playlist turns a playlist URL into an ordered list of entries with
// canonical watch URLs, using a platform.MediaResolver in flat mode.
package playlist
