// Package progress turns batch and fetch events into the one-line messages
// shown in the log panel and on the terminal.
package progress
