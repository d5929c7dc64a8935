// Package download runs a batch of selected playlist entries through a
// platform.MediaResolver one item at a time, reporting each step to an
// Observer. Runner executes at most one batch in the background.
package download
