// Package ui contains the Fyne desktop shell: URL entry, folder picker,
// audio-only toggle, the playlist checklist and the log panel. It drives a
// session.Session and never touches widgets from the batch goroutine; every
// update from there is posted with fyne.Do.
package ui
