package model

// Package model defines the domain data passed between the resolver adapter,
// the selection state and the download driver: playlist entries, selectable
// items, format modes and per-item download outcomes.
