package platform

import (
	"errors"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewResolver(t *testing.T) {
	tests := []struct {
		name     string
		backend  string
		wantType string
		wantErr  error
	}{
		{name: "default is yt-dlp", backend: "", wantType: "ytdlp"},
		{name: "yt-dlp", backend: BackendYTDLP, wantType: "ytdlp"},
		{name: "native", backend: BackendNative, wantType: "native"},
		{name: "unknown", backend: "vlc", wantErr: ErrUnknownBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewResolver(Options{Backend: tt.backend, Logger: log.Default()})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			switch tt.wantType {
			case "ytdlp":
				if _, ok := r.(*YTDLPResolver); !ok {
					t.Errorf("expected *YTDLPResolver, got %T", r)
				}
			case "native":
				if _, ok := r.(*NativeResolver); !ok {
					t.Errorf("expected *NativeResolver, got %T", r)
				}
			}
		})
	}
}

func TestNativeResolver_ExtractFlatRejectsNonPlaylist(t *testing.T) {
	r := NewNativeResolver(log.Default())

	_, err := r.ExtractFlat(t.Context(), "https://www.youtube.com/watch?v=abc")
	if !errors.Is(err, ErrNotPlaylist) {
		t.Errorf("expected ErrNotPlaylist, got %v", err)
	}
}
