package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage  = "app_language"
	KeyAudioOnly = "audio_only"
	KeyBackend   = "media_backend"
)

// Default values
const (
	DefaultLanguage  = "system"
	DefaultAudioOnly = false
)

// Settings stores GUI preferences that survive restarts. The output folder is
// deliberately not persisted: every run starts in the working directory.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAudioOnly returns the initial state of the audio-only toggle
func (s *Settings) GetAudioOnly() bool {
	return s.app.Preferences().BoolWithFallback(KeyAudioOnly, DefaultAudioOnly)
}

// SetAudioOnly stores the audio-only toggle
func (s *Settings) SetAudioOnly(audioOnly bool) {
	s.app.Preferences().SetBool(KeyAudioOnly, audioOnly)
}

// GetBackend returns the backend chosen in the settings dialog, or fallback
// when none was chosen
func (s *Settings) GetBackend(fallback Backend) Backend {
	v := s.app.Preferences().String(KeyBackend)
	switch Backend(v) {
	case BackendYTDLP, BackendNative:
		return Backend(v)
	default:
		return fallback
	}
}

// SetBackend stores the backend; it takes effect on the next start
func (s *Settings) SetBackend(b Backend) {
	s.app.Preferences().SetString(KeyBackend, string(b))
}

// GetBackendOptions returns available backends
func (s *Settings) GetBackendOptions() []Backend {
	return []Backend{BackendYTDLP, BackendNative}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
