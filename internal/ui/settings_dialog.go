package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/playlist-downloader/internal/config"
)

// SettingsDialog edits the preferences that survive restarts
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// backend used when none is stored in preferences
	fallbackBackend config.Backend

	languageSelect *widget.Select
	backendSelect  *widget.Select
	audioCheck     *widget.Check

	// display name → code
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog. fallback is the backend
// shown when the user never picked one, usually the config file's value.
func NewSettingsDialog(settings *config.Settings, loc *Localization, window fyne.Window, fallback config.Backend, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:        settings,
		localization:    loc,
		window:          window,
		onSaved:         onSaved,
		fallbackBackend: fallback,
		languageCodes:   make(map[string]string),
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog builds and shows the dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, loc *Localization, fallback config.Backend, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, loc, window, fallback, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	var languageNames []string
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageNames = append(languageNames, name)
	}
	sd.languageSelect = widget.NewSelect(languageNames, nil)

	var backends []string
	for _, b := range sd.settings.GetBackendOptions() {
		backends = append(backends, string(b))
	}
	sd.backendSelect = widget.NewSelect(backends, nil)

	sd.audioCheck = widget.NewCheck(sd.localization.GetText(KeyAudioDefault), nil)

	hint := widget.NewLabel(sd.localization.GetText(KeyBackendRestart))
	hint.Importance = widget.LowImportance

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyLanguage)),
		sd.languageSelect,
		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyBackend)),
		sd.backendSelect,
		hint,
		widget.NewSeparator(),
		sd.audioCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)
	sd.dialog.Resize(fyne.NewSize(420, 320))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	current := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(name)
		}
	}
	sd.backendSelect.SetSelected(string(sd.settings.GetBackend(sd.fallbackBackend)))
	sd.audioCheck.SetChecked(sd.settings.GetAudioOnly())
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
	// an untouched backend stays unset so the config file keeps control
	chosen := config.Backend(sd.backendSelect.Selected)
	if chosen != "" && chosen != sd.settings.GetBackend(sd.fallbackBackend) {
		sd.settings.SetBackend(chosen)
	}
	sd.settings.SetAudioOnly(sd.audioCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
