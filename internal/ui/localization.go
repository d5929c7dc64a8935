package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyPlaylistURL     = "playlist_url"
	KeyEnterURL        = "enter_url"
	KeyFetch           = "fetch"
	KeySelectFolder    = "select_folder"
	KeyOpenFolder      = "open_folder"
	KeyAudioOnly       = "audio_only"
	KeyDownload        = "download"
	KeyStop            = "stop"
	KeySelectAll       = "select_all"
	KeySelectNone      = "select_none"
	KeyPlaylistVideos  = "playlist_videos"
	KeySettings        = "settings"
	KeyFile            = "file"
	KeyLanguage        = "language"
	KeyBackend         = "backend"
	KeyBackendRestart  = "backend_restart"
	KeyAudioDefault    = "audio_default"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeySettingsSaved   = "settings_saved"
	KeyFetching        = "fetching"
	KeyNoSelection     = "no_selection"
	KeyBusy            = "busy"
	KeyStopping        = "stopping"
	KeyBatchFinished   = "batch_finished"
	KeyErrorOpenFolder = "error_open_folder"
	KeyErrorFolder     = "error_folder"
	KeyClearLog        = "clear_log"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "YouTube Playlist Downloader",
		KeyPlaylistURL:     "Playlist URL:",
		KeyEnterURL:        "https://www.youtube.com/playlist?list=...",
		KeyFetch:           "Fetch Playlist",
		KeySelectFolder:    "Select Output Folder",
		KeyOpenFolder:      "Open Folder",
		KeyAudioOnly:       "Download Audio Only",
		KeyDownload:        "Download Selected",
		KeyStop:            "Stop",
		KeySelectAll:       "Select all",
		KeySelectNone:      "Select none",
		KeyPlaylistVideos:  "Playlist Videos",
		KeySettings:        "Settings",
		KeyFile:            "File",
		KeyLanguage:        "Language",
		KeyBackend:         "Media backend",
		KeyBackendRestart:  "Backend changes apply after restart",
		KeyAudioDefault:    "Audio only by default",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyFetching:        "Fetching playlist...",
		KeyNoSelection:     "Nothing selected to download",
		KeyBusy:            "A download is already in progress",
		KeyStopping:        "Stopping download...",
		KeyBatchFinished:   "Finished: %d completed, %d failed, %d cancelled",
		KeyErrorOpenFolder: "Error opening folder",
		KeyErrorFolder:     "Cannot use output folder",
		KeyClearLog:        "Clear log",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Загрузчик плейлистов YouTube",
		KeyPlaylistURL:     "URL плейлиста:",
		KeyFetch:           "Получить плейлист",
		KeySelectFolder:    "Выбрать папку",
		KeyOpenFolder:      "Открыть папку",
		KeyAudioOnly:       "Только аудио",
		KeyDownload:        "Скачать выбранное",
		KeyStop:            "Стоп",
		KeySelectAll:       "Выбрать все",
		KeySelectNone:      "Снять все",
		KeyPlaylistVideos:  "Видео плейлиста",
		KeySettings:        "Настройки",
		KeyFile:            "Файл",
		KeyLanguage:        "Язык",
		KeyBackend:         "Движок загрузки",
		KeyBackendRestart:  "Смена движка вступит в силу после перезапуска",
		KeyAudioDefault:    "Только аудио по умолчанию",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeySettingsSaved:   "Настройки успешно сохранены!",
		KeyFetching:        "Получение плейлиста...",
		KeyNoSelection:     "Ничего не выбрано",
		KeyBusy:            "Загрузка уже выполняется",
		KeyStopping:        "Остановка загрузки...",
		KeyBatchFinished:   "Готово: %d успешно, %d с ошибкой, %d отменено",
		KeyErrorOpenFolder: "Ошибка открытия папки",
		KeyErrorFolder:     "Невозможно использовать папку",
		KeyClearLog:        "Очистить журнал",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "Baixador de Playlists do YouTube",
		KeyPlaylistURL:     "URL da playlist:",
		KeyFetch:           "Buscar Playlist",
		KeySelectFolder:    "Selecionar Pasta",
		KeyOpenFolder:      "Abrir Pasta",
		KeyAudioOnly:       "Baixar Somente Áudio",
		KeyDownload:        "Baixar Selecionados",
		KeyStop:            "Parar",
		KeySelectAll:       "Selecionar todos",
		KeySelectNone:      "Limpar seleção",
		KeyPlaylistVideos:  "Vídeos da Playlist",
		KeySettings:        "Configurações",
		KeyFile:            "Arquivo",
		KeyLanguage:        "Idioma",
		KeyBackend:         "Mecanismo de download",
		KeyBackendRestart:  "A troca de mecanismo vale após reiniciar",
		KeyAudioDefault:    "Somente áudio por padrão",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeySettingsSaved:   "Configurações salvas com sucesso!",
		KeyFetching:        "Buscando playlist...",
		KeyNoSelection:     "Nada selecionado para baixar",
		KeyBusy:            "Já existe um download em andamento",
		KeyStopping:        "Parando download...",
		KeyBatchFinished:   "Concluído: %d baixados, %d com falha, %d cancelados",
		KeyErrorOpenFolder: "Erro ao abrir pasta",
		KeyErrorFolder:     "Não é possível usar a pasta",
		KeyClearLog:        "Limpar registro",
	}
}
