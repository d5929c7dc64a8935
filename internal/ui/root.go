package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/ytget/playlist-downloader/internal/config"
	"github.com/ytget/playlist-downloader/internal/download"
	"github.com/ytget/playlist-downloader/internal/logging"
	"github.com/ytget/playlist-downloader/internal/platform"
	"github.com/ytget/playlist-downloader/internal/progress"
	"github.com/ytget/playlist-downloader/internal/session"
)

// RootUI represents the main window
type RootUI struct {
	ctx          context.Context
	window       fyne.Window
	session      *session.Session
	settings     *config.Settings
	localization *Localization
	logger       *log.Logger
	reporter     *progress.Reporter

	defaultBackend config.Backend

	urlLabel      *widget.Label
	urlEntry      *widget.Entry
	fetchBtn      *widget.Button
	folderBtn     *widget.Button
	folderLabel   *widget.Label
	openFolderBtn *widget.Button
	audioCheck    *widget.Check
	downloadBtn   *widget.Button
	stopBtn       *widget.Button
	selectAllBtn  *widget.Button
	selectNoneBtn *widget.Button
	countLabel    *widget.Label
	videosCard    *widget.Card

	checklist *Checklist
	logPanel  *LogPanel
}

// NewRootUI builds the window content around sess. Fetches and batches started
// from the window are bound to ctx.
func NewRootUI(ctx context.Context, window fyne.Window, app fyne.App, sess *session.Session, logger *log.Logger) *RootUI {
	if logger == nil {
		logger = logging.Discard()
	}

	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		ctx:            ctx,
		window:         window,
		session:        sess,
		settings:       settings,
		localization:   localization,
		logger:         logging.Component(logger, "ui"),
		defaultBackend: config.BackendYTDLP,
	}

	ui.logPanel = NewLogPanel(LogMaxLines)
	ui.reporter = progress.NewReporter(ui.logPanel, fyne.Do)

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.Resize(WindowSize)

	ui.setupUI()
	return ui
}

func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlLabel = widget.NewLabel(ui.localization.GetText(KeyPlaylistURL))
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.OnSubmitted = func(string) { ui.onFetchClick() }

	ui.fetchBtn = widget.NewButton(ui.localization.GetText(KeyFetch), ui.onFetchClick)
	ui.fetchBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	urlRow := container.NewBorder(nil, nil, ui.urlLabel, container.NewHBox(ui.fetchBtn, settingsBtn), ui.urlEntry)

	ui.folderBtn = widget.NewButton(ui.localization.GetText(KeySelectFolder), ui.onSelectFolder)
	ui.folderLabel = widget.NewLabel(ui.session.OutputFolder())
	ui.folderLabel.Truncation = fyne.TextTruncateEllipsis
	ui.openFolderBtn = widget.NewButton(IconFolder, ui.onOpenFolder)
	ui.openFolderBtn.Importance = widget.LowImportance
	folderRow := container.NewBorder(nil, nil, ui.folderBtn, ui.openFolderBtn, ui.folderLabel)

	ui.audioCheck = widget.NewCheck(ui.localization.GetText(KeyAudioOnly), func(checked bool) {
		ui.session.SetAudioOnly(checked)
	})
	ui.audioCheck.SetChecked(ui.session.AudioOnly())

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.stopBtn = widget.NewButton(ui.localization.GetText(KeyStop), ui.onStopClick)
	ui.stopBtn.Disable()
	actionRow := container.NewHBox(ui.audioCheck, widget.NewSeparator(), ui.downloadBtn, ui.stopBtn)

	ui.selectAllBtn = widget.NewButton(ui.localization.GetText(KeySelectAll), func() { ui.onSelectAll(true) })
	ui.selectNoneBtn = widget.NewButton(ui.localization.GetText(KeySelectNone), func() { ui.onSelectAll(false) })
	ui.countLabel = widget.NewLabel("")
	selectRow := container.NewHBox(ui.selectAllBtn, ui.selectNoneBtn, ui.countLabel)

	ui.checklist = NewChecklist(ui.onItemToggled)
	ui.videosCard = widget.NewCard("", ui.localization.GetText(KeyPlaylistVideos),
		container.NewBorder(selectRow, nil, nil, nil, ui.checklist.Widget()))

	top := container.NewVBox(urlRow, folderRow, actionRow)
	content := container.NewBorder(top, ui.logPanel.Object(), nil, nil, ui.videosCard)

	ui.window.SetContent(content)
	ui.updateSelectionCount()
}

func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	clearLogItem := fyne.NewMenuItem(ui.localization.GetText(KeyClearLog), ui.onClearLog)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		item := fyne.NewMenuItem(name, func() { ui.onLanguageChange(langCode) })
		item.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, item)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, clearLogItem),
		languageMenu,
	))
}

func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

func (ui *RootUI) refreshUITexts() {
	t := ui.localization.GetText
	ui.window.SetTitle(t(KeyAppTitle))
	ui.urlLabel.SetText(t(KeyPlaylistURL))
	ui.urlEntry.SetPlaceHolder(t(KeyEnterURL))
	ui.fetchBtn.SetText(t(KeyFetch))
	ui.folderBtn.SetText(t(KeySelectFolder))
	ui.audioCheck.SetText(t(KeyAudioOnly))
	ui.downloadBtn.SetText(t(KeyDownload))
	ui.stopBtn.SetText(t(KeyStop))
	ui.selectAllBtn.SetText(t(KeySelectAll))
	ui.selectNoneBtn.SetText(t(KeySelectNone))
	ui.videosCard.SetSubTitle(t(KeyPlaylistVideos))
}

func (ui *RootUI) onFetchClick() {
	ui.startFetch(ui.urlEntry.Text)
}

// startFetch resolves rawURL off the UI thread. The checklist is cleared
// immediately and refilled when the fetch returns; the returned channel is
// closed once the widgets are updated.
func (ui *RootUI) startFetch(rawURL string) <-chan struct{} {
	done := make(chan struct{})
	rawURL = strings.TrimSpace(rawURL)

	if ui.session.Busy() {
		ui.logNow(ui.localization.GetText(KeyBusy))
		close(done)
		return done
	}

	ui.fetchBtn.Disable()
	ui.downloadBtn.Disable()
	ui.checklist.SetItems(nil)
	ui.updateSelectionCount()
	ui.logNow(ui.localization.GetText(KeyFetching))

	go func() {
		defer close(done)

		p, err := ui.session.Fetch(ui.ctx, rawURL)
		switch {
		case errors.Is(err, session.ErrBusy):
			ui.reporter.Log(ui.localization.GetText(KeyBusy))
		case err != nil:
			ui.logger.Warn("fetch failed", "url", rawURL, "err", err)
			ui.reporter.FetchFailed(err)
		default:
			ui.reporter.Fetched(p.DisplayTitle())
		}

		items := ui.session.Items()
		fyne.DoAndWait(func() {
			ui.checklist.SetItems(items)
			ui.updateSelectionCount()
			ui.fetchBtn.Enable()
			ui.downloadBtn.Enable()
		})
	}()
	return done
}

func (ui *RootUI) onItemToggled(index int, selected bool) {
	if err := ui.session.SetSelected(index, selected); err != nil {
		ui.logger.Warn("toggle ignored", "index", index, "err", err)
	}
	ui.updateSelectionCount()
}

func (ui *RootUI) onSelectAll(selected bool) {
	ui.session.SetAll(selected)
	ui.checklist.SetItems(ui.session.Items())
	ui.updateSelectionCount()
}

func (ui *RootUI) updateSelectionCount() {
	ui.countLabel.SetText(fmt.Sprintf(SelectionCountFormat, ui.session.SelectedCount(), len(ui.checklist.Items())))
}

func (ui *RootUI) onSelectFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorFolder), err), ui.window)
			return
		}
		if uri == nil {
			return
		}
		ui.setOutputFolder(uri.Path())
	}, ui.window)
}

func (ui *RootUI) setOutputFolder(dir string) {
	ui.session.SetOutputFolder(dir)
	ui.folderLabel.SetText(ui.session.OutputFolder())
}

func (ui *RootUI) onOpenFolder() {
	if err := platform.OpenFolder(ui.session.OutputFolder()); err != nil {
		ui.logger.Warn("open folder failed", "folder", ui.session.OutputFolder(), "err", err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpenFolder), err), ui.window)
	}
}

func (ui *RootUI) onDownloadClick() {
	if ui.session.Busy() {
		ui.logNow(ui.localization.GetText(KeyBusy))
		return
	}

	ui.setRunning(true)
	err := ui.session.StartDownload(ui.ctx, ui.reporter, ui.onBatchFinished)
	if err == nil {
		return
	}

	ui.setRunning(false)
	switch {
	case errors.Is(err, session.ErrNoSelection):
		ui.logNow(ui.localization.GetText(KeyNoSelection))
	case errors.Is(err, session.ErrBusy):
		ui.logNow(ui.localization.GetText(KeyBusy))
	default:
		ui.logger.Error("download not started", "err", err)
		ui.logNow(err.Error())
	}
}

// onBatchFinished runs on the batch goroutine
func (ui *RootUI) onBatchFinished(sum download.Summary) {
	ui.reporter.Logf(ui.localization.GetText(KeyBatchFinished), sum.Completed, sum.Failed, sum.Cancelled)
	fyne.DoAndWait(func() { ui.setRunning(false) })
}

func (ui *RootUI) onStopClick() {
	ui.logNow(ui.localization.GetText(KeyStopping))
	ui.stopBtn.Disable()
	ui.session.CancelDownload()
}

func (ui *RootUI) setRunning(running bool) {
	if running {
		ui.downloadBtn.Disable()
		ui.fetchBtn.Disable()
		ui.stopBtn.Enable()
		return
	}
	ui.downloadBtn.Enable()
	ui.fetchBtn.Enable()
	ui.stopBtn.Disable()
}

// SetDefaultBackend sets the backend the settings dialog shows when none is
// stored in preferences
func (ui *RootUI) SetDefaultBackend(b config.Backend) {
	ui.defaultBackend = b
}

func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.defaultBackend, func() {
		ui.onLanguageChange(ui.settings.GetLanguage())
		dialog.ShowInformation(ui.localization.GetText(KeySettings), ui.localization.GetText(KeySettingsSaved), ui.window)
	})
}

func (ui *RootUI) onClearLog() {
	ui.logPanel.Clear()
}

// logNow appends from the UI thread; batch and fetch goroutines go through
// ui.reporter instead
func (ui *RootUI) logNow(line string) {
	ui.logPanel.Append(line)
}

// LogLines returns the log panel transcript
func (ui *RootUI) LogLines() []string {
	return ui.logPanel.Lines()
}

// QuitOnCancel calls quit on the UI thread once ctx is done, unless release
// was called first.
func QuitOnCancel(ctx context.Context, quit func()) (release func()) {
	released := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			select {
			case <-released:
				return
			default:
			}
			fyne.Do(quit)
		case <-released:
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(released) }) }
}
