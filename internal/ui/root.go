package ui

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/hashicorp/go-hclog"

	"github.com/ytget/ytfetch/internal/config"
	"github.com/ytget/ytfetch/internal/download"
	"github.com/ytget/ytfetch/internal/model"
	"github.com/ytget/ytfetch/internal/muxer"
	"github.com/ytget/ytfetch/internal/platform"
	"github.com/ytget/ytfetch/internal/selection"
	"github.com/ytget/ytfetch/internal/session"
)

// ExecutableSetter switches the yt-dlp binary after the settings change
type ExecutableSetter interface {
	SetExecutable(path string)
}

// Options holds the collaborators of the main window
type Options struct {
	Downloads download.Downloader
	Sessions  *session.Registry
	Probe     *muxer.Probe
	Settings  *config.Settings
	Engine    ExecutableSetter
	Logger    hclog.Logger
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	downloadSvc  download.Downloader
	sessions     *session.Registry
	probe        *muxer.Probe
	engine       ExecutableSetter
	settings     *config.Settings
	localization *Localization
	logger       hclog.Logger

	// Input row
	urlLabel *widget.Label
	urlEntry *widget.Entry
	fetchBtn *widget.Button

	// Selectors
	titleLabel     *widget.Label
	formatLabel    *widget.Label
	qualityLabel   *widget.Label
	categorySelect *widget.Select
	qualitySelect  *widget.Select

	// Destination and actions
	destLabel   *widget.Label
	destEntry   *widget.Entry
	browseBtn   *widget.Button
	downloadBtn *widget.Button
	stopBtn     *widget.Button
	progressBar *widget.ProgressBar
	statusLabel *widget.Label

	// History of this run
	historyLabel *widget.Label
	historyList  *widget.List
	history      []*model.DownloadTask

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
	notificationSeq       int

	// Fetch and download state, guarded by stateMutex
	stateMutex sync.Mutex
	selector   *FormatSelector
	fetchedURL string
	sessionID  string
	cancel     context.CancelFunc
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, opts Options) *RootUI {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	localization := NewLocalization()
	localization.SetLanguage(opts.Settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		downloadSvc:  opts.Downloads,
		sessions:     opts.Sessions,
		probe:        opts.Probe,
		engine:       opts.Engine,
		settings:     opts.Settings,
		localization: localization,
		logger:       logger.Named("ui"),
	}

	app.Settings().SetTheme(NewAppearanceTheme(opts.Settings.GetAppearance()))
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.downloadSvc.SetUpdateCallback(ui.onTaskUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlLabel = widget.NewLabel(ui.localization.GetText(KeyVideoLink))
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.Validator = ui.validateURL
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onFetchClick()
	}
	ui.fetchBtn = widget.NewButton(ui.localization.GetText(KeyFetch), ui.onFetchClick)
	ui.fetchBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	left := container.NewHBox(settingsBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, settingsBtn)
	}
	urlRow := container.NewBorder(nil, nil, left, ui.fetchBtn, ui.urlEntry)

	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewBorder(nil, nil, ui.notificationSpinner, nil, ui.notificationLabel)
	ui.notificationContainer.Hide()

	ui.titleLabel = widget.NewLabel("")
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleLabel.Truncation = fyne.TextTruncateEllipsis

	ui.formatLabel = widget.NewLabel(ui.localization.GetText(KeyFormat))
	ui.qualityLabel = widget.NewLabel(ui.localization.GetText(KeyQuality))
	ui.categorySelect = widget.NewSelect(nil, func(string) { ui.onCategoryChanged() })
	ui.qualitySelect = widget.NewSelect(nil, nil)
	selectors := container.NewGridWithColumns(2,
		container.NewVBox(ui.formatLabel, ui.categorySelect),
		container.NewVBox(ui.qualityLabel, ui.qualitySelect),
	)

	ui.destLabel = widget.NewLabel(ui.localization.GetText(KeyDestination))
	ui.destEntry = widget.NewEntry()
	ui.destEntry.SetText(ui.settings.GetDownloadDirectory())
	ui.browseBtn = widget.NewButton(ui.localization.GetText(KeyBrowse), ui.onBrowseDestination)
	destRow := container.NewBorder(nil, nil, ui.destLabel, ui.browseBtn, ui.destEntry)

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.stopBtn = widget.NewButton(ui.localization.GetText(KeyStop), ui.onStopClick)
	ui.stopBtn.Importance = widget.DangerImportance
	ui.stopBtn.Disable()
	actions := container.NewBorder(nil, nil, nil, ui.stopBtn, ui.downloadBtn)

	ui.progressBar = widget.NewProgressBar()
	ui.statusLabel = widget.NewLabel(ui.localization.GetText(KeyReady))
	ui.statusLabel.Wrapping = fyne.TextWrapWord

	ui.historyLabel = widget.NewLabel(ui.localization.GetText(KeyHistory))
	ui.historyLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.historyList = widget.NewList(
		func() int { return len(ui.history) },
		ui.createHistoryItem,
		ui.updateHistoryItem,
	)

	top := container.NewVBox(
		ui.urlLabel,
		urlRow,
		ui.notificationContainer,
		ui.titleLabel,
		selectors,
		destRow,
		actions,
		ui.progressBar,
		ui.statusLabel,
		widget.NewSeparator(),
		ui.historyLabel,
	)

	ui.resetSelectors(KeyNoFormats)
	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, ui.historyList))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	languages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	for _, code := range codes {
		langItem := fyne.NewMenuItem(languages[code], func() {
			ui.onLanguageChange(code)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	appearanceMenu := fyne.NewMenu(ui.localization.GetText(KeyAppearance))
	current := ui.settings.GetAppearance()
	for _, mode := range ui.settings.GetAppearanceOptions() {
		item := fyne.NewMenuItem(ui.localization.AppearanceText(mode), func() {
			ui.onAppearanceChange(mode)
		})
		item.Checked = current == mode
		appearanceMenu.Items = append(appearanceMenu.Items, item)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
		appearanceMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// onAppearanceChange switches between system, dark and light colors
func (ui *RootUI) onAppearanceChange(mode string) {
	ui.settings.SetAppearance(mode)
	ui.app.Settings().SetTheme(NewAppearanceTheme(ui.settings.GetAppearance()))
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	loc := ui.localization
	ui.window.SetTitle(loc.GetText(KeyAppTitle))
	ui.urlLabel.SetText(loc.GetText(KeyVideoLink))
	ui.urlEntry.SetPlaceHolder(loc.GetText(KeyEnterURL))
	ui.fetchBtn.SetText(loc.GetText(KeyFetch))
	ui.formatLabel.SetText(loc.GetText(KeyFormat))
	ui.qualityLabel.SetText(loc.GetText(KeyQuality))
	ui.destLabel.SetText(loc.GetText(KeyDestination))
	ui.browseBtn.SetText(loc.GetText(KeyBrowse))
	ui.downloadBtn.SetText(loc.GetText(KeyDownload))
	ui.stopBtn.SetText(loc.GetText(KeyStop))
	ui.historyLabel.SetText(loc.GetText(KeyHistory))

	// category names are localized, rebuild the options keeping the selection
	ui.stateMutex.Lock()
	selector := ui.selector
	ui.stateMutex.Unlock()
	if !selector.Empty() {
		idx := ui.categorySelect.SelectedIndex()
		quality := ui.qualitySelect.Selected
		ui.categorySelect.Options = selector.CategoryLabels(loc)
		ui.categorySelect.SetSelectedIndex(max(idx, 0))
		if quality != "" {
			ui.qualitySelect.SetSelected(quality)
		}
	}
	ui.historyList.Refresh()
}

// validateURL validates the entered URL
func (ui *RootUI) validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty is allowed
	}

	parsedURL, err := url.Parse(strings.TrimSpace(input))
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("URL has no host")
	}

	return nil
}

// enteredURL returns the cleaned link, or an empty string after telling the
// user what is wrong with it
func (ui *RootUI) enteredURL() string {
	urlText := cleanURL(ui.urlEntry.Text)
	if urlText == "" {
		ui.setStatus(ui.localization.GetText(KeyPleaseEnterURL))
		return ""
	}
	if err := ui.validateURL(urlText); err != nil {
		ui.setStatus(ui.localization.GetText(KeyInvalidURL) + ": " + err.Error())
		return ""
	}
	return urlText
}

// onFetchClick looks up the formats of the entered link
func (ui *RootUI) onFetchClick() {
	urlText := ui.enteredURL()
	if urlText == "" {
		return
	}

	sessionID, err := ui.openSession(nil)
	if err != nil {
		ui.logger.Error("failed to open progress session", "error", err)
		dialog.ShowError(err, ui.window)
		return
	}

	ui.fetchBtn.Disable()
	ui.downloadBtn.Disable()
	ui.categorySelect.Disable()
	ui.qualitySelect.Disable()
	ui.progressBar.SetValue(0)
	ui.titleLabel.SetText("")
	ui.setStatus(ui.localization.GetText(KeyFetching))
	ui.showNotification(ui.localization.GetText(KeyFetching), true)

	ui.logger.Debug("fetching formats", "url", urlText, "session_id", sessionID)
	go func() {
		formats, err := ui.downloadSvc.GetFormats(context.Background(), urlText, sessionID)
		fyne.Do(func() {
			ui.onFormatsFetched(urlText, formats, err)
		})
	}()
}

// onFormatsFetched fills the selectors from a finished lookup
func (ui *RootUI) onFormatsFetched(urlText string, formats *download.Formats, err error) {
	ui.fetchBtn.Enable()
	ui.hideNotification()

	if err != nil {
		ui.logger.Warn("format lookup failed", "url", urlText, "error", err)
		ui.setSelector(nil, "")
		ui.resetSelectors(KeyNoFormats)
		ui.setStatus(ui.localization.GetText(KeyFetchFailed) + ": " + err.Error())
		dialog.ShowError(fmt.Errorf("%s: %w\n%s",
			ui.localization.GetText(KeyFetchFailed), err, ui.localization.GetText(KeyVerifyLink)), ui.window)
		return
	}

	selector := NewFormatSelector(formats.Qualities)
	if selector.Empty() {
		ui.setSelector(nil, "")
		ui.resetSelectors(KeyNoFormats)
		ui.setStatus(ui.localization.GetText(KeyNoFormats))
		return
	}
	ui.setSelector(selector, urlText)

	if formats.Catalog != nil {
		title := formats.Catalog.Title
		if formats.Catalog.DurationString != "" {
			title += MiddleDotSeparator + formats.Catalog.DurationString
		}
		ui.titleLabel.SetText(title)
	}

	ui.categorySelect.Options = selector.CategoryLabels(ui.localization)
	ui.categorySelect.Enable()
	ui.categorySelect.SetSelectedIndex(selector.IndexOf(ui.settings.GetDefaultCategory()))
	ui.downloadBtn.Enable()
	ui.setStatus(ui.localization.GetText(KeyFetched))
}

// onCategoryChanged refreshes the quality options, highest first
func (ui *RootUI) onCategoryChanged() {
	ui.stateMutex.Lock()
	selector := ui.selector
	ui.stateMutex.Unlock()

	cat, ok := selector.CategoryAt(ui.categorySelect.SelectedIndex())
	if !ok {
		return
	}

	labels := selector.QualityLabels(cat)
	if len(labels) == 0 {
		ui.qualitySelect.Options = []string{ui.localization.GetText(KeyNoQualities)}
		ui.qualitySelect.SetSelectedIndex(0)
		ui.qualitySelect.Disable()
		return
	}
	ui.qualitySelect.Options = labels
	ui.qualitySelect.Enable()
	ui.qualitySelect.SetSelectedIndex(0)
}

// resetSelectors disables the selectors showing the placeholder for key
func (ui *RootUI) resetSelectors(key string) {
	ui.categorySelect.Options = []string{ui.localization.GetText(key)}
	ui.categorySelect.SetSelectedIndex(0)
	ui.categorySelect.Disable()
	ui.qualitySelect.Options = []string{ui.localization.GetText(KeyNoQualities)}
	ui.qualitySelect.SetSelectedIndex(0)
	ui.qualitySelect.Disable()
	ui.downloadBtn.Disable()
}

func (ui *RootUI) setSelector(selector *FormatSelector, urlText string) {
	ui.stateMutex.Lock()
	defer ui.stateMutex.Unlock()
	ui.selector = selector
	ui.fetchedURL = urlText
}

// currentChoice reads the selectors
func (ui *RootUI) currentChoice() (string, model.SelectionChoice, error) {
	ui.stateMutex.Lock()
	selector := ui.selector
	fetched := ui.fetchedURL
	ui.stateMutex.Unlock()

	if selector.Empty() || ui.qualitySelect.Disabled() {
		return "", model.SelectionChoice{}, errors.New(ui.localization.GetText(KeySelectFirst))
	}
	cat, ok := selector.CategoryAt(ui.categorySelect.SelectedIndex())
	if !ok || ui.qualitySelect.Selected == "" {
		return "", model.SelectionChoice{}, errors.New(ui.localization.GetText(KeySelectFirst))
	}
	choice, err := selector.Choice(cat, ui.qualitySelect.Selected)
	if err != nil {
		return "", model.SelectionChoice{}, err
	}
	return fetched, choice, nil
}

// onDownloadClick starts a transfer with the selected format and quality
func (ui *RootUI) onDownloadClick() {
	urlText, choice, err := ui.currentChoice()
	if err != nil {
		ui.setStatus(err.Error())
		return
	}
	// the selectors describe the fetched link, a newly typed one needs a fetch
	if typed := cleanURL(ui.urlEntry.Text); typed != "" && typed != urlText {
		ui.setStatus(ui.localization.GetText(KeySelectFirst))
		return
	}

	dest := strings.TrimSpace(ui.destEntry.Text)
	if dest == "" {
		dest = ui.settings.GetDownloadDirectory()
		ui.destEntry.SetText(dest)
	}
	if err := platform.CreateDirectoryIfNotExists(dest); err != nil {
		ui.logger.Error("failed to create destination", "dir", dest, "error", err)
		dialog.ShowError(err, ui.window)
		return
	}

	ui.stateMutex.Lock()
	qm := ui.selector.QualityMap()
	ui.stateMutex.Unlock()
	sessionID, err := ui.openSession(qm)
	if err != nil {
		dialog.ShowError(err, ui.window)
		return
	}

	if selection.NeedsMuxer(choice.Category) && ui.probe != nil {
		go func() {
			if !ui.probe.Available(context.Background()) {
				ui.showNotification(ui.localization.GetText(KeyMuxerMissing), false)
			}
		}()
	}

	ctx, cancel := context.WithCancel(context.Background())
	ui.stateMutex.Lock()
	ui.cancel = cancel
	ui.stateMutex.Unlock()

	ui.setDownloading(true)
	ui.progressBar.SetValue(0)
	ui.setStatus(ui.localization.GetText(KeyStarting))

	ui.logger.Info("download requested", "url", urlText, "choice", choice.String(), "dest", dest)
	go func() {
		task, err := ui.downloadSvc.StartDownload(ctx, urlText, choice, dest, sessionID)
		cancel()
		fyne.Do(func() {
			ui.onDownloadDone(task, err)
		})
	}()
}

// onStopClick cancels the running transfer
func (ui *RootUI) onStopClick() {
	ui.stateMutex.Lock()
	cancel := ui.cancel
	ui.stateMutex.Unlock()
	if cancel == nil {
		return
	}
	ui.stopBtn.Disable()
	ui.setStatus(ui.localization.GetText(KeyStoppingDownload))
	cancel()
}

// onDownloadDone restores the controls after StartDownload returned
func (ui *RootUI) onDownloadDone(task *model.DownloadTask, err error) {
	ui.stateMutex.Lock()
	ui.cancel = nil
	ui.stateMutex.Unlock()
	ui.setDownloading(false)

	if err != nil {
		if task != nil && task.Status == model.TaskStatusStopped {
			ui.progressBar.SetValue(0)
			ui.setStatus(ui.localization.GetText(KeyDownloadStopped))
			return
		}
		ui.logger.Warn("download failed", "error", err)
		ui.setStatus(ui.localization.GetText(KeyDownloadFailed) + ": " + err.Error())
		dialog.ShowError(err, ui.window)
		return
	}

	ui.progressBar.SetValue(1)
	ui.setStatus(ui.localization.Textf(KeySavedTo, task.OutputPath))
	ui.sendCompletionNotification(task)

	if ui.settings.GetAutoRevealOnComplete() && task.OutputPath != "" {
		ui.onRevealFile(task.OutputPath)
	}
}

// onProgress renders one event of the running transfer
func (ui *RootUI) onProgress(ev model.ProgressEvent) {
	switch ev.Kind {
	case model.EventDownloading:
		ui.progressBar.SetValue(ev.Fraction)
	case model.EventFinished:
		ui.progressBar.SetValue(1)
	}
	ui.setStatus(ProgressText(ui.localization, ev))
}

// openSession makes sure a progress session is live for this window.
// A finished transfer closes the previous one, so a new one is opened on
// demand and seeded with qm.
func (ui *RootUI) openSession(qm model.QualityMap) (string, error) {
	ui.stateMutex.Lock()
	defer ui.stateMutex.Unlock()

	if ui.sessionID != "" {
		if ch, ok := ui.sessions.Lookup(ui.sessionID); ok {
			if qm != nil {
				ch.SetQualityMap(qm)
			}
			return ch.ID(), nil
		}
	}

	ch, err := ui.sessions.Register("", newProgressSender(ui.onProgress))
	if err != nil {
		return "", err
	}
	if qm != nil {
		ch.SetQualityMap(qm)
	}
	ui.sessionID = ch.ID()
	return ui.sessionID, nil
}

func (ui *RootUI) setDownloading(active bool) {
	if active {
		ui.fetchBtn.Disable()
		ui.downloadBtn.Disable()
		ui.browseBtn.Disable()
		ui.stopBtn.Enable()
		return
	}
	ui.fetchBtn.Enable()
	ui.downloadBtn.Enable()
	ui.browseBtn.Enable()
	ui.stopBtn.Disable()
}

func (ui *RootUI) setStatus(text string) {
	ui.statusLabel.SetText(text)
}

// onBrowseDestination picks the folder downloads are saved to
func (ui *RootUI) onBrowseDestination() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.destEntry.SetText(uri.Path())
	}, ui.window)
}

// showNotification displays a message in the notification panel under the URL input.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationSeq++
		seq := ui.notificationSeq
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
			// plain messages go away unless replaced first
			time.AfterFunc(NotificationAutoHide, func() {
				fyne.Do(func() { ui.expireNotification(seq) })
			})
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// expireNotification hides the panel if seq is still the message shown
func (ui *RootUI) expireNotification(seq int) {
	if ui.notificationSeq != seq {
		return
	}
	ui.notificationSpinner.Hide()
	ui.notificationContainer.Hide()
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.applySettings)
}

// applySettings pushes saved settings to the running services
func (ui *RootUI) applySettings() {
	ui.downloadSvc.SetMaxParallelDownloads(ui.settings.GetMaxParallelDownloads())
	ui.downloadSvc.SetOutputTemplate(ui.settings.GetFilenameTemplate())
	if ui.engine != nil {
		ui.engine.SetExecutable(ui.settings.GetYtdlpPath())
	}
	ui.destEntry.SetText(ui.settings.GetDownloadDirectory())
	ui.app.Settings().SetTheme(NewAppearanceTheme(ui.settings.GetAppearance()))
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
	ui.showNotification(ui.localization.GetText(KeySettingsSaved), false)
}

// createHistoryItem builds one row of the downloads list
func (ui *RootUI) createHistoryItem() fyne.CanvasObject {
	label := widget.NewLabel("")
	label.Truncation = fyne.TextTruncateEllipsis
	reveal := widget.NewButton(IconFolder, nil)
	reveal.Importance = widget.LowImportance
	open := widget.NewButton(IconFile, nil)
	open.Importance = widget.LowImportance
	return container.NewBorder(nil, nil, nil, container.NewHBox(reveal, open), label)
}

// updateHistoryItem binds a task to a row built by createHistoryItem
func (ui *RootUI) updateHistoryItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id < 0 || id >= len(ui.history) {
		return
	}
	task := ui.history[id]

	row := item.(*fyne.Container)
	label := row.Objects[0].(*widget.Label)
	buttons := row.Objects[1].(*fyne.Container)
	reveal := buttons.Objects[0].(*widget.Button)
	open := buttons.Objects[1].(*widget.Button)

	label.SetText(historyText(task))

	path := task.OutputPath
	reveal.OnTapped = func() { ui.onRevealFile(path) }
	open.OnTapped = func() { ui.onOpenFile(path) }
	if task.Status == model.TaskStatusCompleted && path != "" {
		reveal.Enable()
		open.Enable()
	} else {
		reveal.Disable()
		open.Disable()
	}
}

// historyText summarizes a task for the downloads list
func historyText(task *model.DownloadTask) string {
	parts := []string{task.GetDisplayTitle(), task.Choice.String(), task.Status.String()}
	if task.Status.IsActive() {
		parts = append(parts, fmt.Sprintf("%d%%", task.Percent))
	}
	if task.Status == model.TaskStatusError && task.LastError != "" {
		parts = append(parts, task.LastError)
	}
	return strings.Join(parts, MiddleDotSeparator)
}

// onTaskUpdate handles task updates from the download service
func (ui *RootUI) onTaskUpdate(task *model.DownloadTask) {
	ui.logger.Trace("task update", "task_id", task.ID, "status", task.Status, "percent", task.Percent)

	fyne.Do(func() {
		ui.history = newestFirst(ui.downloadSvc.GetAllTasks())
		ui.historyList.Refresh()
	})
}

// newestFirst reverses the service order, which is oldest first
func newestFirst(tasks []*model.DownloadTask) []*model.DownloadTask {
	slices.Reverse(tasks)
	return tasks
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if filePath == "" {
		return
	}

	if err := platform.OpenFileInManager(filePath); err != nil {
		ui.logger.Warn("failed to reveal file", "path", filePath, "error", err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onOpenFile handles opening a downloaded file with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	if filePath == "" {
		return
	}

	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		ui.logger.Warn("failed to open file", "path", filePath, "error", err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// sendCompletionNotification sends a system notification for completed downloads
func (ui *RootUI) sendCompletionNotification(task *model.DownloadTask) {
	if task == nil || task.Status != model.TaskStatusCompleted {
		return
	}
	ui.app.SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyDownloadCompleted),
		Content: task.GetDisplayTitle(),
	})
}

// cleanURL strips characters pasted along with a link
func cleanURL(raw string) string {
	cleaned := strings.NewReplacer("\n", "", "\r", "", "\t", " ").Replace(raw)
	return strings.TrimSpace(cleaned)
}
