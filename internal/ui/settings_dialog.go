package ui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/samber/lo"

	"github.com/ytget/ytfetch/internal/config"
	"github.com/ytget/ytfetch/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	downloadDirEntry *widget.Entry
	maxParallelEntry *widget.Entry
	categorySelect   *widget.Select
	filenameEntry    *widget.Entry
	ytdlpEntry       *widget.Entry
	languageSelect   *widget.Select
	appearanceSelect *widget.Select
	autoRevealCheck  *widget.Check
}

// ShowSettingsDialog opens the settings dialog, onSaved runs after a save
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	loc := sd.localization

	sd.downloadDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(loc.GetText(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	sd.maxParallelEntry = widget.NewEntry()
	sd.maxParallelEntry.SetPlaceHolder(strconv.Itoa(config.MinParallel) + "-" + strconv.Itoa(config.MaxParallel))
	sd.maxParallelEntry.Validator = validateParallel

	sd.categorySelect = widget.NewSelect(sd.categoryLabels(), nil)

	sd.filenameEntry = widget.NewEntry()
	sd.filenameEntry.SetPlaceHolder(config.DefaultFilenameTemplate)

	sd.ytdlpEntry = widget.NewEntry()
	sd.ytdlpEntry.SetPlaceHolder("yt-dlp")

	sd.languageSelect = widget.NewSelect(sd.languageLabels(), nil)
	sd.appearanceSelect = widget.NewSelect(lo.Map(sd.settings.GetAppearanceOptions(), func(mode string, _ int) string {
		return loc.AppearanceText(mode)
	}), nil)

	sd.autoRevealCheck = widget.NewCheck(loc.GetText(KeyAutoReveal), nil)

	form := container.NewVBox(
		widget.NewLabel(loc.GetText(KeyDownloadDirectory)),
		downloadDirRow,

		widget.NewLabel(loc.GetText(KeyMaxParallel)),
		sd.maxParallelEntry,

		widget.NewLabel(loc.GetText(KeyDefaultCategory)),
		sd.categorySelect,

		widget.NewLabel(loc.GetText(KeyFilenameTemplate)),
		sd.filenameEntry,

		widget.NewLabel(loc.GetText(KeyYtdlpPath)),
		sd.ytdlpEntry,

		sd.autoRevealCheck,
		widget.NewSeparator(),

		widget.NewLabel(loc.GetText(KeyLanguage)),
		sd.languageSelect,

		widget.NewLabel(loc.GetText(KeyAppearance)),
		sd.appearanceSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		loc.GetText(KeySettings),
		loc.GetText(KeySave),
		loc.GetText(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 520))
}

func (sd *SettingsDialog) categoryLabels() []string {
	return lo.Map(sd.settings.GetCategoryOptions(), func(cat model.Category, _ int) string {
		return sd.localization.CategoryText(cat)
	})
}

// languageCodes returns language codes in a stable order, system first
func (sd *SettingsDialog) languageCodes() []string {
	options := sd.settings.GetLanguageOptions()
	codes := lo.Without(lo.Keys(options), config.DefaultLanguage)
	slices.Sort(codes)
	return append([]string{config.DefaultLanguage}, codes...)
}

func (sd *SettingsDialog) languageLabels() []string {
	options := sd.settings.GetLanguageOptions()
	return lo.Map(sd.languageCodes(), func(code string, _ int) string { return options[code] })
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.maxParallelEntry.SetText(strconv.Itoa(sd.settings.GetMaxParallelDownloads()))

	_, catIdx, _ := lo.FindIndexOf(sd.settings.GetCategoryOptions(), func(cat model.Category) bool {
		return cat == sd.settings.GetDefaultCategory()
	})
	sd.categorySelect.SetSelectedIndex(max(catIdx, 0))

	sd.filenameEntry.SetText(sd.settings.GetFilenameTemplate())
	sd.ytdlpEntry.SetText(sd.settings.GetYtdlpPath())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())

	sd.languageSelect.SetSelectedIndex(max(lo.IndexOf(sd.languageCodes(), sd.settings.GetLanguage()), 0))
	sd.appearanceSelect.SetSelectedIndex(max(lo.IndexOf(sd.settings.GetAppearanceOptions(), sd.settings.GetAppearance()), 0))
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// save writes the form values to settings
func (sd *SettingsDialog) save() {
	if downloadDir := strings.TrimSpace(sd.downloadDirEntry.Text); downloadDir != "" {
		sd.settings.SetDownloadDirectory(downloadDir)
	}

	if maxParallel, err := strconv.Atoi(strings.TrimSpace(sd.maxParallelEntry.Text)); err == nil {
		sd.settings.SetMaxParallelDownloads(maxParallel)
	}

	if idx := sd.categorySelect.SelectedIndex(); idx >= 0 {
		sd.settings.SetDefaultCategory(sd.settings.GetCategoryOptions()[idx])
	}

	sd.settings.SetFilenameTemplate(strings.TrimSpace(sd.filenameEntry.Text))
	sd.settings.SetYtdlpPath(strings.TrimSpace(sd.ytdlpEntry.Text))
	sd.settings.SetAutoRevealOnComplete(sd.autoRevealCheck.Checked)

	if idx := sd.languageSelect.SelectedIndex(); idx >= 0 {
		sd.settings.SetLanguage(sd.languageCodes()[idx])
	}
	if idx := sd.appearanceSelect.SelectedIndex(); idx >= 0 {
		sd.settings.SetAppearance(sd.settings.GetAppearanceOptions()[idx])
	}
}

// validateParallel accepts an empty value or a number in the allowed range
func validateParallel(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return err
	}
	if n < config.MinParallel || n > config.MaxParallel {
		return fmt.Errorf("value must be between %d and %d", config.MinParallel, config.MaxParallel)
	}
	return nil
}
