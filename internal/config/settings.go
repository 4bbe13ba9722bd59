package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/ytfetch/internal/model"
	"github.com/ytget/ytfetch/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir        = "download_directory"
	KeyMaxParallel        = "max_parallel_downloads"
	KeyDefaultCategory    = "default_category"
	KeyFilenameTemplate   = "filename_template"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
	KeyYtdlpPath          = "ytdlp_path"
	KeyAppearance         = "appearance"
)

// Default values
const (
	DefaultMaxParallel        = 2
	DefaultCategory           = model.CategoryCombined
	DefaultFilenameTemplate   = model.DefaultOutputTemplate
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = true
	DefaultAppearance         = AppearanceSystem
)

// Appearance modes
const (
	AppearanceSystem = "system"
	AppearanceDark   = "dark"
	AppearanceLight  = "light"
)

// Bounds for parallel downloads
const (
	MinParallel = 1
	MaxParallel = 10
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetMaxParallelDownloads returns the maximum number of parallel downloads
func (s *Settings) GetMaxParallelDownloads() int {
	value := s.app.Preferences().Int(KeyMaxParallel)
	if value <= 0 {
		s.SetMaxParallelDownloads(DefaultMaxParallel)
		return DefaultMaxParallel
	}
	return value
}

// SetMaxParallelDownloads sets the maximum number of parallel downloads
func (s *Settings) SetMaxParallelDownloads(count int) {
	if count < MinParallel {
		count = MinParallel
	}
	if count > MaxParallel {
		count = MaxParallel
	}
	s.app.Preferences().SetInt(KeyMaxParallel, count)
}

// GetDefaultCategory returns the category preselected after a fetch
func (s *Settings) GetDefaultCategory() model.Category {
	value := s.app.Preferences().String(KeyDefaultCategory)
	cat, err := model.ParseCategory(value)
	if err != nil {
		s.SetDefaultCategory(DefaultCategory)
		return DefaultCategory
	}
	return cat
}

// SetDefaultCategory sets the category preselected after a fetch
func (s *Settings) SetDefaultCategory(cat model.Category) {
	if !cat.Valid() {
		cat = DefaultCategory
	}
	s.app.Preferences().SetString(KeyDefaultCategory, cat.String())
}

// GetCategoryOptions returns the selectable categories in display order
func (s *Settings) GetCategoryOptions() []model.Category {
	return model.Categories()
}

// GetFilenameTemplate returns the filename template
func (s *Settings) GetFilenameTemplate() string {
	template := s.app.Preferences().String(KeyFilenameTemplate)
	if template == "" {
		s.SetFilenameTemplate(DefaultFilenameTemplate)
		return DefaultFilenameTemplate
	}
	return template
}

// SetFilenameTemplate sets the filename template
func (s *Settings) SetFilenameTemplate(template string) {
	if template == "" {
		template = DefaultFilenameTemplate
	}
	s.app.Preferences().SetString(KeyFilenameTemplate, template)
}

// GetYtdlpPath returns the yt-dlp executable override, empty means PATH
func (s *Settings) GetYtdlpPath() string {
	return s.app.Preferences().String(KeyYtdlpPath)
}

// SetYtdlpPath sets the yt-dlp executable override
func (s *Settings) SetYtdlpPath(path string) {
	s.app.Preferences().SetString(KeyYtdlpPath, path)
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

// GetAutoRevealOnComplete returns whether to auto-reveal completed downloads
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to auto-reveal completed downloads
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetAppearance returns the color mode, one of the Appearance* values
func (s *Settings) GetAppearance() string {
	mode := s.app.Preferences().StringWithFallback(KeyAppearance, DefaultAppearance)
	switch mode {
	case AppearanceSystem, AppearanceDark, AppearanceLight:
		return mode
	default:
		return DefaultAppearance
	}
}

// SetAppearance sets the color mode. Unknown modes reset it to system.
func (s *Settings) SetAppearance(mode string) {
	switch mode {
	case AppearanceDark, AppearanceLight:
	default:
		mode = AppearanceSystem
	}
	s.app.Preferences().SetString(KeyAppearance, mode)
}

// GetAppearanceOptions returns the selectable color modes
func (s *Settings) GetAppearanceOptions() []string {
	return []string{AppearanceSystem, AppearanceDark, AppearanceLight}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
		"ar":     "العربية",
	}
}
