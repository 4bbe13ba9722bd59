package ui

import (
	"fmt"

	"github.com/ytget/ytfetch/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyFetch             = "fetch"
	KeyDownload          = "download"
	KeyStop              = "stop"
	KeyOpen              = "open"
	KeyReveal            = "reveal"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyAppearance        = "appearance"
	KeyAppearanceSystem  = "appearance_system"
	KeyAppearanceDark    = "appearance_dark"
	KeyAppearanceLight   = "appearance_light"
	KeyDownloadDirectory = "download_directory"
	KeyMaxParallel       = "max_parallel"
	KeyDefaultCategory   = "default_category"
	KeyFilenameTemplate  = "filename_template"
	KeyYtdlpPath         = "ytdlp_path"
	KeyAutoReveal        = "auto_reveal"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeyVideoLink         = "video_link"
	KeyEnterURL          = "enter_url"
	KeyFormat            = "format"
	KeyQuality           = "quality"
	KeyDestination       = "destination"
	KeyHistory           = "history"
	KeyCombined          = "category_combined"
	KeyVideoOnly         = "category_video_only"
	KeyAudioOnly         = "category_audio_only"
	KeyReady             = "ready"
	KeyFetching          = "fetching"
	KeyFetched           = "fetched"
	KeyFetchFailed       = "fetch_failed"
	KeyVerifyLink        = "verify_link"
	KeyNoFormats         = "no_formats"
	KeyNoQualities       = "no_qualities"
	KeySelectFirst       = "select_first"
	KeyStarting          = "starting"
	KeyDownloading       = "downloading"
	KeySpeed             = "speed"
	KeySize              = "size"
	KeyETA               = "eta"
	KeySettingsSaved     = "settings_saved"
	KeyDownloadCompleted = "download_completed"
	KeySavedTo           = "saved_to"
	KeyDownloadFailed    = "download_failed"
	KeyDownloadStopped   = "download_stopped"
	KeyStoppingDownload  = "stopping_download"
	KeyMuxerMissing      = "muxer_missing"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyInvalidURL        = "invalid_url"
	KeyPleaseEnterURL    = "please_enter_url"
	KeyError             = "error"
)

// DefaultLanguage is used when a key or language is missing
const DefaultLanguage = "en"

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: DefaultLanguage,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = DefaultLanguage
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

	// Fallback to English
	if texts, exists := l.texts[DefaultLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Textf formats the localized text for key with args
func (l *Localization) Textf(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// IsRightToLeft reports whether the current language is written right to left
func (l *Localization) IsRightToLeft() bool {
	return l.currentLanguage == "ar"
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
		"ar": "العربية",
	}
}

// CategoryText returns the display name of a category
func (l *Localization) CategoryText(cat model.Category) string {
	switch cat {
	case model.CategoryCombined:
		return l.GetText(KeyCombined)
	case model.CategoryVideoOnly:
		return l.GetText(KeyVideoOnly)
	case model.CategoryAudioOnly:
		return l.GetText(KeyAudioOnly)
	default:
		return cat.String()
	}
}

// AppearanceText returns the display name of an appearance mode
func (l *Localization) AppearanceText(mode string) string {
	return l.GetText("appearance_" + mode)
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Video Downloader",
		KeyFetch:             "Fetch Info",
		KeyDownload:          "Download",
		KeyStop:              "Stop",
		KeyOpen:              "Open",
		KeyReveal:            "Show in Folder",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyAppearance:        "Appearance",
		KeyAppearanceSystem:  "System",
		KeyAppearanceDark:    "Dark",
		KeyAppearanceLight:   "Light",
		KeyDownloadDirectory: "Download Directory",
		KeyMaxParallel:       "Max Parallel Downloads",
		KeyDefaultCategory:   "Default Format",
		KeyFilenameTemplate:  "Filename Template",
		KeyYtdlpPath:         "yt-dlp Executable",
		KeyAutoReveal:        "Show file when download completes",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeyVideoLink:         "Video link:",
		KeyEnterURL:          "Enter the video link here...",
		KeyFormat:            "Format:",
		KeyQuality:           "Quality:",
		KeyDestination:       "Save to:",
		KeyHistory:           "Downloads",
		KeyCombined:          "Video + Audio",
		KeyVideoOnly:         "Video only",
		KeyAudioOnly:         "Audio only",
		KeyReady:             "Please enter a video link...",
		KeyFetching:          "Fetching video information...",
		KeyFetched:           "Information fetched. Choose format and quality.",
		KeyFetchFailed:       "Could not fetch video information",
		KeyVerifyLink:        "Make sure the link is correct.",
		KeyNoFormats:         "No formats available",
		KeyNoQualities:       "No qualities available",
		KeySelectFirst:       "Please fetch video info first and choose format and quality.",
		KeyStarting:          "Starting download...",
		KeyDownloading:       "Downloading: %.1f%%",
		KeySpeed:             "Speed: %s",
		KeySize:              "Size: %s",
		KeyETA:               "Remaining: %s",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyDownloadCompleted: "Download completed",
		KeySavedTo:           "Downloaded successfully to: %s",
		KeyDownloadFailed:    "Download error",
		KeyDownloadStopped:   "Download stopped",
		KeyStoppingDownload:  "Stopping download...",
		KeyMuxerMissing:      "ffmpeg was not found. Video and audio may not be merged.",
		KeyErrorOpeningFile:  "Error opening file",
		KeyInvalidURL:        "Invalid URL",
		KeyPleaseEnterURL:    "Please enter a valid video link.",
		KeyError:             "Error",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Загрузчик видео",
		KeyFetch:             "Получить информацию",
		KeyDownload:          "Скачать",
		KeyStop:              "Стоп",
		KeyOpen:              "Открыть",
		KeyReveal:            "Показать в папке",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyAppearance:        "Оформление",
		KeyAppearanceSystem:  "Системное",
		KeyAppearanceDark:    "Тёмное",
		KeyAppearanceLight:   "Светлое",
		KeyDownloadDirectory: "Папка загрузки",
		KeyMaxParallel:       "Макс. параллельных",
		KeyDefaultCategory:   "Формат по умолчанию",
		KeyFilenameTemplate:  "Шаблон имени файла",
		KeyYtdlpPath:         "Исполняемый файл yt-dlp",
		KeyAutoReveal:        "Показывать файл после загрузки",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeyVideoLink:         "Ссылка на видео:",
		KeyEnterURL:          "Введите ссылку на видео...",
		KeyFormat:            "Формат:",
		KeyQuality:           "Качество:",
		KeyDestination:       "Сохранить в:",
		KeyHistory:           "Загрузки",
		KeyCombined:          "Видео + звук",
		KeyVideoOnly:         "Только видео",
		KeyAudioOnly:         "Только звук",
		KeyReady:             "Введите ссылку на видео...",
		KeyFetching:          "Получение информации о видео...",
		KeyFetched:           "Информация получена. Выберите формат и качество.",
		KeyFetchFailed:       "Не удалось получить информацию о видео",
		KeyVerifyLink:        "Убедитесь, что ссылка верна.",
		KeyNoFormats:         "Нет доступных форматов",
		KeyNoQualities:       "Нет доступного качества",
		KeySelectFirst:       "Сначала получите информацию и выберите формат и качество.",
		KeyStarting:          "Начало загрузки...",
		KeyDownloading:       "Загрузка: %.1f%%",
		KeySpeed:             "Скорость: %s",
		KeySize:              "Размер: %s",
		KeyETA:               "Осталось: %s",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyDownloadCompleted: "Загрузка завершена",
		KeySavedTo:           "Успешно загружено в: %s",
		KeyDownloadFailed:    "Ошибка загрузки",
		KeyDownloadStopped:   "Загрузка остановлена",
		KeyStoppingDownload:  "Остановка загрузки...",
		KeyMuxerMissing:      "ffmpeg не найден. Видео и звук могут не объединиться.",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyInvalidURL:        "Неверный URL",
		KeyPleaseEnterURL:    "Пожалуйста, введите корректную ссылку.",
		KeyError:             "Ошибка",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Baixador de Vídeos",
		KeyFetch:             "Obter Informações",
		KeyDownload:          "Baixar",
		KeyStop:              "Parar",
		KeyOpen:              "Abrir",
		KeyReveal:            "Mostrar na Pasta",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyAppearance:        "Aparência",
		KeyAppearanceSystem:  "Sistema",
		KeyAppearanceDark:    "Escuro",
		KeyAppearanceLight:   "Claro",
		KeyDownloadDirectory: "Diretório de Download",
		KeyMaxParallel:       "Max Downloads Paralelos",
		KeyDefaultCategory:   "Formato Padrão",
		KeyFilenameTemplate:  "Modelo de Nome de Arquivo",
		KeyYtdlpPath:         "Executável do yt-dlp",
		KeyAutoReveal:        "Mostrar arquivo ao concluir",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeyVideoLink:         "Link do vídeo:",
		KeyEnterURL:          "Digite o link do vídeo aqui...",
		KeyFormat:            "Formato:",
		KeyQuality:           "Qualidade:",
		KeyDestination:       "Salvar em:",
		KeyHistory:           "Downloads",
		KeyCombined:          "Vídeo + Áudio",
		KeyVideoOnly:         "Somente vídeo",
		KeyAudioOnly:         "Somente áudio",
		KeyReady:             "Digite o link do vídeo...",
		KeyFetching:          "Obtendo informações do vídeo...",
		KeyFetched:           "Informações obtidas. Escolha formato e qualidade.",
		KeyFetchFailed:       "Não foi possível obter as informações do vídeo",
		KeyVerifyLink:        "Verifique se o link está correto.",
		KeyNoFormats:         "Nenhum formato disponível",
		KeyNoQualities:       "Nenhuma qualidade disponível",
		KeySelectFirst:       "Obtenha as informações primeiro e escolha formato e qualidade.",
		KeyStarting:          "Iniciando download...",
		KeyDownloading:       "Baixando: %.1f%%",
		KeySpeed:             "Velocidade: %s",
		KeySize:              "Tamanho: %s",
		KeyETA:               "Restante: %s",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyDownloadCompleted: "Download concluído",
		KeySavedTo:           "Baixado com sucesso em: %s",
		KeyDownloadFailed:    "Erro no download",
		KeyDownloadStopped:   "Download parado",
		KeyStoppingDownload:  "Parando download...",
		KeyMuxerMissing:      "ffmpeg não encontrado. Vídeo e áudio podem não ser combinados.",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyInvalidURL:        "URL inválida",
		KeyPleaseEnterURL:    "Por favor, digite um link válido.",
		KeyError:             "Erro",
	}

	// Arabic texts
	l.texts["ar"] = map[string]string{
		KeyAppTitle:          "برنامج تنزيل الفيديو",
		KeyFetch:             "جلب المعلومات",
		KeyDownload:          "تنزيل",
		KeyStop:              "إيقاف",
		KeyOpen:              "فتح",
		KeyReveal:            "إظهار في المجلد",
		KeySettings:          "الإعدادات",
		KeyFile:              "ملف",
		KeyLanguage:          "اللغة",
		KeyAppearance:        "وضع المظهر",
		KeyAppearanceSystem:  "النظام",
		KeyAppearanceDark:    "داكن",
		KeyAppearanceLight:   "فاتح",
		KeyDownloadDirectory: "مجلد التنزيل",
		KeyMaxParallel:       "أقصى عدد للتنزيلات المتزامنة",
		KeyDefaultCategory:   "الصيغة الافتراضية",
		KeyFilenameTemplate:  "قالب اسم الملف",
		KeyYtdlpPath:         "ملف yt-dlp التنفيذي",
		KeyAutoReveal:        "إظهار الملف عند اكتمال التنزيل",
		KeySave:              "حفظ",
		KeyCancel:            "إلغاء",
		KeyBrowse:            "استعراض",
		KeyVideoLink:         "رابط الفيديو:",
		KeyEnterURL:          "أدخل رابط الفيديو هنا...",
		KeyFormat:            "الصيغة:",
		KeyQuality:           "الجودة:",
		KeyDestination:       "مجلد الحفظ:",
		KeyHistory:           "التنزيلات",
		KeyCombined:          "فيديو + صوت",
		KeyVideoOnly:         "فيديو فقط",
		KeyAudioOnly:         "صوت فقط",
		KeyReady:             "الرجاء إدخال رابط الفيديو...",
		KeyFetching:          "جلب معلومات الفيديو...",
		KeyFetched:           "تم جلب المعلومات بنجاح. اختر الصيغة والجودة.",
		KeyFetchFailed:       "تعذر جلب معلومات الفيديو",
		KeyVerifyLink:        "تأكد من صحة الرابط.",
		KeyNoFormats:         "لا توجد صيغ متاحة",
		KeyNoQualities:       "لا توجد جودات متاحة",
		KeySelectFirst:       "الرجاء جلب معلومات الفيديو أولاً واختيار الصيغة والجودة.",
		KeyStarting:          "بدء التنزيل...",
		KeyDownloading:       "جاري التنزيل: %.1f%%",
		KeySpeed:             "السرعة: %s",
		KeySize:              "الحجم: %s",
		KeyETA:               "الوقت المتبقي: %s",
		KeySettingsSaved:     "تم حفظ الإعدادات بنجاح!",
		KeyDownloadCompleted: "اكتمل التنزيل!",
		KeySavedTo:           "تم التنزيل بنجاح إلى: %s",
		KeyDownloadFailed:    "خطأ في التنزيل",
		KeyDownloadStopped:   "تم إيقاف التنزيل",
		KeyStoppingDownload:  "جاري إيقاف التنزيل...",
		KeyMuxerMissing:      "لم يتم العثور على ffmpeg. قد لا يتم دمج الفيديو والصوت.",
		KeyErrorOpeningFile:  "خطأ في فتح الملف",
		KeyInvalidURL:        "رابط غير صالح",
		KeyPleaseEnterURL:    "الرجاء إدخال رابط فيديو صالح.",
		KeyError:             "خطأ",
	}
}
