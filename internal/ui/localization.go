package ui

import (
	"fyne.io/fyne/v2/lang"
	"golang.org/x/text/language"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyFile            = "file"
	KeySettings        = "settings"
	KeyLanguage        = "language"
	KeyQuit            = "quit"
	KeyLoadWAV         = "load_wav"
	KeySelectOutput    = "select_output"
	KeyNoFileLoaded    = "no_file_loaded"
	KeyLoaded          = "loaded"
	KeyOutput          = "output"
	KeyOutputNotSet    = "output_not_set"
	KeyPlay            = "play"
	KeyStop            = "stop"
	KeyHover           = "hover"
	KeyChop            = "chop"
	KeyBegin           = "begin"
	KeyEnd             = "end"
	KeySetBegin        = "set_begin"
	KeySetEnd          = "set_end"
	KeyExport          = "export"
	KeyChops           = "chops"
	KeyReveal          = "reveal"
	KeyOpen            = "open"
	KeyCopyPath        = "copy_path"
	KeyPathCopied      = "path_copied"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyFFmpegPath      = "ffmpeg_path"
	KeyFFprobePath     = "ffprobe_path"
	KeyFFplayPath      = "ffplay_path"
	KeyHWAccel         = "hwaccel"
	KeyHWAccelHint     = "hwaccel_hint"
	KeyAutoReveal      = "auto_reveal"
	KeyCheckTools      = "check_tools"
	KeyToolsOK         = "tools_ok"
	KeySettingsSaved   = "settings_saved"
	KeyErrorOpenFile   = "error_opening_file"
	KeyInvalidFile     = "invalid_file"
	KeyInvalidFileMsg  = "invalid_file_msg"
	KeyNoFile          = "no_file"
	KeyNoFileMsg       = "no_file_msg"
	KeyNoFolder        = "no_folder"
	KeyNoFolderMsg     = "no_folder_msg"
	KeyInvalidTime     = "invalid_time"
	KeyInvalidRange    = "invalid_range"
	KeyInvalidRangeMsg = "invalid_range_msg"
	KeyExportFailed    = "export_failed"
	KeyPlaybackFailed  = "playback_failed"
	KeyToolMissing     = "tool_missing"
	KeyError           = "error"
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
		lang = matchLanguage(systemLocale())
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// systemLocale returns the OS locale, e.g. "ru-RU"
var systemLocale = func() string {
	return string(lang.SystemLocale())
}

var (
	supportedLanguages = []language.Tag{language.English, language.Russian, language.Portuguese}
	languageMatcher    = language.NewMatcher(supportedLanguages)
)

// matchLanguage maps a locale to one of the translated languages, English
// when nothing matches
func matchLanguage(locale string) string {
	_, idx, conf := languageMatcher.Match(language.Make(locale))
	if conf == language.No {
		return "en"
	}
	base, _ := supportedLanguages[idx].Base()
	return base.String()
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
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

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "WAV Chopper",
		KeyFile:            "File",
		KeySettings:        "Settings",
		KeyLanguage:        "Language",
		KeyQuit:            "Quit",
		KeyLoadWAV:         "Load WAV",
		KeySelectOutput:    "Select Output Folder",
		KeyNoFileLoaded:    "No file loaded",
		KeyLoaded:          "Loaded: %s",
		KeyOutput:          "Output: %s",
		KeyOutputNotSet:    "Output: not set",
		KeyPlay:            "Play",
		KeyStop:            "Stop",
		KeyHover:           "Hover: %s",
		KeyChop:            "Chop",
		KeyBegin:           "Begin",
		KeyEnd:             "End",
		KeySetBegin:        "Set Begin to Current",
		KeySetEnd:          "Set End to Current",
		KeyExport:          "Export Chop",
		KeyChops:           "Chops",
		KeyReveal:          "reveal",
		KeyOpen:            "play",
		KeyCopyPath:        "path",
		KeyPathCopied:      "Path copied to clipboard",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyFFmpegPath:      "ffmpeg path",
		KeyFFprobePath:     "ffprobe path",
		KeyFFplayPath:      "ffplay path",
		KeyHWAccel:         "Hardware decoding",
		KeyHWAccelHint:     "empty = off, e.g. auto, cuda, vaapi",
		KeyAutoReveal:      "Reveal each chop after export",
		KeyCheckTools:      "Check Tools",
		KeyToolsOK:         "ffprobe, ffplay and ffmpeg were found.",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyErrorOpenFile:   "Error opening file",
		KeyInvalidFile:     "Invalid file",
		KeyInvalidFileMsg:  "Could not read audio duration. Make sure ffprobe is available and the file is valid.",
		KeyNoFile:          "No file",
		KeyNoFileMsg:       "Load a WAV file first.",
		KeyNoFolder:        "No folder",
		KeyNoFolderMsg:     "Choose an output folder for chops first.",
		KeyInvalidTime:     "Invalid time",
		KeyInvalidRange:    "Invalid range",
		KeyInvalidRangeMsg: "End time must be after begin time.",
		KeyExportFailed:    "Export failed",
		KeyPlaybackFailed:  "Playback failed",
		KeyToolMissing:     "%s not found",
		KeyError:           "Error",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "WAV Нарезчик",
		KeyFile:            "Файл",
		KeySettings:        "Настройки",
		KeyLanguage:        "Язык",
		KeyQuit:            "Выход",
		KeyLoadWAV:         "Открыть WAV",
		KeySelectOutput:    "Папка для нарезок",
		KeyNoFileLoaded:    "Файл не загружен",
		KeyLoaded:          "Загружен: %s",
		KeyOutput:          "Папка: %s",
		KeyOutputNotSet:    "Папка: не выбрана",
		KeyPlay:            "Играть",
		KeyStop:            "Стоп",
		KeyHover:           "Курсор: %s",
		KeyChop:            "Нарезка",
		KeyBegin:           "Начало",
		KeyEnd:             "Конец",
		KeySetBegin:        "Начало = текущее",
		KeySetEnd:          "Конец = текущее",
		KeyExport:          "Экспорт",
		KeyChops:           "Нарезки",
		KeyReveal:          "показать",
		KeyOpen:            "играть",
		KeyCopyPath:        "путь",
		KeyPathCopied:      "Путь скопирован",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeyFFmpegPath:      "Путь к ffmpeg",
		KeyFFprobePath:     "Путь к ffprobe",
		KeyFFplayPath:      "Путь к ffplay",
		KeyHWAccel:         "Аппаратное декодирование",
		KeyHWAccelHint:     "пусто = выкл., например auto, cuda, vaapi",
		KeyAutoReveal:      "Показывать нарезку после экспорта",
		KeyCheckTools:      "Проверить",
		KeyToolsOK:         "ffprobe, ffplay и ffmpeg найдены.",
		KeySettingsSaved:   "Настройки успешно сохранены!",
		KeyErrorOpenFile:   "Ошибка открытия файла",
		KeyInvalidFile:     "Неверный файл",
		KeyInvalidFileMsg:  "Не удалось определить длительность. Проверьте, что ffprobe установлен и файл корректен.",
		KeyNoFile:          "Нет файла",
		KeyNoFileMsg:       "Сначала загрузите WAV файл.",
		KeyNoFolder:        "Нет папки",
		KeyNoFolderMsg:     "Сначала выберите папку для нарезок.",
		KeyInvalidTime:     "Неверное время",
		KeyInvalidRange:    "Неверный диапазон",
		KeyInvalidRangeMsg: "Конец должен быть позже начала.",
		KeyExportFailed:    "Ошибка экспорта",
		KeyPlaybackFailed:  "Ошибка воспроизведения",
		KeyToolMissing:     "%s не найден",
		KeyError:           "Ошибка",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "WAV Chopper",
		KeyFile:            "Arquivo",
		KeySettings:        "Configurações",
		KeyLanguage:        "Idioma",
		KeyQuit:            "Sair",
		KeyLoadWAV:         "Abrir WAV",
		KeySelectOutput:    "Pasta de Saída",
		KeyNoFileLoaded:    "Nenhum arquivo carregado",
		KeyLoaded:          "Carregado: %s",
		KeyOutput:          "Saída: %s",
		KeyOutputNotSet:    "Saída: não definida",
		KeyPlay:            "Tocar",
		KeyStop:            "Parar",
		KeyHover:           "Cursor: %s",
		KeyChop:            "Corte",
		KeyBegin:           "Início",
		KeyEnd:             "Fim",
		KeySetBegin:        "Início = Atual",
		KeySetEnd:          "Fim = Atual",
		KeyExport:          "Exportar Corte",
		KeyChops:           "Cortes",
		KeyReveal:          "mostrar",
		KeyOpen:            "tocar",
		KeyCopyPath:        "caminho",
		KeyPathCopied:      "Caminho copiado",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeyFFmpegPath:      "Caminho do ffmpeg",
		KeyFFprobePath:     "Caminho do ffprobe",
		KeyFFplayPath:      "Caminho do ffplay",
		KeyHWAccel:         "Decodificação por hardware",
		KeyHWAccelHint:     "vazio = desligado, ex. auto, cuda, vaapi",
		KeyAutoReveal:      "Mostrar cada corte após exportar",
		KeyCheckTools:      "Verificar",
		KeyToolsOK:         "ffprobe, ffplay e ffmpeg encontrados.",
		KeySettingsSaved:   "Configurações salvas com sucesso!",
		KeyErrorOpenFile:   "Erro ao abrir arquivo",
		KeyInvalidFile:     "Arquivo inválido",
		KeyInvalidFileMsg:  "Não foi possível ler a duração. Verifique se o ffprobe está instalado e o arquivo é válido.",
		KeyNoFile:          "Sem arquivo",
		KeyNoFileMsg:       "Carregue um arquivo WAV primeiro.",
		KeyNoFolder:        "Sem pasta",
		KeyNoFolderMsg:     "Escolha uma pasta de saída primeiro.",
		KeyInvalidTime:     "Tempo inválido",
		KeyInvalidRange:    "Intervalo inválido",
		KeyInvalidRangeMsg: "O fim deve ser depois do início.",
		KeyExportFailed:    "Falha na exportação",
		KeyPlaybackFailed:  "Falha na reprodução",
		KeyToolMissing:     "%s não encontrado",
		KeyError:           "Erro",
	}
}
