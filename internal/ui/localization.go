package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Supported language codes
const (
	LangSystem  = "system"
	LangEnglish = "en"
	LangFrench  = "fr"
	LangRussian = "ru"
)

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyFile               = "file"
	KeySettings           = "settings"
	KeyLanguage           = "language"
	KeyFiles              = "files"
	KeyOptions            = "options"
	KeyLog                = "log"
	KeyAddFiles           = "add_files"
	KeyAddFolder          = "add_folder"
	KeyRemove             = "remove"
	KeyClearAll           = "clear_all"
	KeyClearAllConfirm    = "clear_all_confirm"
	KeyReveal             = "reveal"
	KeyFilesCount         = "files_count"
	KeyNoVideosInFolder   = "no_videos_in_folder"
	KeyOutputFolder       = "output_folder"
	KeyBrowse             = "browse"
	KeyOpenOutput         = "open_output"
	KeyStart              = "start"
	KeyStop               = "stop"
	KeyVideo              = "video"
	KeyAudio              = "audio"
	KeyFilters            = "filters"
	KeyGeneral            = "general"
	KeyVideoEncoder       = "video_encoder"
	KeyQuality            = "quality"
	KeyMaxBitrate         = "max_bitrate"
	KeyUnlimitedHint      = "unlimited_hint"
	KeyPreset             = "preset"
	KeyPresetHint         = "preset_hint"
	KeyAudioCodec         = "audio_codec"
	KeyAudioBitrate       = "audio_bitrate"
	KeyScale              = "scale"
	KeyScaleHint          = "scale_hint"
	KeyFPS                = "fps"
	KeyExtraFilters       = "extra_filters"
	KeyFFmpegPath         = "ffmpeg_path"
	KeyOutputSuffix       = "output_suffix"
	KeyOverwrite          = "overwrite"
	KeyPreserveStructure  = "preserve_structure"
	KeyBaseDirectory      = "base_directory"
	KeyBaseDirectoryHint  = "base_directory_hint"
	KeyAutoReveal         = "auto_reveal"
	KeyResetDefaults      = "reset_defaults"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
	KeyClearLog           = "clear_log"
	KeySaveLog            = "save_log"
	KeyLogSaved           = "log_saved"
	KeyLinesHidden        = "lines_hidden"
	KeyCheckingTool       = "checking_tool"
	KeyToolFound          = "tool_found"
	KeyToolMissing        = "tool_missing"
	KeyToolMissingDetail  = "tool_missing_detail"
	KeyNVENCAvailable     = "nvenc_available"
	KeyNVENCUnavailable   = "nvenc_unavailable"
	KeyReady              = "ready"
	KeyProcessing         = "processing"
	KeyStopping           = "stopping"
	KeyConversionStopped  = "conversion_stopped"
	KeyConversionFinished = "conversion_finished"
	KeyAllConverted       = "all_converted"
	KeyPartialTitle       = "partial_title"
	KeyPartialConverted   = "partial_converted"
	KeyNoFiles            = "no_files"
	KeyNoOutputDir        = "no_output_dir"
	KeyInvalidOptions     = "invalid_options"
	KeyAlreadyRunning     = "already_running"
	KeyError              = "error"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LangEnglish,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" resolves to the OS locale
// when it is supported, English otherwise.
func (l *Localization) SetLanguage(code string) {
	if code == LangSystem {
		code = systemLanguage()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

// systemLanguage returns the base language of the OS locale, e.g. "fr" for "fr-CA"
func systemLanguage() string {
	locale := string(lang.SystemLocale())
	base, _, _ := strings.Cut(locale, "-")
	base, _, _ = strings.Cut(base, "_")
	return strings.ToLower(base)
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[LangEnglish]; exists {
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
		LangEnglish: "English",
		LangFrench:  "Français",
		LangRussian: "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts[LangEnglish] = map[string]string{
		KeyAppTitle:           "NVENC Encoder",
		KeyFile:               "File",
		KeySettings:           "Settings",
		KeyLanguage:           "Language",
		KeyFiles:              "Files",
		KeyOptions:            "Encoding",
		KeyLog:                "Log",
		KeyAddFiles:           "Add files",
		KeyAddFolder:          "Add folder",
		KeyRemove:             "Remove",
		KeyClearAll:           "Clear all",
		KeyClearAllConfirm:    "Remove every file from the list?",
		KeyReveal:             "Show in folder",
		KeyFilesCount:         "%d files · %s",
		KeyNoVideosInFolder:   "No video files found in this folder",
		KeyOutputFolder:       "Output folder",
		KeyBrowse:             "Browse",
		KeyOpenOutput:         "Open output folder",
		KeyStart:              "Start conversion",
		KeyStop:               "Stop",
		KeyVideo:              "Video",
		KeyAudio:              "Audio",
		KeyFilters:            "Filters",
		KeyGeneral:            "General",
		KeyVideoEncoder:       "Video encoder",
		KeyQuality:            "Quality (CRF)",
		KeyMaxBitrate:         "Max bitrate (kbps)",
		KeyUnlimitedHint:      "0 = unlimited",
		KeyPreset:             "NVENC preset",
		KeyPresetHint:         "p1 = fastest, p7 = best quality",
		KeyAudioCodec:         "Audio codec",
		KeyAudioBitrate:       "Audio bitrate (kbps)",
		KeyScale:              "Scale (width:height)",
		KeyScaleHint:          "e.g. 1920:1080, 1280:720",
		KeyFPS:                "FPS",
		KeyExtraFilters:       "Extra filters",
		KeyFFmpegPath:         "FFmpeg path",
		KeyOutputSuffix:       "Output file suffix",
		KeyOverwrite:          "Overwrite existing files",
		KeyPreserveStructure:  "Keep folder structure",
		KeyBaseDirectory:      "Structure base folder",
		KeyBaseDirectoryHint:  "Empty = relative to the drive root",
		KeyAutoReveal:         "Open output folder when finished",
		KeyResetDefaults:      "Reset encoding defaults",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyClearLog:           "Clear",
		KeySaveLog:            "Save logs",
		KeyLogSaved:           "Log saved",
		KeyLinesHidden:        "… %d earlier lines hidden (kept in saved log)",
		KeyCheckingTool:       "Checking FFmpeg…",
		KeyToolFound:          "FFmpeg detected",
		KeyToolMissing:        "FFmpeg not found",
		KeyToolMissingDetail:  "FFmpeg is not installed or not in the PATH.\n\nInstall FFmpeg or set its path in the General tab.",
		KeyNVENCAvailable:     "NVENC available",
		KeyNVENCUnavailable:   "NVENC not detected",
		KeyReady:              "Ready",
		KeyProcessing:         "Processing: %s",
		KeyStopping:           "Stopping…",
		KeyConversionStopped:  "Conversion stopped",
		KeyConversionFinished: "Conversion finished",
		KeyAllConverted:       "All %d files were converted.",
		KeyPartialTitle:       "Partial conversion",
		KeyPartialConverted:   "%d/%d files were converted.",
		KeyNoFiles:            "Please add at least one video file.",
		KeyNoOutputDir:        "Please choose an output folder.",
		KeyInvalidOptions:     "Invalid encoding options",
		KeyAlreadyRunning:     "A conversion is already running.",
		KeyError:              "Error",
	}

	l.texts[LangFrench] = map[string]string{
		KeyAppTitle:           "Encodeur NVENC",
		KeyFile:               "Fichier",
		KeySettings:           "Paramètres",
		KeyLanguage:           "Langue",
		KeyFiles:              "Fichiers",
		KeyOptions:            "Encodage",
		KeyLog:                "Journal",
		KeyAddFiles:           "Ajouter des fichiers",
		KeyAddFolder:          "Ajouter un dossier",
		KeyRemove:             "Supprimer",
		KeyClearAll:           "Tout effacer",
		KeyClearAllConfirm:    "Retirer tous les fichiers de la liste ?",
		KeyReveal:             "Afficher dans le dossier",
		KeyFilesCount:         "%d fichiers · %s",
		KeyNoVideosInFolder:   "Aucun fichier vidéo dans ce dossier",
		KeyOutputFolder:       "Dossier de sortie",
		KeyBrowse:             "Parcourir",
		KeyOpenOutput:         "Ouvrir le dossier de sortie",
		KeyStart:              "Démarrer la conversion",
		KeyStop:               "Arrêter",
		KeyVideo:              "Vidéo",
		KeyAudio:              "Audio",
		KeyFilters:            "Filtres",
		KeyGeneral:            "Général",
		KeyVideoEncoder:       "Encodeur vidéo",
		KeyQuality:            "Qualité (CRF)",
		KeyMaxBitrate:         "Débit max (kbps)",
		KeyUnlimitedHint:      "0 = illimité",
		KeyPreset:             "Préset NVENC",
		KeyPresetHint:         "p1 = rapide, p7 = meilleure qualité",
		KeyAudioCodec:         "Codec audio",
		KeyAudioBitrate:       "Débit audio (kbps)",
		KeyScale:              "Échelle (largeur:hauteur)",
		KeyScaleHint:          "ex : 1920:1080, 1280:720",
		KeyFPS:                "FPS",
		KeyExtraFilters:       "Filtres supplémentaires",
		KeyFFmpegPath:         "Chemin FFmpeg",
		KeyOutputSuffix:       "Suffixe des fichiers de sortie",
		KeyOverwrite:          "Écraser les fichiers existants",
		KeyPreserveStructure:  "Conserver la structure des dossiers",
		KeyBaseDirectory:      "Dossier de base de la structure",
		KeyBaseDirectoryHint:  "Vide = relatif à la racine du disque",
		KeyAutoReveal:         "Ouvrir le dossier de sortie à la fin",
		KeyResetDefaults:      "Rétablir l'encodage par défaut",
		KeySave:               "Enregistrer",
		KeyCancel:             "Annuler",
		KeySettingsSaved:      "Paramètres enregistrés !",
		KeyClearLog:           "Effacer",
		KeySaveLog:            "Sauvegarder les logs",
		KeyLogSaved:           "Journal enregistré",
		KeyLinesHidden:        "… %d lignes précédentes masquées (conservées dans le journal enregistré)",
		KeyCheckingTool:       "Vérification de FFmpeg…",
		KeyToolFound:          "FFmpeg détecté",
		KeyToolMissing:        "FFmpeg non trouvé",
		KeyToolMissingDetail:  "FFmpeg n'est pas installé ou n'est pas dans le PATH.\n\nInstallez FFmpeg ou indiquez son chemin dans l'onglet Général.",
		KeyNVENCAvailable:     "NVENC disponible",
		KeyNVENCUnavailable:   "NVENC non détecté",
		KeyReady:              "Prêt",
		KeyProcessing:         "Traitement : %s",
		KeyStopping:           "Arrêt en cours…",
		KeyConversionStopped:  "Conversion arrêtée",
		KeyConversionFinished: "Conversion terminée",
		KeyAllConverted:       "Les %d fichiers ont été convertis.",
		KeyPartialTitle:       "Conversion partielle",
		KeyPartialConverted:   "%d/%d fichiers ont été convertis.",
		KeyNoFiles:            "Veuillez ajouter au moins un fichier vidéo.",
		KeyNoOutputDir:        "Veuillez sélectionner un dossier de sortie.",
		KeyInvalidOptions:     "Options d'encodage invalides",
		KeyAlreadyRunning:     "Une conversion est déjà en cours.",
		KeyError:              "Erreur",
	}

	l.texts[LangRussian] = map[string]string{
		KeyAppTitle:           "NVENC Кодировщик",
		KeyFile:               "Файл",
		KeySettings:           "Настройки",
		KeyLanguage:           "Язык",
		KeyFiles:              "Файлы",
		KeyOptions:            "Кодирование",
		KeyLog:                "Журнал",
		KeyAddFiles:           "Добавить файлы",
		KeyAddFolder:          "Добавить папку",
		KeyRemove:             "Удалить",
		KeyClearAll:           "Очистить всё",
		KeyClearAllConfirm:    "Удалить все файлы из списка?",
		KeyReveal:             "Показать в папке",
		KeyFilesCount:         "%d файлов · %s",
		KeyNoVideosInFolder:   "В папке нет видеофайлов",
		KeyOutputFolder:       "Папка вывода",
		KeyBrowse:             "Обзор",
		KeyOpenOutput:         "Открыть папку вывода",
		KeyStart:              "Начать конвертацию",
		KeyStop:               "Стоп",
		KeyVideo:              "Видео",
		KeyAudio:              "Аудио",
		KeyFilters:            "Фильтры",
		KeyGeneral:            "Общие",
		KeyVideoEncoder:       "Видеокодер",
		KeyQuality:            "Качество (CRF)",
		KeyMaxBitrate:         "Макс. битрейт (кбит/с)",
		KeyUnlimitedHint:      "0 = без ограничений",
		KeyPreset:             "Пресет NVENC",
		KeyPresetHint:         "p1 = быстрее, p7 = лучшее качество",
		KeyAudioCodec:         "Аудиокодек",
		KeyAudioBitrate:       "Битрейт аудио (кбит/с)",
		KeyScale:              "Масштаб (ширина:высота)",
		KeyScaleHint:          "напр. 1920:1080, 1280:720",
		KeyFPS:                "FPS",
		KeyExtraFilters:       "Доп. фильтры",
		KeyFFmpegPath:         "Путь к FFmpeg",
		KeyOutputSuffix:       "Суффикс выходных файлов",
		KeyOverwrite:          "Перезаписывать существующие файлы",
		KeyPreserveStructure:  "Сохранять структуру папок",
		KeyBaseDirectory:      "Базовая папка структуры",
		KeyBaseDirectoryHint:  "Пусто = относительно корня диска",
		KeyAutoReveal:         "Открыть папку вывода по завершении",
		KeyResetDefaults:      "Сбросить настройки кодирования",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyClearLog:           "Очистить",
		KeySaveLog:            "Сохранить журнал",
		KeyLogSaved:           "Журнал сохранён",
		KeyLinesHidden:        "… скрыто строк: %d (сохраняются в файле журнала)",
		KeyCheckingTool:       "Проверка FFmpeg…",
		KeyToolFound:          "FFmpeg найден",
		KeyToolMissing:        "FFmpeg не найден",
		KeyToolMissingDetail:  "FFmpeg не установлен или отсутствует в PATH.\n\nУстановите FFmpeg или укажите путь во вкладке «Общие».",
		KeyNVENCAvailable:     "NVENC доступен",
		KeyNVENCUnavailable:   "NVENC не обнаружен",
		KeyReady:              "Готово",
		KeyProcessing:         "Обработка: %s",
		KeyStopping:           "Остановка…",
		KeyConversionStopped:  "Конвертация остановлена",
		KeyConversionFinished: "Конвертация завершена",
		KeyAllConverted:       "Все %d файлов сконвертированы.",
		KeyPartialTitle:       "Частичная конвертация",
		KeyPartialConverted:   "Сконвертировано %d/%d файлов.",
		KeyNoFiles:            "Добавьте хотя бы один видеофайл.",
		KeyNoOutputDir:        "Выберите папку вывода.",
		KeyInvalidOptions:     "Неверные параметры кодирования",
		KeyAlreadyRunning:     "Конвертация уже выполняется.",
		KeyError:              "Ошибка",
	}
}
