package translator

import (
	"path/filepath"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Translator holds every loaded message catalog. English is the default
// language, so missing translations fall back to the en catalog.
var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string
}

const (
	LanguageEn = "en"
	LanguageEs = "es"
)

// InitTranslator loads every *.toml catalog found in cfg.TranslationFolder.
// A missing folder or a broken file is logged and skipped rather than fatal;
// untranslated responses fall back to the message key.
func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := filepath.Glob(filepath.Join(cfg.TranslationFolder, "*.toml"))
	if err != nil {
		zap.L().Error("failed to list translation folder",
			zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	loaded := 0
	for _, file := range files {
		if _, err := Translator.LoadMessageFile(file); err != nil {
			zap.L().Warn("failed to load translation file",
				zap.String("file", filepath.Base(file)), zap.Error(err))
			continue
		}
		loaded++
	}

	zap.L().Info("translations loaded",
		zap.Int("catalogs", loaded),
		zap.String("languages", strings.Join(cfg.SupportedLanguages, ",")))
}
