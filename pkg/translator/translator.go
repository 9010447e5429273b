package translator

import (
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string // List of supported languages
	DefaultLanguage    string
}

const (
	LanguagePt = "pt"
	LanguageEn = "en"
	LanguageFr = "fr"
)

// DefaultLanguage is the fallback used when a request names no known language.
var DefaultLanguage = LanguagePt

func InitTranslator(cfg Config) {
	if cfg.DefaultLanguage != "" {
		DefaultLanguage = cfg.DefaultLanguage
	}

	defaultTag, err := language.Parse(DefaultLanguage)
	if err != nil {
		zap.L().Warn("invalid default language, using portuguese", zap.String("language", DefaultLanguage), zap.Error(err))
		DefaultLanguage = LanguagePt
		defaultTag = language.Portuguese
	}

	Translator = i18n.NewBundle(defaultTag)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	// Load one <lang>.toml per supported language
	for _, lang := range cfg.SupportedLanguages {
		path := filepath.Join(cfg.TranslationFolder, lang+".toml")
		if _, err := Translator.LoadMessageFile(path); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", path), zap.Error(err))
		}
	}
}

// Localize translates msgKey into lang, falling back to the default language
// and finally to the key itself.
func Localize(msgKey string, lang string) string {
	if Translator == nil {
		return msgKey
	}
	l := i18n.NewLocalizer(Translator, lang, DefaultLanguage)
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: msgKey})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
