package translator_test

import (
	"os"
	"path/filepath"
	"testing"

	"marceneiro/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTranslations(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"pt.toml": "hello = \"Olá\"\nonlyPt = \"Somente português\"\n",
		"en.toml": "hello = \"Hello english\"\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestInitTranslator_LoadsMessages(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  writeTranslations(t),
		SupportedLanguages: []string{translator.LanguagePt, translator.LanguageEn},
	})

	localizer := i18n.NewLocalizer(translator.Translator, translator.LanguageEn)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "Hello english", msg)
}

func TestLocalize_FallsBackToDefaultLanguage(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  writeTranslations(t),
		SupportedLanguages: []string{translator.LanguagePt, translator.LanguageEn},
		DefaultLanguage:    translator.LanguagePt,
	})

	assert.Equal(t, "Olá", translator.Localize("hello", translator.LanguagePt))
	assert.Equal(t, "Somente português", translator.Localize("onlyPt", translator.LanguageEn))
	assert.Equal(t, "missingKey", translator.Localize("missingKey", translator.LanguageEn))
}

func TestInitTranslator_MissingFilesDoNotPanic(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "/path/does/not/exist",
		SupportedLanguages: []string{translator.LanguageEn},
	})

	assert.Equal(t, "hello", translator.Localize("hello", translator.LanguageEn))
}

func TestTranslatorConstants(t *testing.T) {
	assert.Equal(t, "pt", translator.LanguagePt)
	assert.Equal(t, "en", translator.LanguageEn)
	assert.Equal(t, "fr", translator.LanguageFr)
}

func TestBundledTranslationsCoverSameKeys(t *testing.T) {
	folder := filepath.Join("translation")
	for _, lang := range []string{translator.LanguagePt, translator.LanguageEn, translator.LanguageFr} {
		translator.InitTranslator(translator.Config{
			TranslationFolder:  folder,
			SupportedLanguages: []string{lang},
			DefaultLanguage:    lang,
		})
		for _, key := range []string{"obraNotFound", "taskNotFound", "statusOrcamento", "statusExecucao", "statusFinalizada"} {
			assert.NotEqual(t, key, translator.Localize(key, lang), "missing %s in %s", key, lang)
		}
	}
}
