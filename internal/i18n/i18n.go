// Package i18n translates user-facing labels. Translations are embedded YAML
// files loaded into a go-i18n bundle.
package i18n

import (
	"embed"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"circlecalc/internal/logging"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
)

// Init loads the embedded translations and selects lang. Unknown languages
// fall back to English.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			logging.Warnf("read locale %s: %v", f.Name(), err)
			continue
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			logging.Warnf("parse locale %s: %v", f.Name(), err)
		}
	}

	localizer = i18n.NewLocalizer(bundle, lang)
}

// T translates messageID. The ID itself is returned when no translation
// exists.
func T(messageID string) string {
	return Tf(messageID, nil)
}

// Tf translates messageID, filling template fields from data.
func Tf(messageID string, data map[string]any) string {
	if localizer == nil {
		Init("en")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}

// Tag parses lang into a language tag, falling back to English.
func Tag(lang string) language.Tag {
	tag, err := language.Parse(lang)
	if err != nil {
		logging.Warnf("unknown locale %q, using en", lang)
		return language.English
	}
	return tag
}
