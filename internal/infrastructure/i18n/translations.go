package i18n

import (
	"embed"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"meetmatch/internal/domain/availability"
	"meetmatch/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var localeFiles = []string{"active.en.toml", "active.fr.toml", "active.zh-TW.toml"}

// Ensure Translator implements the output.T port.
var _ output.T = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle          *i18n.Bundle
	tags            []language.Tag
	matcher         language.Matcher
	defaultLanguage language.Tag
	logger          *zap.Logger
}

// NewTranslator builds a Translator backed by go-i18n using the given default
// locale (e.g. "en"). Translations come from the embedded active.*.toml files.
func NewTranslator(defaultLocale string, logger *zap.Logger) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			logger.Error("i18n: failed to load message file", zap.String("file", file), zap.Error(err))
		}
	}

	tags := bundle.LanguageTags()
	return &Translator{
		bundle:          bundle,
		tags:            tags,
		matcher:         language.NewMatcher(tags),
		defaultLanguage: tag,
		logger:          logger,
	}
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.logger.Debug("i18n: localize failed",
			zap.String("key", key),
			zap.Strings("locales", languages),
			zap.Error(err))
		return key
	}
	return msg
}

// Locale returns the loaded locale closest to prefs.
func (t *Translator) Locale(prefs ...string) string {
	var nonEmpty []string
	for _, p := range prefs {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	if len(nonEmpty) == 0 || len(t.tags) == 0 {
		return t.defaultLanguage.String()
	}
	_, idx, conf := t.matcher.Match(parseTags(nonEmpty)...)
	if conf == language.No {
		return t.defaultLanguage.String()
	}
	return t.tags[idx].String()
}

func parseTags(prefs []string) []language.Tag {
	var tags []language.Tag
	for _, p := range prefs {
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	return tags
}

// Weekdays returns the localized weekday table for locale, falling back to
// English for any missing label.
func (t *Translator) Weekdays(locale string) availability.WeekdayTable {
	table := availability.EnglishWeekdays
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		key := "weekday_" + availability.WeekdayKey(wd)
		if label := t.T(locale, key, nil); label != key {
			table[wd].Label = label
		}
		if short := t.T(locale, key+"_short", nil); short != key+"_short" {
			table[wd].Short = short
		}
	}
	return table
}
