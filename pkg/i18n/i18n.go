// Package i18n translates interface strings and picks the page language.
package i18n

import (
	"embed"
	"sync"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/language"

	"studio-portfolio/pkg/models"
)

//go:embed locales/*.po
var locales embed.FS

var (
	catalogs map[models.Language]map[string]string
	loadOnce sync.Once

	supported = []language.Tag{language.Romanian, language.English}
	matcher   = language.NewMatcher(supported)
)

func load() {
	catalogs = make(map[models.Language]map[string]string)
	for _, lang := range []models.Language{models.Romanian, models.English} {
		data, err := locales.ReadFile("locales/" + string(lang) + ".po")
		if err != nil {
			continue
		}
		po := gotext.NewPo()
		po.Parse(data)
		catalog := make(map[string]string)
		for msgid, tr := range po.GetDomain().GetTranslations() {
			catalog[msgid] = tr.Get()
		}
		catalogs[lang] = catalog
	}
}

// T translates an interface string, returning msgid when no translation
// exists. Strings are looked up verbatim and never formatted.
func T(lang models.Language, msgid string) string {
	loadOnce.Do(load)
	if translated, ok := catalogs[lang][msgid]; ok && translated != "" {
		return translated
	}
	return msgid
}

// Negotiate picks the page language. An explicit "ro" or "en" query value
// wins, then the Accept-Language header, then the fallback.
func Negotiate(query, acceptLanguage string, fallback models.Language) models.Language {
	switch query {
	case string(models.Romanian):
		return models.Romanian
	case string(models.English):
		return models.English
	}

	if acceptLanguage == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	if supported[index] == language.English {
		return models.English
	}
	return models.Romanian
}

// Toggle returns the other site language
func Toggle(lang models.Language) models.Language {
	if lang == models.English {
		return models.Romanian
	}
	return models.English
}
