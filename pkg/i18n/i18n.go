// Package i18n turns message ids into human-readable text in the caller's
// language. Locale files are embedded and named active.<lang>.json.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var locales embed.FS

type Translator struct {
	bundle   *goi18n.Bundle
	fallback *goi18n.Localizer
}

func New(defaultLang string) (*Translator, error) {
	tag, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("i18n: default language %q: %w", defaultLang, err)
	}

	bundle := goi18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	files, err := fs.Glob(locales, "locales/*.json")
	if err != nil {
		return nil, err
	}
	for _, name := range files {
		buf, err := locales.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(buf, name); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", name, err)
		}
	}

	return &Translator{
		bundle:   bundle,
		fallback: goi18n.NewLocalizer(bundle, tag.String()),
	}, nil
}

// Message localizes id for the first supported language in langs, which
// accepts raw Accept-Language values. Unknown ids come back unchanged.
func (t *Translator) Message(id string, langs ...string) string {
	if t == nil {
		return id
	}
	cfg := &goi18n.LocalizeConfig{MessageID: id}

	msg, err := goi18n.NewLocalizer(t.bundle, langs...).Localize(cfg)
	if err == nil && msg != "" {
		return msg
	}
	if msg, err = t.fallback.Localize(cfg); err == nil && msg != "" {
		return msg
	}
	return id
}
