package i18n

import (
	"fmt"
	"io/fs"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLanguage is used when the requested locale matches nothing.
const DefaultLanguage = "zh-TW"

// Catalog holds the word forms of every configured language.
type Catalog struct {
	bundle    *goi18n.Bundle
	fallback  language.Tag
	available []language.Tag
}

// Load reads every *.yaml message file in files. The file name is the language tag.
func Load(files fs.FS, fallback string) (*Catalog, error) {
	fallbackTag, err := language.Parse(fallback)
	if err != nil {
		return nil, fmt.Errorf("parse fallback language %q: %w", fallback, err)
	}

	bundle := goi18n.NewBundle(fallbackTag)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	paths, err := fs.Glob(files, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("list locale files: %w", err)
	}

	catalog := &Catalog{
		bundle:   bundle,
		fallback: fallbackTag,
	}
	for _, path := range paths {
		file, err := bundle.LoadMessageFileFS(files, path)
		if err != nil {
			return nil, fmt.Errorf("load locale file %s: %w", path, err)
		}
		if !catalog.has(file.Tag) {
			catalog.available = append(catalog.available, file.Tag)
		}
	}
	if !catalog.has(fallbackTag) {
		return nil, fmt.Errorf("fallback language %s has no locale file", fallbackTag)
	}
	return catalog, nil
}

// Languages lists the configured language tags.
func (catalog *Catalog) Languages() []string {
	tags := make([]string, 0, len(catalog.available))
	for _, tag := range catalog.available {
		tags = append(tags, tag.String())
	}
	return tags
}

// Resolve picks the configured language for a host locale tag.
func (catalog *Catalog) Resolve(requested string) language.Tag {
	return Resolve(requested, catalog.available, catalog.fallback)
}

// Translator returns the word forms for the language resolved from requested.
func (catalog *Catalog) Translator(requested string) (*Translator, error) {
	return newTranslator(catalog.bundle, catalog.Resolve(requested))
}

func (catalog *Catalog) has(tag language.Tag) bool {
	for _, candidate := range catalog.available {
		if candidate.String() == tag.String() {
			return true
		}
	}
	return false
}

// Resolve matches requested against available: exact tag first, then the base
// language subtag, then fallback. Unparseable input resolves to fallback.
func Resolve(requested string, available []language.Tag, fallback language.Tag) language.Tag {
	tag, err := language.Parse(normalizeTag(requested))
	if err != nil || tag == language.Und {
		return fallback
	}

	for _, candidate := range available {
		if candidate.String() == tag.String() {
			return candidate
		}
	}

	base, confidence := tag.Base()
	if confidence == language.No {
		return fallback
	}
	for _, candidate := range available {
		if candidateBase, _ := candidate.Base(); candidateBase == base {
			return candidate
		}
	}
	return fallback
}

// normalizeTag turns POSIX locale names like "ja_JP.UTF-8" into BCP 47 form.
func normalizeTag(value string) string {
	value = strings.TrimSpace(value)
	if index := strings.IndexAny(value, ".@"); index >= 0 {
		value = value[:index]
	}
	return strings.ReplaceAll(value, "_", "-")
}
