// Package i18n resolves translation keys (INVENTORY.BAG.Bag, COMMON.Unknown...)
// against YAML catalogs embedded in the binary.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// DefaultLanguage is used when a key is missing in the requested language.
var DefaultLanguage = language.English

//go:embed locales/*.yaml
var embeddedLocales embed.FS

// Translator resolves keys for one language.
type Translator struct {
	tag      language.Tag
	printer  *message.Printer
	fallback *message.Printer
	keys     map[language.Tag]map[string]struct{}
}

// New loads the embedded catalogs and returns a Translator for lang
// (BCP 47, e.g. "en", "fr", "ja").
func New(lang string) (*Translator, error) {
	return NewFromFS(embeddedLocales, lang)
}

// NewFromFS loads catalogs from locales/<tag>.yaml files in fsys.
func NewFromFS(fsys fs.FS, lang string) (*Translator, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("parsing language %q: %w", lang, err)
	}

	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("listing locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale catalogs found")
	}
	sort.Strings(paths)

	b := catalog.NewBuilder(catalog.Fallback(DefaultLanguage))
	keys := make(map[language.Tag]map[string]struct{})
	supported := []language.Tag{DefaultLanguage}
	for _, p := range paths {
		localeTag, err := language.Parse(strings.TrimSuffix(path.Base(p), ".yaml"))
		if err != nil {
			return nil, fmt.Errorf("parsing locale of %s: %w", p, err)
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("reading catalog %s: %w", p, err)
		}
		messages, err := parseCatalog(data)
		if err != nil {
			return nil, fmt.Errorf("parsing catalog %s: %w", p, err)
		}
		if _, ok := keys[localeTag]; !ok {
			keys[localeTag] = make(map[string]struct{}, len(messages))
			if localeTag != DefaultLanguage {
				supported = append(supported, localeTag)
			}
		}
		for key, text := range messages {
			// Catalog text is a printf format for message.Printer; translations are plain text.
			if err := b.SetString(localeTag, key, strings.ReplaceAll(text, "%", "%%")); err != nil {
				return nil, fmt.Errorf("registering %s in %s: %w", key, p, err)
			}
			keys[localeTag][key] = struct{}{}
		}
	}
	if _, ok := keys[DefaultLanguage]; !ok {
		return nil, fmt.Errorf("catalog for default language %s is missing", DefaultLanguage)
	}

	// Requests like en-GB or pt-BR resolve to the closest catalog; no match
	// at all resolves to DefaultLanguage.
	_, idx, _ := language.NewMatcher(supported).Match(tag)
	matched := supported[idx]

	return &Translator{
		tag:      matched,
		printer:  message.NewPrinter(matched, message.Catalog(b)),
		fallback: message.NewPrinter(DefaultLanguage, message.Catalog(b)),
		keys:     keys,
	}, nil
}

// Language returns the catalog language the translator resolved to.
func (t *Translator) Language() language.Tag {
	return t.tag
}

// Instant returns the text for key. Unknown keys are returned unchanged.
func (t *Translator) Instant(key string) string {
	if _, ok := t.keys[t.tag][key]; ok {
		return t.printer.Sprintf(key)
	}
	if _, ok := t.keys[DefaultLanguage][key]; ok {
		return t.fallback.Sprintf(key)
	}
	return key
}

// parseCatalog flattens a nested YAML document into dot separated keys.
func parseCatalog(data []byte) (map[string]string, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	out := make(map[string]string)
	if err := flatten("", root, out); err != nil {
		return nil, err
	}
	return out, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) error {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		case string:
			out[key] = val
		default:
			return fmt.Errorf("key %s: unsupported value %v", key, v)
		}
	}
	return nil
}
