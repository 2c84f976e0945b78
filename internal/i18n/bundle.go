// Package i18n loads localized UI text catalogs and resolves text keys such as
// "label.general.ok" for a negotiated locale.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var embeddedLocales embed.FS

var (
	ErrMissingTranslation = errors.New("missing translation")
	ErrNoCatalogs         = errors.New("no locale catalogs found")
	ErrUnknownLocale      = errors.New("default locale has no catalog")
)

// Bundle holds one flat key -> text catalog per supported locale.
// It is read-only after loading and safe for concurrent use.
type Bundle struct {
	defaultTag language.Tag
	tags       []language.Tag
	catalogs   map[language.Tag]map[string]string
	matcher    language.Matcher
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded(defaultLocale string) (*Bundle, error) {
	return load(embeddedLocales, "locales", defaultLocale)
}

// LoadDir loads <locale>.yaml catalogs from dir.
func LoadDir(dir, defaultLocale string) (*Bundle, error) {
	return load(os.DirFS(dir), ".", defaultLocale)
}

func load(fsys fs.FS, root, defaultLocale string) (*Bundle, error) {
	defaultTag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("invalid default locale %q: %w", defaultLocale, err)
	}

	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale directory: %w", err)
	}

	catalogs := make(map[language.Tag]map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		ext := path.Ext(name)
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}

		tag, err := language.Parse(strings.TrimSuffix(name, ext))
		if err != nil {
			log.Warnf("Skipping locale file %s: %v", name, err)
			continue
		}

		data, err := fs.ReadFile(fsys, path.Join(root, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}

		catalog, err := parseCatalog(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		catalogs[tag] = catalog
		log.Debugf("Loaded %d messages for locale %s", len(catalog), tag)
	}

	if len(catalogs) == 0 {
		return nil, ErrNoCatalogs
	}
	if _, ok := catalogs[defaultTag]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLocale, defaultTag)
	}

	// The default goes first so the matcher falls back to it.
	tags := []language.Tag{defaultTag}
	var others []language.Tag
	for tag := range catalogs {
		if tag != defaultTag {
			others = append(others, tag)
		}
	}
	sort.Slice(others, func(i, j int) bool { return others[i].String() < others[j].String() })
	tags = append(tags, others...)

	return &Bundle{
		defaultTag: defaultTag,
		tags:       tags,
		catalogs:   catalogs,
		matcher:    language.NewMatcher(tags),
	}, nil
}

// parseCatalog flattens nested YAML maps into dotted keys.
func parseCatalog(data []byte) (map[string]string, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make(map[string]string)
	if err := flatten("", raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

func flatten(prefix string, node map[string]interface{}, out map[string]string) error {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]interface{}:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		case string:
			out[key] = val
		case nil:
			out[key] = ""
		case []interface{}:
			return fmt.Errorf("key %q: lists are not supported", key)
		default:
			out[key] = fmt.Sprint(val)
		}
	}
	return nil
}

// Locales returns the supported locales, default first.
func (b *Bundle) Locales() []language.Tag {
	out := make([]language.Tag, len(b.tags))
	copy(out, b.tags)
	return out
}

// DefaultLocale returns the fallback locale.
func (b *Bundle) DefaultLocale() language.Tag {
	return b.defaultTag
}

// Match negotiates the best supported locale. Each preference may be a locale
// code ("fr-CA") or a full Accept-Language header value. Unparseable or
// unsupported preferences fall back to the default locale.
func (b *Bundle) Match(preferences ...string) language.Tag {
	var want []language.Tag
	for _, p := range preferences {
		if strings.TrimSpace(p) == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			log.Debugf("Ignoring locale preference %q: %v", p, err)
			continue
		}
		want = append(want, tags...)
	}
	if len(want) == 0 {
		return b.defaultTag
	}

	_, index, confidence := b.matcher.Match(want...)
	if confidence == language.No {
		return b.defaultTag
	}
	return b.tags[index]
}

// Localizer returns a translator for the closest supported match to tag.
// Unsupported tags use the default locale.
func (b *Bundle) Localizer(tag language.Tag) *Localizer {
	if _, ok := b.catalogs[tag]; !ok {
		_, index, confidence := b.matcher.Match(tag)
		if confidence == language.No {
			tag = b.defaultTag
		} else {
			tag = b.tags[index]
		}
	}
	return &Localizer{bundle: b, tag: tag}
}

// Localizer translates keys for a single locale.
type Localizer struct {
	bundle *Bundle
	tag    language.Tag
}

// Locale returns the locale the localizer translates into.
func (l *Localizer) Locale() language.Tag {
	return l.tag
}

// Translate returns the text for key, falling back to the default locale when
// the key is absent. Empty text counts as absent.
func (l *Localizer) Translate(key string) (string, error) {
	if text := l.bundle.catalogs[l.tag][key]; text != "" {
		return text, nil
	}
	if l.tag != l.bundle.defaultTag {
		if text := l.bundle.catalogs[l.bundle.defaultTag][key]; text != "" {
			log.Warnf("Key %s missing for locale %s, using %s", key, l.tag, l.bundle.defaultTag)
			return text, nil
		}
	}
	return "", fmt.Errorf("%w: %q (locale %s)", ErrMissingTranslation, key, l.tag)
}
