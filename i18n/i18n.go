// Package i18n provides the translation lookup used by the dashboard views.
package i18n

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultLanguage is used when no language is configured and as the
// fallback for keys missing from another catalog.
const DefaultLanguage = "en"

// Translation keys used by the dashboard.
const (
	KeyTitle             = "nav.players_stats"
	KeyConcurrentPlayers = "players_stats.concurrent_players"
	KeyLoading           = "players_stats.loading"
	KeyEmpty             = "players_stats.empty"
	KeyRefreshed         = "players_stats.refreshed"
	KeyWindow            = "players_stats.window"
	KeyBucket            = "players_stats.bucket"
	KeyPoints            = "players_stats.points"
)

//go:embed locales/*.yaml
var locales embed.FS

// Translator maps string keys to display text.
type Translator struct {
	lang     string
	messages map[string]string
	fallback map[string]string
}

// New loads the catalog for lang, falling back to DefaultLanguage for
// missing keys.
func New(lang string) (*Translator, error) {
	if lang == "" {
		lang = DefaultLanguage
	}

	fallback, err := loadCatalog(DefaultLanguage)
	if err != nil {
		return nil, err
	}

	messages := fallback
	if lang != DefaultLanguage {
		messages, err = loadCatalog(lang)
		if err != nil {
			return nil, err
		}
	}

	return &Translator{lang: lang, messages: messages, fallback: fallback}, nil
}

// MustNew is like New but panics on error. Only use with known languages.
func MustNew(lang string) *Translator {
	t, err := New(lang)
	if err != nil {
		panic(err)
	}
	return t
}

// Language returns the active language.
func (t *Translator) Language() string {
	return t.lang
}

// T returns the text for key. Unknown keys are returned unchanged.
func (t *Translator) T(key string) string {
	if t == nil {
		return key
	}
	if msg, ok := t.messages[key]; ok {
		return msg
	}
	if msg, ok := t.fallback[key]; ok {
		return msg
	}
	return key
}

// Languages lists the embedded catalogs.
func Languages() []string {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return []string{DefaultLanguage}
	}

	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(langs)
	return langs
}

func loadCatalog(lang string) (map[string]string, error) {
	data, err := locales.ReadFile("locales/" + lang + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unsupported language %q", lang)
	}

	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("failed to parse %s catalog: %w", lang, err)
	}

	messages := make(map[string]string)
	flatten(tree, "", messages)
	return messages, nil
}

func flatten(tree map[string]any, prefix string, out map[string]string) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(val, key, out)
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}
