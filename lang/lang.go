// Package lang loads the localised messages shown to players.
package lang

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed files/*.yml
var files embed.FS

// Bundle holds the messages of every loaded language.
type Bundle struct {
	def string

	mu    sync.RWMutex
	names map[string]string
	langs map[string]map[string]string
}

// New returns a Bundle with the built-in languages loaded. def is the language used when a player has
// not picked one, or when a message is missing from the language they picked.
func New(def string) (*Bundle, error) {
	b := &Bundle{def: strings.ToLower(def), names: make(map[string]string), langs: make(map[string]map[string]string)}
	entries, err := files.ReadDir("files")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		data, err := files.ReadFile("files/" + e.Name())
		if err != nil {
			return nil, err
		}
		if err := b.add(strings.TrimSuffix(e.Name(), ".yml"), data); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// LoadDir loads every .yml file in dir, merging its messages over any language of the same name.
func (b *Bundle) LoadDir(dir string) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yml"))
	if err != nil {
		return err
	}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("error reading language file: %w", err)
		}
		if err := b.add(strings.TrimSuffix(filepath.Base(path), ".yml"), data); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bundle) add(name string, data []byte) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("error decoding language %s: %w", name, err)
	}
	msgs := make(map[string]string)
	flatten("", raw, msgs)

	b.mu.Lock()
	defer b.mu.Unlock()
	key := strings.ToLower(name)
	b.names[key] = name
	if existing, ok := b.langs[key]; ok {
		for k, v := range msgs {
			existing[k] = v
		}
		return nil
	}
	b.langs[key] = msgs
	return nil
}

func flatten(prefix string, v any, out map[string]string) {
	switch v := v.(type) {
	case map[string]any:
		for k, child := range v {
			if prefix != "" {
				k = prefix + "." + k
			}
			flatten(k, child, out)
		}
	case []any:
		out[prefix] = strings.Join(lo.Map(v, func(line any, _ int) string { return fmt.Sprint(line) }), "\n")
	default:
		out[prefix] = fmt.Sprint(v)
	}
}

// Default returns the name of the default language.
func (b *Bundle) Default() string {
	return b.Name(b.def)
}

// Has checks if a language is loaded. Names are matched case-insensitively.
func (b *Bundle) Has(lang string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.langs[strings.ToLower(lang)]
	return ok
}

// Name returns the name of a language as it was loaded, such as "en_US" for "en_us".
func (b *Bundle) Name(lang string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if n, ok := b.names[strings.ToLower(lang)]; ok {
		return n
	}
	return lang
}

// Available returns the names of all loaded languages, sorted.
func (b *Bundle) Available() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	names := lo.Values(b.names)
	slices.Sort(names)
	return names
}

// Format returns the unformatted message for key in the language passed. It falls back to the
// default language, and then to the key itself.
func (b *Bundle) Format(lang, key string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if msg, ok := b.langs[strings.ToLower(lang)][key]; ok {
		return msg
	}
	if msg, ok := b.langs[b.def][key]; ok {
		return msg
	}
	return key
}

// Translate returns the message for key in the language passed, formatted with args.
func (b *Bundle) Translate(lang, key string, args ...any) string {
	format := b.Format(lang, key)
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
