package fileinput

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// DefaultLocaleTag is the locale used when no other locale matches.
const DefaultLocaleTag = "en"

// Locale holds the display text a widget uses unless overridden.
type Locale struct {
	Tag              string `toml:"tag"`
	Placeholder      string `toml:"placeholder"`
	BrowseButtonText string `toml:"browse_button_text"`
	ClearButtonText  string `toml:"clear_button_text"`
}

// English is the built-in default text.
var English = Locale{
	Tag:              DefaultLocaleTag,
	Placeholder:      "Choose file...",
	BrowseButtonText: "Browse",
	ClearButtonText:  "Remove",
}

//go:embed locales/*.toml
var localeFiles embed.FS

var (
	localesOnce sync.Once
	localesMu   sync.RWMutex
	locales     map[string]Locale
)

// loadLocales decodes the embedded locale table once. A broken embedded
// file is a build defect, so it panics.
func loadLocales() {
	localesOnce.Do(func() {
		table := map[string]Locale{DefaultLocaleTag: English}
		paths, err := fs.Glob(localeFiles, "locales/*.toml")
		if err != nil {
			panic(fmt.Sprintf("fileinput: list locales: %v", err))
		}
		for _, p := range paths {
			data, err := localeFiles.ReadFile(p)
			if err != nil {
				panic(fmt.Sprintf("fileinput: read %s: %v", p, err))
			}
			l, err := DecodeLocale(bytes.NewReader(data))
			if err != nil {
				panic(fmt.Sprintf("fileinput: %s: %v", p, err))
			}
			table[l.Tag] = l
		}
		localesMu.Lock()
		locales = table
		localesMu.Unlock()
	})
}

// DecodeLocale reads a TOML locale. Unknown keys and a missing tag are errors.
func DecodeLocale(r io.Reader) (Locale, error) {
	var l Locale
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&l); err != nil {
		return Locale{}, fmt.Errorf("decode locale: %w", err)
	}
	l.Tag = normalizeTag(l.Tag)
	if l.Tag == "" {
		return Locale{}, fmt.Errorf("decode locale: missing tag")
	}
	return l, nil
}

// RegisterLocale adds or replaces a locale in the process-wide table.
func RegisterLocale(l Locale) {
	loadLocales()
	l.Tag = normalizeTag(l.Tag)
	localesMu.Lock()
	locales[l.Tag] = l
	localesMu.Unlock()
}

// LookupLocale returns the locale registered for tag. Region subtags fall
// back to the base language ("de-AT" finds "de").
func LookupLocale(tag string) (Locale, bool) {
	loadLocales()
	tag = normalizeTag(tag)
	localesMu.RLock()
	defer localesMu.RUnlock()
	if l, ok := locales[tag]; ok {
		return l, true
	}
	if base, _, found := strings.Cut(tag, "-"); found {
		if l, ok := locales[base]; ok {
			return l, true
		}
	}
	return Locale{}, false
}

// LocaleFor returns the locale for tag, or English.
func LocaleFor(tag string) Locale {
	if l, ok := LookupLocale(tag); ok {
		return l
	}
	return English
}

// LocaleTags lists the registered tags, sorted.
func LocaleTags() []string {
	loadLocales()
	localesMu.RLock()
	defer localesMu.RUnlock()
	tags := make([]string, 0, len(locales))
	for t := range locales {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(tag), "_", "-"))
}
