package fileinput

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEmbeddedLocales(t *testing.T) {
	tests := []struct {
		tag    string
		browse string
	}{
		{"en", "Browse"},
		{"de", "Durchsuchen"},
		{"fr", "Parcourir"},
		{"es", "Examinar"},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			l, ok := LookupLocale(tt.tag)
			if !ok {
				t.Fatalf("locale %q not found", tt.tag)
			}
			if l.BrowseButtonText != tt.browse {
				t.Errorf("browse = %q, want %q", l.BrowseButtonText, tt.browse)
			}
			if l.Placeholder == "" || l.ClearButtonText == "" {
				t.Error("locale text incomplete")
			}
		})
	}
}

func TestEnglishMatchesEmbeddedFile(t *testing.T) {
	l, _ := LookupLocale("en")
	if diff := cmp.Diff(English, l); diff != "" {
		t.Errorf("embedded en differs from English (-want +got):\n%s", diff)
	}
}

func TestLookupLocaleRegionFallback(t *testing.T) {
	for _, tag := range []string{"de-AT", "DE_ch", " de "} {
		l, ok := LookupLocale(tag)
		if !ok || l.Tag != "de" {
			t.Errorf("LookupLocale(%q) = %q, %v", tag, l.Tag, ok)
		}
	}
	if _, ok := LookupLocale("tlh"); ok {
		t.Error("unknown locale should not be found")
	}
}

func TestLocaleForFallsBackToEnglish(t *testing.T) {
	if got := LocaleFor("zz-ZZ"); got != English {
		t.Errorf("LocaleFor(zz-ZZ) = %+v", got)
	}
}

func TestRegisterLocale(t *testing.T) {
	RegisterLocale(Locale{Tag: "PT_br", Placeholder: "Escolher arquivo...", BrowseButtonText: "Procurar", ClearButtonText: "Remover"})

	l, ok := LookupLocale("pt-BR")
	if !ok || l.BrowseButtonText != "Procurar" {
		t.Fatalf("registered locale not found: %+v %v", l, ok)
	}
	if !slices.Contains(LocaleTags(), "pt-br") {
		t.Errorf("LocaleTags() = %v", LocaleTags())
	}
}

func TestLocaleTagsSorted(t *testing.T) {
	tags := LocaleTags()
	if !slices.IsSorted(tags) {
		t.Errorf("tags not sorted: %v", tags)
	}
	for _, want := range []string{"de", "en", "es", "fr"} {
		if !slices.Contains(tags, want) {
			t.Errorf("missing %q in %v", want, tags)
		}
	}
}

func TestDecodeLocale(t *testing.T) {
	l, err := DecodeLocale(strings.NewReader(`
tag = "IT"
placeholder = "Scegli file..."
browse_button_text = "Sfoglia"
clear_button_text = "Rimuovi"
`))
	if err != nil {
		t.Fatal(err)
	}
	if l.Tag != "it" || l.BrowseButtonText != "Sfoglia" {
		t.Errorf("decoded %+v", l)
	}
}

func TestDecodeLocaleErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "tag = \"it\"\nbrowse = \"Sfoglia\"\n"},
		{"missing tag", "placeholder = \"x\"\n"},
		{"bad syntax", "tag = \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeLocale(strings.NewReader(tt.doc)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
