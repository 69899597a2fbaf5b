package mediatype_test

import (
	"testing"

	"github.com/birkland/mimedb/mediatype"
	"github.com/go-test/deep"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input     string
		expected  mediatype.MediaType
		expectErr bool
	}{
		{"text/html", mediatype.MediaType{Type: "text", Subtype: "html"}, false},
		{"Application/LD+JSON", mediatype.MediaType{Type: "application", Subtype: "ld", Suffix: "json"}, false},
		{"application/vnd.api+json; charset=utf-8", mediatype.MediaType{Type: "application", Subtype: "vnd.api", Suffix: "json"}, false},
		{" image/svg+xml ", mediatype.MediaType{Type: "image", Subtype: "svg", Suffix: "xml"}, false},
		{"audio/amr-wb+", mediatype.MediaType{Type: "audio", Subtype: "amr-wb+"}, false},
		{"text", mediatype.MediaType{}, true},
		{"text/", mediatype.MediaType{}, true},
		{"/html", mediatype.MediaType{}, true},
		{"te xt/html", mediatype.MediaType{}, true},
		{"text/html/extra", mediatype.MediaType{}, true},
		{"", mediatype.MediaType{}, true},
	}

	for _, c := range cases {
		c := c
		t.Run(c.input, func(t *testing.T) {
			m, err := mediatype.Parse(c.input)
			if (err != nil) != c.expectErr {
				t.Fatalf("expected error: %t, got error: %v", c.expectErr, err)
			}
			if diff := deep.Equal(c.expected, m); diff != nil {
				t.Error(diff)
			}
		})
	}
}

func TestString(t *testing.T) {
	for _, s := range []string{"text/html", "application/ld+json", "audio/amr-wb+", "application/vnd.oasis.opendocument.text"} {
		m, err := mediatype.Parse(s)
		if err != nil {
			t.Fatal(err)
		}
		if m.String() != s {
			t.Errorf("expected %s, got %s", s, m)
		}
	}
}

func TestEssence(t *testing.T) {
	cases := map[string]string{
		"application/ld+json": "application/ld",
		"text/html":           "text/html",
		"audio/amr-wb+":       "audio/amr-wb+",
	}

	for s, expected := range cases {
		m, err := mediatype.Parse(s)
		if err != nil {
			t.Fatal(err)
		}
		if m.Essence() != expected {
			t.Errorf("expected %s, got %s", expected, m.Essence())
		}
	}
}

func TestValid(t *testing.T) {
	cases := map[string]bool{
		"application/json":            true,
		"application/vnd.ms-excel":    true,
		"image/svg+xml":               true,
		"Application/JSON":            false,
		"application/json; charset=x": false,
		" text/plain":                 false,
		"text":                        false,
	}

	for s, expected := range cases {
		if mediatype.Valid(s) != expected {
			t.Errorf("%q: expected valid %t", s, expected)
		}
	}
}

func TestParseParams(t *testing.T) {
	typ, params, err := mediatype.ParseParams(`Text/HTML; Charset="UTF-8"; q=1`)
	if err != nil {
		t.Fatal(err)
	}
	if typ != "text/html" {
		t.Errorf("expected text/html, got %s", typ)
	}
	if diff := deep.Equal(map[string]string{"charset": "UTF-8", "q": "1"}, params); diff != nil {
		t.Error(diff)
	}

	if _, _, err := mediatype.ParseParams("text/html; charset"); err == nil {
		t.Errorf("expected an error for a malformed parameter")
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		name     string
		typ      string
		params   map[string]string
		expected string
	}{
		{"bare", "text/plain", nil, "text/plain"},
		{"charset", "text/plain", map[string]string{"charset": "UTF-8"}, "text/plain; charset=UTF-8"},
		{"sorted", "text/plain", map[string]string{"b": "2", "a": "1"}, "text/plain; a=1; b=2"},
		{"quoted", "text/plain", map[string]string{"name": "a b"}, `text/plain; name="a b"`},
		{"invalid", "text/pl ain", nil, ""},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			if got := mediatype.Format(c.typ, c.params); got != c.expected {
				t.Errorf("expected %q, got %q", c.expected, got)
			}
		})
	}
}
