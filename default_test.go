package mimedb_test

import (
	"bytes"
	encjson "encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/birkland/mimedb"
	"github.com/birkland/mimedb/mediatype"
	"github.com/go-test/deep"
	jsoniter "github.com/json-iterator/go"
)

// Counts the keys in the raw snapshot, including any repeats a map decode would hide
func rawKeys(t *testing.T) []string {
	data, err := os.ReadFile("db.json")
	if err != nil {
		t.Fatal(err)
	}

	var keys []string
	iter := jsoniter.ParseBytes(jsoniter.ConfigCompatibleWithStandardLibrary, data)
	iter.ReadMapCB(func(it *jsoniter.Iterator, key string) bool {
		keys = append(keys, key)
		it.Skip()
		return true
	})
	if iter.Error != nil {
		t.Fatal(iter.Error)
	}
	return keys
}

func TestDefaultUniqueTypes(t *testing.T) {
	keys := rawKeys(t)

	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			t.Errorf("media type %s appears more than once", k)
		}
		seen[k] = true
	}

	if mimedb.Default().Len() != len(keys) {
		t.Errorf("expected %d types, table has %d", len(keys), mimedb.Default().Len())
	}
}

func TestDefaultWellFormed(t *testing.T) {
	for _, typ := range mimedb.Default().Types() {
		if !mediatype.Valid(typ) {
			t.Errorf("%s is not a well-formed media type", typ)
		}
	}
}

func TestDefaultExtensionsNormalized(t *testing.T) {
	err := mimedb.Default().Each(func(typ string, e mimedb.Entry) error {
		if e.Extensions != nil && len(e.Extensions) == 0 {
			t.Errorf("%s has an empty extension list", typ)
		}
		for _, ext := range e.Extensions {
			if strings.HasPrefix(ext, ".") || strings.ToLower(ext) != ext {
				t.Errorf("%s: extension %q is not normalized", typ, ext)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := mimedb.Default().Validate(); err != nil {
		t.Errorf("embedded table does not validate: %s", err)
	}
}

func TestDefaultCompressible(t *testing.T) {
	cases := map[string]mimedb.Compressibility{
		"application/json":                        mimedb.Compressible,
		"image/jpeg":                              mimedb.Incompressible,
		"application/x-unknown-type-not-in-table": mimedb.CompressibilityUnknown,
	}

	for typ, expected := range cases {
		if got := mimedb.IsCompressible(typ); got != expected {
			t.Errorf("%s: expected %s, got %s", typ, expected, got)
		}
	}
}

func TestDefaultReverseLookupComplete(t *testing.T) {
	err := mimedb.Default().Each(func(typ string, e mimedb.Entry) error {
		for _, ext := range e.Extensions {
			found := false
			for _, candidate := range mimedb.TypesByExtension(ext) {
				found = found || candidate == typ
			}
			if !found {
				t.Errorf("extension %s does not lead back to %s", ext, typ)
			}
			if _, ok := mimedb.TypeByExtension(ext); !ok {
				t.Errorf("extension %s has no preferred type", ext)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestDefaultRoundTrip(t *testing.T) {
	data, err := os.ReadFile("db.json")
	if err != nil {
		t.Fatal(err)
	}

	var original map[string]mimedb.Entry
	if err := encjson.Unmarshal(data, &original); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := mimedb.Default().Serialize(&buf); err != nil {
		t.Fatal(err)
	}

	var reread map[string]mimedb.Entry
	if err := encjson.Unmarshal(buf.Bytes(), &reread); err != nil {
		t.Fatal(err)
	}

	if diff := deep.Equal(original, reread); diff != nil {
		t.Error(diff)
	}
}

func TestDefaultScenarios(t *testing.T) {
	entry, ok := mimedb.Lookup("application/json")
	if !ok {
		t.Fatal("application/json not found")
	}
	expected := mimedb.Entry{
		Source:       mimedb.SourceIANA,
		Charset:      "UTF-8",
		Compressible: &yes,
		Extensions:   []string{"json", "map"},
	}
	if diff := deep.Equal(expected, entry); diff != nil {
		t.Errorf("application/json: %s", diff)
	}

	if diff := deep.Equal([]string{"html", "htm", "shtml"}, mimedb.Extensions("text/html")); diff != nil {
		t.Errorf("text/html extensions: %s", diff)
	}

	if diff := deep.Equal([]string{"audio/wav", "audio/wave", "audio/x-wav"}, mimedb.TypesByExtension("wav")); diff != nil {
		t.Errorf("wav types: %s", diff)
	}

	if _, ok := mimedb.Lookup("application/x-totally-made-up"); ok {
		t.Errorf("made up type should not be found")
	}
}

func TestDefaultPreferredTypes(t *testing.T) {
	cases := map[string]string{
		"html": "text/html",
		"json": "application/json",
		"xml":  "application/xml",
		"wav":  "audio/wave",
		"mp3":  "audio/mpeg",
		"exe":  "application/x-msdos-program",
		"rtf":  "application/rtf",
		"js":   "application/javascript",
		"bin":  "application/octet-stream",
		"yml":  "text/yaml",
		"png":  "image/png",
	}

	for ext, expected := range cases {
		if got, _ := mimedb.TypeByExtension(ext); got != expected {
			t.Errorf("%s: expected %s, got %s", ext, expected, got)
		}
	}
}
