package mimedb_test

import (
	"testing"

	"github.com/birkland/mimedb"
)

func TestSourceRoundTrip(t *testing.T) {
	for _, src := range []mimedb.Source{mimedb.SourceNone, mimedb.SourceNginx, mimedb.SourceApache, mimedb.SourceIANA} {
		src := src
		t.Run(src.String(), func(t *testing.T) {
			rt, err := mimedb.ParseSource(src.String())
			if err != nil {
				t.Fatal(err)
			}
			if rt != src {
				t.Errorf("Roundtrip failed for %s, got %s", src, rt)
			}
		})
	}
}

func TestParseSource(t *testing.T) {
	cases := []struct {
		name      string
		expected  mimedb.Source
		expectErr bool
	}{
		{"", mimedb.SourceNone, false},
		{"none", mimedb.SourceNone, false},
		{"IANA", mimedb.SourceIANA, false},
		{" apache ", mimedb.SourceApache, false},
		{"nginx", mimedb.SourceNginx, false},
		{"w3c", mimedb.SourceNone, true},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			src, err := mimedb.ParseSource(c.name)
			if (err != nil) != c.expectErr {
				t.Fatalf("expected error: %t, got error: %v", c.expectErr, err)
			}
			if src != c.expected {
				t.Errorf("expected %s, got %s", c.expected, src)
			}
		})
	}
}

func TestSourceText(t *testing.T) {
	text, err := mimedb.SourceIANA.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(text) != "iana" {
		t.Errorf("expected iana, got %s", text)
	}

	var src mimedb.Source
	if err := src.UnmarshalText([]byte("apache")); err != nil {
		t.Fatal(err)
	}
	if src != mimedb.SourceApache {
		t.Errorf("expected apache, got %s", src)
	}

	if err := src.UnmarshalText([]byte("bogus")); err == nil {
		t.Errorf("expected an error decoding an unknown source")
	}

	if _, err := mimedb.Source(42).MarshalText(); err == nil {
		t.Errorf("expected an error encoding an out of range source")
	}
}
