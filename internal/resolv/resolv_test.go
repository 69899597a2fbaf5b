package resolv_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/birkland/mimedb"
	"github.com/birkland/mimedb/internal/resolv"
	"github.com/go-test/deep"
)

func TestParseRef(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "page.html")
	if err := os.WriteFile(existing, []byte("<html></html>"), 0664); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name     string
		arg      string
		expected resolv.Ref
	}{
		{"type", "Application/JSON", resolv.Ref{Arg: "Application/JSON", Kind: resolv.MediaType, Type: "application/json", Known: true}},
		{"typeNotInTable", "application/x-made-up", resolv.Ref{Arg: "application/x-made-up", Kind: resolv.MediaType, Type: "application/x-made-up"}},
		{"extension", "png", resolv.Ref{Arg: "png", Kind: resolv.Extension, Type: "image/png", Known: true}},
		{"dottedExtension", ".CSS", resolv.Ref{Arg: ".CSS", Kind: resolv.Extension, Type: "text/css", Known: true}},
		{"unknownExtension", "nope", resolv.Ref{Arg: "nope", Kind: resolv.Extension}},
		{"filename", "report.pdf", resolv.Ref{Arg: "report.pdf", Kind: resolv.Filename, Type: "application/pdf", Known: true}},
		{"existingFile", existing, resolv.Ref{Arg: existing, Kind: resolv.Filename, Type: "text/html", Known: true}},
	}

	cxt := resolv.NewCxt(mimedb.Default())
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			ref, err := cxt.ParseRef(c.arg)
			if err != nil {
				t.Fatal(err)
			}
			if diff := deep.Equal(c.expected, ref); diff != nil {
				t.Error(diff)
			}
		})
	}
}

func TestParseRefErrors(t *testing.T) {
	cxt := resolv.NewCxt(mimedb.Default())

	for _, arg := range []string{"", "  ", "no/such/file.txt", "text/"} {
		if _, err := cxt.ParseRef(arg); err == nil {
			t.Errorf("%q: expected an error", arg)
		}
	}
}

func TestParseRefs(t *testing.T) {
	cxt := resolv.NewCxt(mimedb.Default())

	refs, err := cxt.ParseRefs([]string{"json", "text/html"})
	if err != nil {
		t.Fatal(err)
	}
	if len(refs) != 2 || refs[0].Type != "application/json" || refs[1].Kind != resolv.MediaType {
		t.Errorf("unexpected refs %+v", refs)
	}

	refs, err = cxt.ParseRefs([]string{"json", "", "html"})
	if err == nil || len(refs) != 1 {
		t.Errorf("expected an error after one resolved ref, got %d refs, err %v", len(refs), err)
	}
}
