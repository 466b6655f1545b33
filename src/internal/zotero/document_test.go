package zotero

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDocumentEmpty(t *testing.T) {
	out, err := NewDocument().Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	s := string(out)
	if !strings.HasPrefix(s, xml.Header) {
		t.Fatalf("missing xml declaration:\n%s", s)
	}
	for _, ns := range []string{
		`xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"`,
		`xmlns:z="http://www.zotero.org/namespaces/export#"`,
		`xmlns:dc="http://purl.org/dc/elements/1.1/"`,
		`xmlns:vcard="http://nwalsh.com/rdf/vCard#"`,
		`xmlns:foaf="http://xmlns.com/foaf/0.1/"`,
		`xmlns:dcterms="http://purl.org/dc/terms/"`,
		`xmlns:bib="http://purl.org/net/biblio#"`,
	} {
		if !strings.Contains(s, ns) {
			t.Fatalf("missing namespace declaration %q in:\n%s", ns, s)
		}
	}
	if strings.Contains(s, "ConferenceProceedings") {
		t.Fatalf("empty document should have no records:\n%s", s)
	}
	// still well-formed
	var probe struct{}
	if err := xml.Unmarshal(out, &probe); err != nil {
		t.Fatalf("empty document not well-formed: %v", err)
	}
}

func TestDocumentOwnsRecords(t *testing.T) {
	a := NewDocument()
	b := NewDocument()
	a.AddRecord(BuildPresentation(Record{Title: "only in a"}))
	out, err := b.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if strings.Contains(string(out), "only in a") {
		t.Fatalf("documents must not share record storage")
	}
}

func TestDocumentWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.xml")

	doc := NewDocument()
	doc.AddRecord(BuildPresentation(Record{Title: "A Talk", AboutURI: "https://example.org/item/1"}))
	doc.AddRecord(BuildPresentation(Record{Title: "B Talk"}))
	if err := doc.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(first), "<dc:title>A Talk</dc:title>") ||
		!strings.Contains(string(first), "<dc:title>B Talk</dc:title>") {
		t.Fatalf("records missing from output:\n%s", first)
	}
	if i := strings.Index(string(first), "A Talk"); i > strings.Index(string(first), "B Talk") {
		t.Fatalf("record order not preserved:\n%s", first)
	}

	// overwriting write is deterministic
	if err := doc.WriteFile(path); err != nil {
		t.Fatalf("WriteFile again: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("repeated writes differ")
	}
}

func TestDocumentWriteFileBadPath(t *testing.T) {
	doc := NewDocument()
	if err := doc.WriteFile(filepath.Join(t.TempDir(), "no-such-dir", "out.xml")); err == nil {
		t.Fatalf("WriteFile to missing directory: want error")
	}
}
