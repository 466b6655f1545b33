package zotero

import (
	"encoding/xml"
	"fmt"
	"os"
)

// Namespace declarations carried by the document root. The vocabulary
// prefixes are fixed; rdf itself is declared too since record elements use it.
var rootAttrs = []xml.Attr{
	{Name: xml.Name{Local: "xmlns:rdf"}, Value: "http://www.w3.org/1999/02/22-rdf-syntax-ns#"},
	{Name: xml.Name{Local: "xmlns:z"}, Value: "http://www.zotero.org/namespaces/export#"},
	{Name: xml.Name{Local: "xmlns:dc"}, Value: "http://purl.org/dc/elements/1.1/"},
	{Name: xml.Name{Local: "xmlns:vcard"}, Value: "http://nwalsh.com/rdf/vCard#"},
	{Name: xml.Name{Local: "xmlns:foaf"}, Value: "http://xmlns.com/foaf/0.1/"},
	{Name: xml.Name{Local: "xmlns:dcterms"}, Value: "http://purl.org/dc/terms/"},
	{Name: xml.Name{Local: "xmlns:bib"}, Value: "http://purl.org/net/biblio#"},
}

// Document accumulates built record subtrees and writes them out once under a
// single rdf:RDF root. Each Document owns its own record slice.
type Document struct {
	records []*Node
}

// NewDocument returns an empty document with a freshly allocated record list.
func NewDocument() *Document {
	return &Document{records: []*Node{}}
}

// AddRecord appends one built record subtree. No validation.
func (d *Document) AddRecord(n *Node) {
	d.records = append(d.records, n)
}

// Marshal serializes the document with an XML declaration and two-space
// indentation.
func (d *Document) Marshal() ([]byte, error) {
	root := &Node{
		XMLName: xml.Name{Local: tagRDF},
		Attrs:   rootAttrs,
		Nodes:   d.records,
	}
	body, err := xml.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize zotero rdf: %w", err)
	}
	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}

// WriteFile serializes the document to path, overwriting any existing file.
func (d *Document) WriteFile(path string) error {
	out, err := d.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write zotero rdf: %w", err)
	}
	return nil
}
