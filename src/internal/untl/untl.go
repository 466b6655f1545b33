// Package untl parses UNTL metadata out of an OAI-PMH ListRecords response
// into generic per-item field bags.
package untl

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Agent is the structured value of a creator or contributor entry.
type Agent struct {
	Type string
	Name string
}

// Entry is one qualified value of a metadata field. Agent is non-nil only for
// structured fields (creator, contributor); Content is empty in that case.
type Entry struct {
	Qualifier string
	Content   string
	Agent     *Agent
}

// FieldBag maps a UNTL field name to its ordered entries for one item.
type FieldBag map[string][]Entry

// Get returns the entries for a field, nil when the field is absent.
func (b FieldBag) Get(field string) []Entry { return b[field] }

// element is a generic decoded XML element; srufetch-style catch-all shape.
type element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []element  `xml:",any"`
}

func (e *element) attr(name string) string {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func (e *element) child(local string) *element {
	for i := range e.Children {
		if e.Children[i].XMLName.Local == local {
			return &e.Children[i]
		}
	}
	return nil
}

const oaiNamespace = "http://www.openarchives.org/OAI/2.0/"

// Parse reads a raw OAI-PMH ListRecords payload and returns one FieldBag per
// item, in document order. Items without a metadata payload (e.g. deleted
// records) are skipped.
func Parse(raw []byte) ([]FieldBag, error) {
	var root element
	if err := xml.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("parse collection xml: %w", err)
	}
	var bags []FieldBag
	collectMetadata(&root, &bags)
	return bags, nil
}

// collectMetadata walks the envelope and converts the first child of every
// OAI <metadata> element (the UNTL record root, itself also named metadata)
// into a FieldBag.
func collectMetadata(e *element, bags *[]FieldBag) {
	if e.XMLName.Local == "metadata" && e.XMLName.Space == oaiNamespace {
		if len(e.Children) > 0 {
			*bags = append(*bags, recordToBag(&e.Children[0]))
		}
		return
	}
	for i := range e.Children {
		collectMetadata(&e.Children[i], bags)
	}
}

// recordToBag flattens one UNTL record element into a FieldBag. Elements with
// child elements are structured agent values carrying <type> and <name>;
// everything else is flat qualified text.
func recordToBag(rec *element) FieldBag {
	bag := FieldBag{}
	for i := range rec.Children {
		f := &rec.Children[i]
		name := f.XMLName.Local
		entry := Entry{Qualifier: f.attr("qualifier")}
		if len(f.Children) > 0 {
			agent := &Agent{}
			if t := f.child("type"); t != nil {
				agent.Type = strings.TrimSpace(t.Text)
			}
			if n := f.child("name"); n != nil {
				agent.Name = strings.TrimSpace(n.Text)
			}
			entry.Agent = agent
		} else {
			entry.Content = strings.TrimSpace(f.Text)
		}
		bag[name] = append(bag[name], entry)
	}
	return bag
}
