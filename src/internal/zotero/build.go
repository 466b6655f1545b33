package zotero

import "encoding/xml"

// Qualified output tag names, kept as plain string constants rather than
// namespace-aware xml.Name machinery; the prefixes are declared once on the
// document root.
const (
	tagRDF                   = "rdf:RDF"
	tagConferenceProceedings = "bib:ConferenceProceedings"
	tagItemType              = "z:itemType"
	tagPublisher             = "dc:publisher"
	tagOrganization          = "foaf:Organization"
	tagAdr                   = "vcard:adr"
	tagAddress               = "vcard:Address"
	tagLocality              = "vcard:locality"
	tagPresenters            = "z:presenters"
	tagSeq                   = "rdf:Seq"
	tagLi                    = "rdf:li"
	tagPerson                = "foaf:Person"
	tagSurname               = "foaf:surname"
	tagGivenName             = "foaf:givenName"
	tagSubject               = "dc:subject"
	tagTitle                 = "dc:title"
	tagAbstract              = "dcterms:abstract"
	tagDate                  = "dc:date"
	tagLanguage              = "z:language"
	tagIdentifier            = "dc:identifier"
	tagURI                   = "dcterms:URI"
	tagValue                 = "rdf:value"
	tagRights                = "dc:rights"
	tagDescription           = "dc:description"
	tagMeetingName           = "z:meetingName"

	attrAbout = "rdf:about"
)

// Node is one element of the output tree. Tag names (including prefixes) live
// in XMLName.Local; an element carries either text or children, not both.
type Node struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Text    string     `xml:",chardata"`
	Nodes   []*Node    `xml:",any"`
}

func elem(tag string, children ...*Node) *Node {
	return &Node{XMLName: xml.Name{Local: tag}, Nodes: children}
}

func textElem(tag, value string) *Node {
	return &Node{XMLName: xml.Name{Local: tag}, Text: value}
}

func (n *Node) append(children ...*Node) {
	n.Nodes = append(n.Nodes, children...)
}

// Builders dispatches a Zotero item type to its record builder. Presentation
// is the only conversion path; new item types register here.
var Builders = map[string]func(Record) *Node{
	"presentation": BuildPresentation,
}

// BuildPresentation produces one bib:ConferenceProceedings subtree for a
// conference presentation. Child order is fixed and every scalar element is
// emitted even when its value is empty; only the values go missing, never
// the structure.
func BuildPresentation(r Record) *Node {
	item := elem(tagConferenceProceedings)
	item.Attrs = []xml.Attr{{Name: xml.Name{Local: attrAbout}, Value: r.AboutURI}}
	item.append(textElem(tagItemType, "presentation"))

	item.append(elem(tagPublisher,
		elem(tagOrganization,
			elem(tagAdr,
				elem(tagAddress,
					textElem(tagLocality, r.Locality))))))

	seq := elem(tagSeq)
	for _, p := range r.Presenters {
		seq.append(elem(tagLi,
			elem(tagPerson,
				textElem(tagSurname, p.Surname),
				textElem(tagGivenName, p.GivenName))))
	}
	item.append(elem(tagPresenters, seq))

	for _, s := range r.Subjects {
		item.append(textElem(tagSubject, s))
	}
	item.append(textElem(tagTitle, r.Title))
	item.append(textElem(tagAbstract, r.Abstract))
	item.append(textElem(tagDate, r.CreationDate))
	for _, l := range r.Languages {
		item.append(textElem(tagLanguage, l))
	}
	item.append(elem(tagIdentifier,
		elem(tagURI,
			textElem(tagValue, r.AboutURI))))
	item.append(textElem(tagRights, r.Access))
	item.append(textElem(tagDescription, r.Description))
	item.append(textElem(tagMeetingName, r.Meeting))
	return item
}
