// Package zotero maps UNTL field bags to Zotero RDF records and assembles
// them into an importable document.
package zotero

import (
	"fmt"
	"regexp"
	"strings"

	"untl2zotero/src/internal/names"
	"untl2zotero/src/internal/untl"
)

// Presenter is a person credited as conference speaker.
type Presenter struct {
	Surname   string
	GivenName string
}

// Record holds the flattened attributes pulled from one UNTL field bag.
// Every attribute defaults to empty when the source field is missing.
type Record struct {
	AboutURI     string
	Title        string
	Subjects     []string
	Abstract     string
	CreationDate string
	Access       string
	Languages    []string
	Presenters   []Presenter
	Relations    []string
	Description  string
	Meeting      string
	Locality     string
}

// accessRights maps UNTL access codes to rights-statement URIs. Codes without
// a mapping pass through unchanged.
var accessRights = map[string]string{
	"public": "https://digital2.library.unt.edu/vocabularies/rights-access/#public",
}

// AddAccessRights merges extra code to URI mappings into the rights table.
func AddAccessRights(extra map[string]string) {
	for code, uri := range extra {
		accessRights[code] = uri
	}
}

// RightsURI resolves an access code through the rights table.
func RightsURI(code string) string {
	if uri, ok := accessRights[code]; ok {
		return uri
	}
	return code
}

// meetingPattern splits free-text conference info into a meeting name ending
// in a 4-digit year and an optional trailing locality with no digits.
var meetingPattern = regexp.MustCompile(`(.*[0-9]{4})(?:[,.] ([^0-9]+))?`)

// Extract derives a Record from one field bag. Pure; absent fields and
// qualifiers resolve to empty values, never errors.
func Extract(bag untl.FieldBag) Record {
	var r Record

	// The itemURL scan deliberately does not break: the last matching entry
	// wins, even when its content is empty.
	for _, e := range bag.Get("identifier") {
		if e.Qualifier == "itemURL" {
			r.AboutURI = e.Content
		}
	}

	r.Title = firstNonEmpty(bag.Get("title"), "officialtitle")
	r.Abstract = firstNonEmpty(bag.Get("description"), "content")
	r.CreationDate = firstNonEmpty(bag.Get("date"), "creation")
	r.Access = RightsURI(firstNonEmpty(bag.Get("rights"), "access"))
	r.Subjects = collect(bag.Get("subject"))
	r.Languages = collect(bag.Get("language"))
	r.Relations = collect(bag.Get("relation"))

	for _, e := range bag.Get("creator") {
		if e.Agent == nil || e.Agent.Type != "per" || e.Agent.Name == "" {
			continue
		}
		surname, given := names.Split(e.Agent.Name)
		r.Presenters = append(r.Presenters, Presenter{Surname: surname, GivenName: given})
	}

	if len(r.Relations) > 0 {
		var b strings.Builder
		for _, rel := range r.Relations {
			fmt.Fprintf(&b, "Related to: %s.\n", rel)
		}
		r.Description = b.String()
	}

	// Like itemURL, the conference scan has no break; an unparseable value
	// leaves meeting and locality empty (fail-open).
	for _, e := range bag.Get("source") {
		if e.Qualifier != "conference" || e.Content == "" {
			continue
		}
		if m := meetingPattern.FindStringSubmatch(e.Content); m != nil {
			r.Meeting = m[1]
			if m[2] != "" {
				r.Locality = strings.TrimRight(m[2], ".")
			}
		}
	}

	return r
}

// firstNonEmpty returns the content of the first entry carrying the wanted
// qualifier and non-empty content; empty-content matches are passed over.
func firstNonEmpty(entries []untl.Entry, qualifier string) string {
	for _, e := range entries {
		if e.Qualifier == qualifier && e.Content != "" {
			return e.Content
		}
	}
	return ""
}

// collect gathers every non-empty content value in order, no dedup.
func collect(entries []untl.Entry) []string {
	var out []string
	for _, e := range entries {
		if e.Content != "" {
			out = append(out, e.Content)
		}
	}
	return out
}
