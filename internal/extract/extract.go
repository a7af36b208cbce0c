// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls patent metadata out of a Google Patents HTML page.
// Values are read from elements carrying schema.org itemprop attributes.
package extract

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/ivpatents/pkg/types"
)

// Field names, as they appear in the page's itemprop attributes.
const (
	FieldAssigneeOriginal = "assigneeOriginal"
	FieldInventor         = "inventor"
	FieldPriorityDate     = "priorityDate"
	FieldFilingDate       = "filingDate"
	FieldPublicationDate  = "publicationDate"
	FieldGrantDate        = "grantDate"
)

// separator joins the values of a field that occurs more than once.
const separator = ","

// selectors maps each field to the elements holding its values. Names are
// definition-list entries; dates are <time> elements nested in one.
var selectors = []struct {
	name     string
	selector string
}{
	{FieldAssigneeOriginal, `dd[itemprop="assigneeOriginal"]`},
	{FieldInventor, `dd[itemprop="inventor"]`},
	{FieldPriorityDate, `dd > time[itemprop="priorityDate"]`},
	{FieldFilingDate, `dd > time[itemprop="filingDate"]`},
	{FieldPublicationDate, `dd > time[itemprop="publicationDate"]`},
	{FieldGrantDate, `dd > time[itemprop="grantDate"]`},
}

// Fields holds the six values extracted from one page. A field absent from
// the page is the empty string.
type Fields struct {
	AssigneeOriginal string
	Inventor         string
	PriorityDate     string
	FilingDate       string
	PublicationDate  string
	GrantDate        string
}

// Parse reads an HTML document and extracts its fields.
func Parse(r io.Reader) (Fields, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Fields{}, fmt.Errorf("parsing HTML: %w", err)
	}
	return FromDocument(doc), nil
}

// ParseBytes is Parse over an in-memory page body.
func ParseBytes(body []byte) (Fields, error) {
	return Parse(bytes.NewReader(body))
}

// FromDocument extracts fields from an already parsed document.
func FromDocument(doc *goquery.Document) Fields {
	var f Fields
	for _, s := range selectors {
		f.set(s.name, strings.Join(ownText(doc.Find(s.selector)), separator))
	}
	return f
}

// Get returns the value of the named field, or "" for an unknown name.
func (f Fields) Get(name string) string {
	switch name {
	case FieldAssigneeOriginal:
		return f.AssigneeOriginal
	case FieldInventor:
		return f.Inventor
	case FieldPriorityDate:
		return f.PriorityDate
	case FieldFilingDate:
		return f.FilingDate
	case FieldPublicationDate:
		return f.PublicationDate
	case FieldGrantDate:
		return f.GrantDate
	}
	return ""
}

func (f *Fields) set(name, value string) {
	switch name {
	case FieldAssigneeOriginal:
		f.AssigneeOriginal = value
	case FieldInventor:
		f.Inventor = value
	case FieldPriorityDate:
		f.PriorityDate = value
	case FieldFilingDate:
		f.FilingDate = value
	case FieldPublicationDate:
		f.PublicationDate = value
	case FieldGrantDate:
		f.GrantDate = value
	}
}

// Patent combines the extracted fields with an identifier and title.
func (f Fields) Patent(id, title string) types.Patent {
	return types.Patent{
		ID:               id,
		Title:            title,
		AssigneeOriginal: f.AssigneeOriginal,
		Inventor:         f.Inventor,
		PriorityDate:     f.PriorityDate,
		FilingDate:       f.FilingDate,
		PublicationDate:  f.PublicationDate,
		GrantDate:        f.GrantDate,
	}
}

// ownText returns the text nodes that are direct children of each element
// in sel, in document order. Text inside nested elements is not included.
// Surrounding whitespace is trimmed and blank nodes are dropped.
func ownText(sel *goquery.Selection) []string {
	var out []string
	sel.Each(func(_ int, el *goquery.Selection) {
		el.Contents().Each(func(_ int, c *goquery.Selection) {
			if goquery.NodeName(c) != "#text" {
				return
			}
			if t := strings.TrimSpace(c.Text()); t != "" {
				out = append(out, t)
			}
		})
	})
	return out
}
