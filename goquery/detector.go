package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/chatdump"
)

// Ensure Detector implements chatdump.DialectDetector at compile time.
var _ chatdump.DialectDetector = (*Detector)(nil)

// Detector identifies the host markup dialect from snapshot HTML. It checks
// for structural markers unique to each client generation.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified dialect.
// Returns DialectUnknown if the dialect cannot be determined.
func (d *Detector) Detect(html string) chatdump.Dialect {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return chatdump.DialectUnknown
	}

	// data-qa markers are unique to modern clients and the most reliable
	// signal when present.
	if doc.Find(`[data-qa="message_container"]`).Length() > 0 {
		return chatdump.DialectModern
	}

	if doc.Find(".c-message .c-message__body").Length() > 0 {
		return chatdump.DialectLegacy
	}

	return chatdump.DialectUnknown
}
