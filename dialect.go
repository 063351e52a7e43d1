package chatdump

// Dialect identifies which generation of the host client produced a
// snapshot's markup. The host's structural markers changed across client
// versions; extraction selectors differ per dialect.
type Dialect string

// Known markup dialects.
const (
	DialectUnknown Dialect = ""
	DialectModern  Dialect = "modern"
	DialectLegacy  Dialect = "legacy"
)

// DialectDetector identifies the markup dialect of a snapshot.
type DialectDetector interface {
	// Detect analyzes snapshot HTML and returns the identified dialect.
	// Returns DialectUnknown if it cannot be determined.
	Detect(html string) Dialect
}
