// Package rewrite converts chat message-body HTML fragments into a
// constrained markdown flavor by walking the parsed node tree bottom-up.
// Fenced code, quotes, lists, inline emphasis, and links are rendered
// explicitly; every other element loses its markup and keeps its text.
package rewrite

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fwojciec/chatdump"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Rewriter implements chatdump.Rewriter at compile time.
var _ chatdump.Rewriter = (*Rewriter)(nil)

// DefaultBorderedClass marks lists the host renders with a quote border.
// Items of such lists receive a "> " prefix in addition to numbering.
const DefaultBorderedClass = "c-mrkdwn__border"

// Rewriter converts message-body HTML to markdown.
type Rewriter struct {
	quoteSeparation bool
	borderedClass   string
}

// Option configures a Rewriter.
type Option func(*Rewriter)

// WithQuoteSeparation inserts a blank line between a quoted line and an
// immediately following non-quoted line, so a blockquote never visually
// runs into following prose.
func WithQuoteSeparation() Option {
	return func(r *Rewriter) {
		r.quoteSeparation = true
	}
}

// WithBorderedClass overrides the class name that marks quote-styled lists.
func WithBorderedClass(class string) Option {
	return func(r *Rewriter) {
		r.borderedClass = class
	}
}

// New creates a new Rewriter.
func New(opts ...Option) *Rewriter {
	r := &Rewriter{borderedClass: DefaultBorderedClass}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rewrite transforms an HTML fragment into plain structured text. It never
// fails on malformed markup: anything the rules don't recognize degrades to
// its text content.
func (r *Rewriter) Rewrite(rawBody string) (string, error) {
	if strings.TrimSpace(rawBody) == "" {
		return "", nil
	}

	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(rawBody), ctx)
	if err != nil {
		// Parse failures are reader errors in practice; keep the text.
		return strings.TrimSpace(stripTags(rawBody)), nil
	}

	var b strings.Builder
	for _, n := range nodes {
		r.walk(n, &b)
	}

	out := normalize(b.String())
	if r.quoteSeparation {
		out = separateQuotes(out)
	}
	return out, nil
}

// walk renders a node and its children into b.
func (r *Rewriter) walk(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(collapseSpace(n.Data))
		return
	case html.ElementNode:
	default:
		return
	}

	switch n.DataAtom {
	case atom.Pre:
		writeFence(b, textContent(n))
	case atom.Blockquote:
		r.writeQuote(b, n)
	case atom.Ol:
		r.writeList(b, n, true)
	case atom.Ul:
		r.writeList(b, n, false)
	case atom.Li:
		// Bare item outside an explicit list container.
		b.WriteString("\n* ")
		b.WriteString(strings.TrimSpace(r.renderChildren(n)))
		b.WriteString("\n")
	case atom.Code:
		inner := strings.TrimSpace(collapseSpace(textContent(n)))
		if inner != "" {
			b.WriteString("`")
			b.WriteString(inner)
			b.WriteString("`")
		}
	case atom.B, atom.Strong:
		writeWrapped(b, strings.TrimSpace(r.renderChildren(n)), "**")
	case atom.I, atom.Em:
		writeWrapped(b, strings.TrimSpace(r.renderChildren(n)), "*")
	case atom.A:
		r.writeLink(b, n)
	case atom.Br:
		b.WriteString("\n")
	case atom.P, atom.Div:
		b.WriteString("\n")
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			r.walk(c, b)
		}
		b.WriteString("\n")
	case atom.Script, atom.Style:
		// Not message text.
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			r.walk(c, b)
		}
	}
}

// renderChildren renders the children of n into a fresh buffer.
func (r *Rewriter) renderChildren(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.walk(c, &b)
	}
	return b.String()
}

// writeQuote renders a quote container with every line prefixed "> ".
// Paragraph and line-break markers inside the quote become single newlines
// before prefixing, so a two-line quote yields exactly two quoted lines.
func (r *Rewriter) writeQuote(b *strings.Builder, n *html.Node) {
	inner := collapseBlankLines(normalize(r.renderChildren(n)))
	if inner == "" {
		return
	}
	b.WriteString("\n")
	b.WriteString(prefixLines(inner, "> "))
	b.WriteString("\n")
}

// writeList renders list items one per line. Ordered lists restart their
// counter per list; unordered items use "* ". A bordered list additionally
// receives a "> " prefix on every line.
func (r *Rewriter) writeList(b *strings.Builder, n *html.Node, ordered bool) {
	bordered := hasClass(n, r.borderedClass)
	counter := 1

	b.WriteString("\n")
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.DataAtom != atom.Li {
			continue
		}
		item := strings.TrimSpace(normalize(r.renderChildren(c)))
		if item == "" {
			continue
		}

		var line string
		if ordered {
			line = strconv.Itoa(counter) + ". " + item
			counter++
		} else {
			line = "* " + item
		}
		if bordered {
			line = prefixLines(line, "> ")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
}

// writeLink renders an anchor as [text](href), degrading to bare text when
// either part is missing.
func (r *Rewriter) writeLink(b *strings.Builder, n *html.Node) {
	href := attrValue(n, "href")
	text := strings.TrimSpace(r.renderChildren(n))
	if href == "" || text == "" {
		b.WriteString(text)
		return
	}
	b.WriteString("[")
	b.WriteString(text)
	b.WriteString("](")
	b.WriteString(href)
	b.WriteString(")")
}

// writeFence emits a fenced code block. The interior arrives entity-decoded
// from the parser and is emitted verbatim, so no later rule can touch it.
func writeFence(b *strings.Builder, code string) {
	code = strings.Trim(code, "\n")
	b.WriteString("\n```\n")
	b.WriteString(code)
	b.WriteString("\n```\n")
}

// writeWrapped wraps non-empty text in the given marker.
func writeWrapped(b *strings.Builder, text, marker string) {
	if text == "" {
		return
	}
	b.WriteString(marker)
	b.WriteString(text)
	b.WriteString(marker)
}

// textContent returns the raw concatenated text of a subtree, whitespace
// preserved.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}

// attrValue returns the value of the named attribute, or "".
func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// hasClass reports whether the node's class attribute contains class.
func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attrValue(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// prefixLines prefixes every line of s.
func prefixLines(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

var horizontalWS = regexp.MustCompile(`[ \t\r\f\v]+`)

// collapseSpace collapses whitespace runs in a text node to single spaces.
// Newlines in source markup are indentation noise, not line structure; line
// structure comes from br, p, and block rules.
func collapseSpace(s string) string {
	return horizontalWS.ReplaceAllString(strings.ReplaceAll(s, "\n", " "), " ")
}

var (
	spacesAroundNewline = regexp.MustCompile(` *\n *`)
	newlineRuns         = regexp.MustCompile(`\n{3,}`)
	blankLineRuns       = regexp.MustCompile(`\n{2,}`)
	spaceRuns           = regexp.MustCompile(`  +`)
	tagRe               = regexp.MustCompile(`<[^>]*>`)
)

// collapseBlankLines removes blank lines so a quote body becomes one
// contiguous run of quoted lines. Fenced code interiors keep theirs.
func collapseBlankLines(s string) string {
	parts := strings.Split(s, "```")
	for i := range parts {
		if i%2 == 1 {
			continue // inside a fence
		}
		parts[i] = blankLineRuns.ReplaceAllString(parts[i], "\n")
	}
	return strings.Join(parts, "```")
}

// normalize removes incidental whitespace while preserving intentional line
// and paragraph boundaries. Fenced code interiors pass through untouched.
func normalize(s string) string {
	parts := strings.Split(s, "```")
	for i := range parts {
		if i%2 == 1 {
			continue // inside a fence
		}
		p := spaceRuns.ReplaceAllString(parts[i], " ")
		p = spacesAroundNewline.ReplaceAllString(p, "\n")
		p = newlineRuns.ReplaceAllString(p, "\n\n")
		parts[i] = p
	}
	return strings.TrimSpace(strings.Join(parts, "```"))
}

// separateQuotes inserts a blank line between a quoted line and a directly
// following non-quoted, non-blank line.
func separateQuotes(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	inFence := false

	for i, line := range lines {
		out = append(out, line)
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			continue
		}
		if inFence || !strings.HasPrefix(line, "> ") || strings.TrimSpace(line) == ">" {
			continue
		}
		if i+1 < len(lines) {
			next := lines[i+1]
			if next != "" && !strings.HasPrefix(next, ">") && !strings.HasPrefix(strings.TrimSpace(next), "```") {
				out = append(out, "")
			}
		}
	}
	return strings.Join(out, "\n")
}

// stripTags is the last-resort degradation for unparseable input.
func stripTags(s string) string {
	return tagRe.ReplaceAllString(s, "")
}
