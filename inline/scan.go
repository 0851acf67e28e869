package inline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/commonmark/ast"
)

// family identifies a delimiter family for emphasis markers. A scanner
// invocation may have one family suppressed, which is how same-family
// nesting is forbidden while cross-family nesting stays possible.
type family int8

const (
	famNone family = iota
	famAsterisk
	famUnderscore
)

var (
	autolinkPattern = regexp.MustCompile(`<([a-zA-Z][a-zA-Z0-9+.-]*://[^<>\s]+)>`)
	htmlTagPattern  = regexp.MustCompile(`</?[a-zA-Z][^<>]*>`)
	codePattern     = regexp.MustCompile("`([^`\n]+)`")
	imagePattern    = regexp.MustCompile(`!\[([^\]]*)\]\(([^)\s]+)(?:\s+"([^"]*)")?\)`)
	linkPattern     = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)

	strongAsteriskPattern   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	emphAsteriskPattern     = regexp.MustCompile(`\*([^*]+)\*`)
	tripleUnderscorePattern = regexp.MustCompile(`___(.+?)___`)
	strongUnderscorePattern = regexp.MustCompile(`__(.+?)__`)
	emphUnderscorePattern   = regexp.MustCompile(`_([^_]+)_`)
)

// Scan produces the ordered inline nodes for a single text run.
//
// Tiers are tried in strict priority order: autolink, raw HTML tag, code
// span, emphasis markers, image, link. The first tier with a match anywhere
// in the span claims its leftmost occurrence; the text before and after is
// rescanned from the top. An unmatched remainder degrades to a single Text
// leaf, so scanning is total.
func Scan(span string) []*ast.Node {
	return scan(span, famNone)
}

func scan(span string, skip family) []*ast.Node {
	if span == "" {
		return nil
	}
	if loc := autolinkPattern.FindStringSubmatchIndex(span); loc != nil {
		return splice(span, loc[0], loc[1], ast.NewAutolink(span[loc[2]:loc[3]]), skip)
	}
	if loc := htmlTagPattern.FindStringIndex(span); loc != nil {
		return splice(span, loc[0], loc[1], ast.NewHTMLInline(span[loc[0]:loc[1]]), skip)
	}
	if loc := codePattern.FindStringSubmatchIndex(span); loc != nil {
		return splice(span, loc[0], loc[1], ast.NewCode(span[loc[2]:loc[3]]), skip)
	}
	if m := findEmphasis(span, skip); m != nil {
		return splice(span, m.start, m.end, m.node(), skip)
	}
	if loc := imagePattern.FindStringSubmatchIndex(span); loc != nil {
		title := ""
		if loc[6] >= 0 {
			title = span[loc[6]:loc[7]]
		}
		img := ast.NewImage(span[loc[4]:loc[5]], span[loc[2]:loc[3]], title)
		return splice(span, loc[0], loc[1], img, skip)
	}
	if loc := linkPattern.FindStringSubmatchIndex(span); loc != nil {
		link := ast.NewLink(span[loc[4]:loc[5]])
		for _, c := range scan(span[loc[2]:loc[3]], skip) {
			link.AppendChild(c)
		}
		return splice(span, loc[0], loc[1], link, skip)
	}
	tracer().Debugf("inline scan: no tier matched, text fallback for %q", span)
	return []*ast.Node{ast.NewText(span)}
}

// splice recursively scans the text before and after a claimed match and
// concatenates the results around the matched node. Blank fragments are
// dropped.
func splice(span string, start, end int, node *ast.Node, skip family) []*ast.Node {
	var nodes []*ast.Node
	if before := span[:start]; strings.TrimSpace(before) != "" {
		nodes = append(nodes, scan(before, skip)...)
	}
	nodes = append(nodes, node)
	if after := span[end:]; strings.TrimSpace(after) != "" {
		nodes = append(nodes, scan(after, skip)...)
	}
	return nodes
}

// --- Emphasis --------------------------------------------------------------

type emphForm int8

const (
	formStrongAsterisk emphForm = iota
	formTripleUnderscore
	formStrongUnderscore
	formEmphAsterisk
	formEmphUnderscore
)

type emphMatch struct {
	start, end int
	inner      string
	form       emphForm
}

// node builds the tree for an emphasis match. The matched content is
// rescanned with the match's own delimiter family suppressed: an inner
// same-family pair stays literal, while the other family (and the
// non-emphasis tiers) may still fire inside.
func (m *emphMatch) node() *ast.Node {
	switch m.form {
	case formStrongAsterisk, formStrongUnderscore:
		strong := ast.NewStrong()
		for _, c := range scan(m.inner, m.fam()) {
			strong.AppendChild(c)
		}
		return strong
	case formTripleUnderscore:
		// ___x___ reads as __ _x_ __: strong around emphasis
		em := ast.NewEmphasis()
		for _, c := range scan(m.inner, famUnderscore) {
			em.AppendChild(c)
		}
		return ast.NewStrong().AppendChild(em)
	default:
		em := ast.NewEmphasis()
		for _, c := range scan(m.inner, m.fam()) {
			em.AppendChild(c)
		}
		return em
	}
}

func (m *emphMatch) fam() family {
	if m.form == formStrongAsterisk || m.form == formEmphAsterisk {
		return famAsterisk
	}
	return famUnderscore
}

// findEmphasis locates the winning emphasis match of a span, if any.
//
// All delimiter forms of both families compete by raw string position: the
// candidate starting leftmost wins, longer forms winning ties. Position
// competition (rather than asterisk-forms-first) is what lets an underscore
// emphasis enclose an asterisk strong span and vice versa.
func findEmphasis(span string, skip family) *emphMatch {
	forms := []struct {
		form    emphForm
		fam     family
		pattern *regexp.Regexp
	}{
		{formStrongAsterisk, famAsterisk, strongAsteriskPattern},
		{formTripleUnderscore, famUnderscore, tripleUnderscorePattern},
		{formStrongUnderscore, famUnderscore, strongUnderscorePattern},
		{formEmphAsterisk, famAsterisk, emphAsteriskPattern},
		{formEmphUnderscore, famUnderscore, emphUnderscorePattern},
	}
	var best *emphMatch
	for _, f := range forms {
		if f.fam == skip {
			continue
		}
		delim := byte('*')
		wordGuard := false
		if f.fam == famUnderscore {
			delim = '_'
			wordGuard = true
		}
		loc := findGuarded(f.pattern, span, delim, wordGuard)
		if loc == nil {
			continue
		}
		if best == nil || loc[0] < best.start {
			best = &emphMatch{start: loc[0], end: loc[1], inner: span[loc[2]:loc[3]], form: f.form}
		}
	}
	return best
}

// findGuarded finds the leftmost match of pattern whose surroundings pass
// the delimiter guards: the characters adjacent to the match must not be
// the delimiter itself (a half-consumed longer run), and for the underscore
// family they must not be letters or digits either (no emphasis inside a
// word, e.g. snake_case). A rejected candidate restarts the search one
// position after its start, so overlapping later candidates are still seen.
func findGuarded(pattern *regexp.Regexp, span string, delim byte, wordGuard bool) []int {
	offset := 0
	for offset <= len(span) {
		loc := pattern.FindStringSubmatchIndex(span[offset:])
		if loc == nil {
			return nil
		}
		abs := make([]int, len(loc))
		for i, v := range loc {
			if v < 0 {
				abs[i] = -1
			} else {
				abs[i] = v + offset
			}
		}
		if guardOK(span, abs[0], abs[1], delim, wordGuard) {
			return abs
		}
		offset = abs[0] + 1
	}
	return nil
}

func guardOK(span string, start, end int, delim byte, wordGuard bool) bool {
	if start > 0 && span[start-1] == delim {
		return false
	}
	if end < len(span) && span[end] == delim {
		return false
	}
	if !wordGuard {
		return true
	}
	if r, _ := utf8.DecodeLastRuneInString(span[:start]); isWordRune(r) {
		return false
	}
	if r, _ := utf8.DecodeRuneInString(span[end:]); isWordRune(r) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
