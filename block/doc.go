/*
Package block segments a sequence of input lines into block-level nodes.

The segmenter is a single forward pass with a small set of open-block
accumulators (paragraph buffer, blockquote buffer, code-fence buffer).
Line tests run in a fixed priority order: fence toggle, in-fence verbatim,
ATX heading, thematic break, list item, blockquote, blank line, paragraph
default. The thematic-break test deliberately runs before the list-item
test, since a line like "- - -" is textually both; the break wins.

Lists are consumed as a unit: a lookahead determines the extent of the
list, the matching lines are sliced out, and per-item content is parsed
recursively (an item body may contain blank-separated paragraphs and
fenced code of its own).

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package block

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cmark.block'.
func tracer() tracing.Trace {
	return tracing.Select("cmark.block")
}
