/*
Package inline scans text runs for inline markup.

The scanner is a precedence-ordered pattern matcher: tiers are tried in a
fixed priority order (autolinks, raw HTML tags, code spans, emphasis
markers, images, links), and the first tier whose pattern occurs anywhere
in the span claims its leftmost occurrence. The text before and after the
claimed match is then rescanned from the top tier. A tier occurring later
in priority but earlier in raw string position is still deferred. Several
precedence outcomes of the engine depend on this, so the order is part of
the tested contract and must not be "corrected" towards CommonMark.

Within the emphasis tier the asterisk and underscore delimiter forms
compete by raw string position, leftmost winning and longer forms winning
ties. Emphasis delimiters never nest within their own family; cross-family
nesting works because matched emphasis content is rescanned with only its
own family suppressed. Underscore delimiters additionally require word
boundaries, so identifiers like snake_case stay literal.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package inline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cmark.inline'.
func tracer() tracing.Trace {
	return tracing.Select("cmark.inline")
}
