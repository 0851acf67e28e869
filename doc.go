/*
Package commonmark is a markdown-subset parsing and HTML-rendering engine.

The engine implements the markdown dialect used by a blog pipeline: ATX
headings, fenced code blocks, thematic breaks, bullet and ordered lists
with multi-paragraph items, single-level blockquotes, emphasis in two
delimiter families, inline code, autolinks, raw inline HTML, images and
links. It is deliberately not CommonMark-compliant: link-reference
definitions, indented code blocks, entity decoding, backslash escaping and
the tight/loose list distinction are out of scope, and text content is
rendered without entity escaping. These gaps are part of the tested
contract, not defects.

Parsing and rendering are total, stateless functions: Parse never fails
(unstructured input degrades to a paragraph of raw text) and Render never
fails over trees produced by Parse. The engine does no I/O and keeps no
state across calls, so values may be used freely from concurrent
goroutines.

Worst-case runtime of the inline scanner is quadratic in the span length
for adversarial delimiter soup, which is acceptable at blog-post scale;
this is a documented scaling limit.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package commonmark

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cmark'.
func tracer() tracing.Trace {
	return tracing.Select("cmark")
}
