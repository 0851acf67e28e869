/*
Package htmlrender turns a markdown document tree into an HTML string.

Rendering is a pure recursive traversal dispatched by node kind. Container
nodes concatenate their rendered children without a separator; only the
document node joins its top-level blocks with a newline. Text content is
emitted verbatim — the engine deliberately performs no entity escaping, the
surrounding pipeline owns sanitization policy.

The traversal emits HTML fragments into a cord builder and materializes the
final string from the resulting cord.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmlrender

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cmark.render'.
func tracer() tracing.Trace {
	return tracing.Select("cmark.render")
}
