/*
Package ast defines the node taxonomy for markdown document trees.

A parsed document is a single tree of Node values, discriminated by a
NodeKind tag. The document node exclusively owns its subtree: children are
only ever appended during the build pass, there are no back-references and
no sharing, and the tree is read-only once the parse is complete.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cmark.ast'.
func tracer() tracing.Trace {
	return tracing.Select("cmark.ast")
}
