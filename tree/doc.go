/*
Package tree implements a general purpose mutable tree.

Overview

Styling and generating content for HTML/CSS involves operations on
different trees. We implement them on top of a generic node type carrying a
payload. Nodes keep an ordered list of children, which makes document order
well defined: a node precedes its children, and children are ordered by
their position within the parent.

Walk traverses a tree in document order. Walking is sequential: CSS counters
have to be manipulated in document order, therefore there is no concurrent
traversal.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'counters.tree'.
func tracer() tracing.Trace {
	return tracing.Select("counters.tree")
}
