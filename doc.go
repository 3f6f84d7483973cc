/*
Package counters implements CSS counters for a tree-structured document.

Overview

CSS counters are not global variables. Each counter name has document-order,
tree-scoped visibility: a use of a counter at an element is satisfied by the
nearest element which either precedes it as a sibling (searched nearest
first) or is an ancestor of it, and which has established the counter by a
reset. See

	https://www.w3.org/TR/css-lists-3/#auto-numbering

A Store holds the counter values for one document pass. It implements the
primitives of properties 'counter-reset' and 'counter-increment' and of the
functions counter() and counters(). It does not decide when counters are
reset or incremented: a client walking the document in document order will
call Reset… and Increment… for every element and resolve counters for list
markers or generated content as it goes.

The document tree is consumed through interface Navigator. Node identity is
Go equality on the node type, which makes pointers to tree nodes as well as
stable integer node ids suitable node types.

Status

A Store is not safe for concurrent use. Independent stores for independent
documents may be used concurrently.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package counters

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'counters'.
func tracer() tracing.Trace {
	return tracing.Select("counters")
}
