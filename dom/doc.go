/*
Package dom ties together the steps to get from an HTML document to its
list markers and generated content.

Status

Early draft—API may change frequently. Please stay patient.

Overview

Styling and generating content for HTML/CSS involves a couple of
trees. The HTML parse tree is styled by package cssom, which creates a
styled tree (package styledtree) with a node for every element and for
every ::before or ::after pseudo-element generating content. Package
gencontent walks the styled tree in document order and drives CSS counters
(package counters) to compute list markers and the value of property
'content'.

All trees are implemented on top of a general purpose tree type
(package tree). In a fully object oriented programming language we would
subclass this tree type for every type of tree in use, but in Go we resort
to composition, thus including a generic tree node in every node
(sub-)type. The downside of this approach is that we will have to provide
an adapter for every node sub-type to return the sub-type from the generic
type (see styledtree.Node).

Process bundles the steps for clients not interested in the details:

	doc, err := dom.Parse(r, dom.WithStyleSheet(sheet))
	…
	for _, sn := range doc.Content.Nodes() {
		g, _ := doc.Content.Generated(sn)
		fmt.Println(sn.Path(), g.Marker, g.Content)
	}

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'counters.dom'.
func tracer() tracing.Trace {
	return tracing.Select("counters.dom")
}
