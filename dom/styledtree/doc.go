/*
Package styledtree is a straightforward implementation of a styled document tree.

Overview

Using a cssom.Styler, an HTML parse tree is turned into a tree of styled
nodes. Every styled node links back to its HTML element and carries the
style properties which have been specified for it by matching CSS rules,
inline styles and user-agent defaults. Properties are not computed; clients
use package css to resolve inherited and default values.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'counters.dom'.
func tracer() tracing.Trace {
	return tracing.Select("counters.dom")
}
