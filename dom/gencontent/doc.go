/*
Package gencontent drives counters through a styled document and computes
generated content.

Counters are not computed by the counter store on its own: somebody has to
walk the document in document order and apply the counter properties of
every element. Generate does exactly this, for each styled node in turn:

   1. instantiate counters given by 'counter-reset'
   2. increment counters given by 'counter-increment'
   3. increment counter 'list-item' for list items, if not incremented explicitly
   4. set counters given by 'counter-set'
   5. compute the list marker of list items and the value of property 'content'

Elements with 'display: none' and their descendants neither touch counters
nor generate content.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gencontent

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'counters.gencontent'.
func tracer() tracing.Trace {
	return tracing.Select("counters.gencontent")
}
