/*
Package css provides functionality for CSS styling of counters and
generated content.

CSS properties are textual and some of them are complicated.
This package trys to shield clients from the cumbersome handling of
the properties 'counter-reset', 'counter-increment', 'list-style-type',
'content' and 'display', and from the semantics of computing a property
value for a given styled node.

Property values are tokenized with the CSS scanner of the Gorilla toolkit.
Malformed values result in an error, the caller is expected to drop the
declaration as a whole, as CSS requires.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'counters.css'.
func tracer() tracing.Trace {
	return tracing.Select("counters.css")
}
