/*
Package cssom provides functionality for CSS styling.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
This package implements a minimal cascade, sufficient to style an HTML
document for the purpose of counters and generated content: a Styler
matches the rules of style sheets against the elements of an HTML parse
tree and creates a styled tree (see package styledtree), where every node
carries the properties specified for it.

Selector matching and specificity are delegated to
https://godoc.org/github.com/andybalholm/cascadia.
CSS handling is de-coupled by introducing appropriate interfaces
StyleSheet and Rule. A concrete implementation may be found in sub-package
douceuradapter.

Declarations are applied in ascending order of precedence:

   1. user-agent rules (see style.UserAgentDefaults), if enabled
   2. normal author declarations, by specificity, then source order
   3. normal declarations of an inline 'style' attribute
   4. important author declarations, by specificity, then source order
   5. important inline declarations

Rules with pseudo-elements '::before' and '::after' create styled nodes for
the pseudo-elements, if they generate content.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'counters.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("counters.cssom")
}
