/*
Package numbering implements numbering systems for list markers and CSS counters.

Every numbering system is a pure function from an integer to its textual
representation. Systems with a limited range (Roman, Georgian, Armenian)
and the alphabetic systems, which have no representation for zero or
negative numbers, fall back to decimal output for values outside their
range, as recommended by CSS Counter Styles Level 3:

	https://www.w3.org/TR/css-counter-styles-3/#simple-numeric

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package numbering

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Format is the signature shared by all numbering systems.
type Format func(n int64) string

// lower converts the output of a numbering system to lower case.
// Casers are stateful, therefore we create a new one for every call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
