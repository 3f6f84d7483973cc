package numbering

import (
	"strconv"
)

// Decimal formats n in base 10.
func Decimal(n int64) string {
	return strconv.FormatInt(n, 10)
}

// DecimalLeadingZero formats n in base 10, padding single digit numbers
// with one zero ("03", "-03"). Numbers with more than one digit are not
// padded.
func DecimalLeadingZero(n int64) string {
	switch {
	case n >= 0 && n < 10:
		return "0" + Decimal(n)
	case n < 0 && n > -10:
		return "-0" + Decimal(-n)
	}
	return Decimal(n)
}

// --- Alphabetic systems ----------------------------------------------------

var latinAlphabet = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// Lower-case Greek letters, omitting the final sigma ('ς').
var greekAlphabet = []rune("αβγδεζηθικλμνξοπρστυφχψω")

// UpperAlpha formats n in bijective base 26: A, B, …, Z, AA, AB, …
// Values < 1 are formatted as decimal.
func UpperAlpha(n int64) string {
	return alphabetic(n, latinAlphabet)
}

// LowerAlpha formats n in bijective base 26: a, b, …, z, aa, ab, …
// Values < 1 are formatted as decimal.
func LowerAlpha(n int64) string {
	return lower(alphabetic(n, latinAlphabet))
}

// LowerGreek formats n in bijective base 24 using lower-case Greek letters.
// Values < 1 are formatted as decimal.
func LowerGreek(n int64) string {
	return alphabetic(n, greekAlphabet)
}

func alphabetic(n int64, alphabet []rune) string {
	if n < 1 {
		return Decimal(n)
	}
	k := int64(len(alphabet))
	var digits []rune
	for n > 0 {
		n--
		digits = append(digits, alphabet[n%k])
		n /= k
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// --- Roman numerals --------------------------------------------------------

// MaxRoman is the largest number representable with classical Roman numerals.
const MaxRoman = 3999

type additiveSymbol struct {
	weight int64
	symbol string
}

var romanSymbols = []additiveSymbol{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// UpperRoman formats n as an upper-case Roman numeral.
// Values outside 1…3999 are formatted as decimal.
func UpperRoman(n int64) string {
	if n < 1 || n > MaxRoman {
		return Decimal(n)
	}
	return additive(n, romanSymbols)
}

// LowerRoman formats n as a lower-case Roman numeral.
// Values outside 1…3999 are formatted as decimal.
func LowerRoman(n int64) string {
	if n < 1 || n > MaxRoman {
		return Decimal(n)
	}
	return lower(additive(n, romanSymbols))
}

// --- Additive systems ------------------------------------------------------

// Symbol tables follow the predefined counter styles of
// https://www.w3.org/TR/css-counter-styles-3/#additive-system

var georgianSymbols = []additiveSymbol{
	{10000, "ჵ"}, {9000, "ჰ"}, {8000, "ჯ"}, {7000, "ჴ"}, {6000, "ხ"},
	{5000, "ჭ"}, {4000, "წ"}, {3000, "ძ"}, {2000, "ც"}, {1000, "ჩ"},
	{900, "შ"}, {800, "ყ"}, {700, "ღ"}, {600, "ქ"}, {500, "ფ"},
	{400, "ჳ"}, {300, "ტ"}, {200, "ს"}, {100, "რ"},
	{90, "ჟ"}, {80, "პ"}, {70, "ო"}, {60, "ჲ"}, {50, "ნ"},
	{40, "მ"}, {30, "ლ"}, {20, "კ"}, {10, "ი"},
	{9, "თ"}, {8, "ზ"}, {7, "ჱ"}, {6, "ვ"}, {5, "ე"},
	{4, "დ"}, {3, "გ"}, {2, "ბ"}, {1, "ა"},
}

var armenianSymbols = []additiveSymbol{
	{9000, "Ք"}, {8000, "Փ"}, {7000, "Ւ"}, {6000, "Ց"}, {5000, "Ր"},
	{4000, "Տ"}, {3000, "Վ"}, {2000, "Ս"}, {1000, "Ռ"},
	{900, "Ջ"}, {800, "Պ"}, {700, "Չ"}, {600, "Ո"}, {500, "Շ"},
	{400, "Ն"}, {300, "Յ"}, {200, "Մ"}, {100, "Ճ"},
	{90, "Ղ"}, {80, "Ձ"}, {70, "Հ"}, {60, "Կ"}, {50, "Ծ"},
	{40, "Խ"}, {30, "Լ"}, {20, "Ի"}, {10, "Ժ"},
	{9, "Թ"}, {8, "Ը"}, {7, "Է"}, {6, "Զ"}, {5, "Ե"},
	{4, "Դ"}, {3, "Գ"}, {2, "Բ"}, {1, "Ա"},
}

// Georgian formats n in the traditional Georgian numbering.
// Values outside 1…19999 are formatted as decimal.
func Georgian(n int64) string {
	if n < 1 || n > 19999 {
		return Decimal(n)
	}
	return additive(n, georgianSymbols)
}

// Armenian formats n in the traditional upper-case Armenian numbering.
// Values outside 1…9999 are formatted as decimal.
func Armenian(n int64) string {
	if n < 1 || n > 9999 {
		return Decimal(n)
	}
	return additive(n, armenianSymbols)
}

// additive expects symbols sorted by descending weight. n must be positive.
func additive(n int64, symbols []additiveSymbol) string {
	var s []byte
	for _, sym := range symbols {
		for n >= sym.weight {
			s = append(s, sym.symbol...)
			n -= sym.weight
		}
	}
	return string(s)
}
