// Package classify implements the token classification and transformation
// core behind the /bfhl endpoint. It partitions an ordered token list into
// odd numbers, even numbers, alphabetic tokens and special characters,
// sums the numeric values, and builds an alternating-caps reversed
// concatenation of the alphabetic tokens.
//
// Process is pure and stateless: it allocates only request-local data and
// is safe to call from any number of goroutines.
package classify

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Result holds the classification of one input sequence. All list fields
// preserve input order; Sum is the decimal string of the numeric total.
type Result struct {
	OddNumbers        []string `json:"odd_numbers"`
	EvenNumbers       []string `json:"even_numbers"`
	Alphabets         []string `json:"alphabets"`
	SpecialCharacters []string `json:"special_characters"`
	Sum               string   `json:"sum"`
	ConcatString      string   `json:"concat_string"`
}

// alphaRe matches tokens made of one or more ASCII letters only.
var alphaRe = regexp.MustCompile(`^[a-zA-Z]+$`)

// Process classifies tokens in input order, first matching rule wins:
// numeric, then alphabetic, then special. Numeric tokens are parsed as
// floats and truncated toward zero; alphabetic tokens are uppercased into
// Alphabets while their original casing feeds ConcatString.
//
// A token that passes the numeric check but fails to parse ("--1",
// "1.2.3") aborts the whole call: no partial result is returned.
func Process(tokens []string) (Result, error) {
	res := Result{
		OddNumbers:        []string{},
		EvenNumbers:       []string{},
		Alphabets:         []string{},
		SpecialCharacters: []string{},
	}
	var sum int64
	var words []string

	for _, tok := range tokens {
		switch {
		case looksNumeric(tok):
			f, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return Result{}, fmt.Errorf("classify: malformed numeric token %q: %w", tok, err)
			}
			n := int64(f) // truncates toward zero
			s := strconv.FormatInt(n, 10)
			if n%2 == 0 {
				res.EvenNumbers = append(res.EvenNumbers, s)
			} else {
				res.OddNumbers = append(res.OddNumbers, s)
			}
			sum += n
		case alphaRe.MatchString(tok):
			res.Alphabets = append(res.Alphabets, strings.ToUpper(tok))
			words = append(words, tok)
		default:
			res.SpecialCharacters = append(res.SpecialCharacters, tok)
		}
	}

	res.Sum = strconv.FormatInt(sum, 10)
	res.ConcatString = alternatingReverse(strings.Join(words, ""))
	return res, nil
}

// looksNumeric reports whether tok passes the tolerant numeric check:
// with every '-' and '.' removed, the remainder must be one or more ASCII
// digits. The check deliberately does not validate structure, so "--1" and
// "1.2.3" pass here and are rejected later by the float parse in Process.
func looksNumeric(tok string) bool {
	stripped := strings.Map(func(r rune) rune {
		if r == '-' || r == '.' {
			return -1
		}
		return r
	}, tok)
	if stripped == "" {
		return false
	}
	for i := 0; i < len(stripped); i++ {
		if stripped[i] < '0' || stripped[i] > '9' {
			return false
		}
	}
	return true
}

// alternatingReverse reverses s by rune and applies alternating caps to the
// reversed string: characters at even positions are uppercased, characters
// at odd positions lowercased.
func alternatingReverse(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range runes {
		if i%2 == 0 {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Stringify converts decoded JSON values into classification tokens.
// Numbers must have been decoded as json.Number so their wire literal
// survives ("2.0" stays "2.0" instead of collapsing to "2").
func Stringify(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		switch t := v.(type) {
		case string:
			out = append(out, t)
		case json.Number:
			out = append(out, t.String())
		case bool:
			out = append(out, strconv.FormatBool(t))
		case nil:
			out = append(out, "null")
		default:
			out = append(out, fmt.Sprintf("%v", t))
		}
	}
	return out
}
