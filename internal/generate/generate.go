// Package generate builds synthetic input lists for exercising the /bfhl
// classification endpoint.
package generate

import (
	"math/rand"
	"strconv"

	"github.com/samber/lo"
)

// DefaultMaxCount is the item cap applied when Options.MaxCount is zero.
const DefaultMaxCount = 50

// Options control the shape of a generated data set.
type Options struct {
	Type     string // random, mixed, numbers, alphabets, special, pattern
	Count    int
	MinLen   int // shortest generated word
	MaxLen   int // longest generated word
	MaxCount int // hard cap on Count; DefaultMaxCount when zero
}

var specials = []string{"@", "#", "$", "%", "&", "*", "-", "+", "=", "!", "?", "^", "~"}

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Generate returns a shuffled token list of the requested type. An unknown
// type yields an empty list.
func Generate(opts Options) []string {
	count, minLen, maxLen := clamp(opts)

	data := []string{}
	switch opts.Type {
	case "random":
		data = lo.Times(count, func(_ int) string {
			switch rand.Intn(3) {
			case 0:
				return number(100)
			case 1:
				return word(minLen, maxLen)
			default:
				return special()
			}
		})
	case "mixed":
		numCount := count / 3
		alphaCount := count / 3
		specialCount := count - numCount - alphaCount
		for i := 0; i < numCount; i++ {
			data = append(data, number(50))
		}
		for i := 0; i < alphaCount; i++ {
			data = append(data, word(minLen, maxLen))
		}
		for i := 0; i < specialCount; i++ {
			data = append(data, special())
		}
	case "numbers":
		data = lo.Times(count, func(_ int) string { return number(100) })
	case "alphabets":
		data = lo.Times(count, func(_ int) string { return word(minLen, maxLen) })
	case "special":
		data = lo.Times(count, func(_ int) string { return special() })
	case "pattern":
		for i := 0; i < count; i++ {
			switch i % 3 {
			case 0:
				data = append(data, strconv.Itoa(i))
			case 1:
				data = append(data, string(rune('a'+i%26)))
			default:
				data = append(data, specials[i%5])
			}
		}
	}

	return lo.Shuffle(data)
}

// clamp normalises Count into [0, MaxCount] and the word-length bounds into
// a usable range.
func clamp(opts Options) (count, minLen, maxLen int) {
	maxCount := opts.MaxCount
	if maxCount <= 0 {
		maxCount = DefaultMaxCount
	}
	count = opts.Count
	if count > maxCount {
		count = maxCount
	}
	if count < 0 {
		count = 0
	}
	minLen = opts.MinLen
	if minLen < 1 {
		minLen = 1
	}
	maxLen = opts.MaxLen
	if maxLen < minLen {
		maxLen = minLen
	}
	return count, minLen, maxLen
}

// number returns a random integer in [-bound, bound] as a decimal string.
func number(bound int) string {
	return strconv.Itoa(rand.Intn(2*bound+1) - bound)
}

// word returns a random ASCII-letter word with length in [minLen, maxLen].
func word(minLen, maxLen int) string {
	n := minLen + rand.Intn(maxLen-minLen+1)
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func special() string {
	return specials[rand.Intn(len(specials))]
}
