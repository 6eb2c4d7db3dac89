package classify

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProcess_Mixed(t *testing.T) {
	res, err := Process([]string{"a", "1", "334", "4", "R", "$"})
	require.NoError(t, err)

	require.Equal(t, []string{"1"}, res.OddNumbers)
	require.Equal(t, []string{"334", "4"}, res.EvenNumbers)
	require.Equal(t, []string{"A", "R"}, res.Alphabets)
	require.Equal(t, []string{"$"}, res.SpecialCharacters)
	require.Equal(t, "339", res.Sum)
	require.Equal(t, "Ra", res.ConcatString)
}

func TestProcess_EmptyInput(t *testing.T) {
	res, err := Process(nil)
	require.NoError(t, err)

	require.Empty(t, res.OddNumbers)
	require.Empty(t, res.EvenNumbers)
	require.Empty(t, res.Alphabets)
	require.Empty(t, res.SpecialCharacters)
	require.Equal(t, "0", res.Sum)
	require.Equal(t, "", res.ConcatString)
}

func TestProcess_NegativeNumbers(t *testing.T) {
	res, err := Process([]string{"-1", "2", "a", "B", "&"})
	require.NoError(t, err)

	require.Equal(t, []string{"-1"}, res.OddNumbers)
	require.Equal(t, []string{"2"}, res.EvenNumbers)
	require.Equal(t, []string{"A", "B"}, res.Alphabets)
	require.Equal(t, []string{"&"}, res.SpecialCharacters)
	require.Equal(t, "1", res.Sum)
}

func TestProcess_AlphabetsOnly(t *testing.T) {
	res, err := Process([]string{"A", "ABcD", "DOE"})
	require.NoError(t, err)

	require.Equal(t, []string{"A", "ABCD", "DOE"}, res.Alphabets)
	// "AABcDDOE" reversed is "EODDcBAA"; alternating caps from uppercase.
	require.Equal(t, "EoDdCbAa", res.ConcatString)
	require.Equal(t, "0", res.Sum)
}

func TestProcess_DecimalTruncation(t *testing.T) {
	res, err := Process([]string{"3.7", "-3.7", "2.9", "-.5"})
	require.NoError(t, err)

	require.Equal(t, []string{"3", "-3"}, res.OddNumbers)
	require.Equal(t, []string{"2", "0"}, res.EvenNumbers)
	require.Equal(t, "2", res.Sum)
}

func TestProcess_BareSeparatorsAreSpecial(t *testing.T) {
	res, err := Process([]string{"-", ".", "", "-."})
	require.NoError(t, err)

	require.Empty(t, res.OddNumbers)
	require.Empty(t, res.EvenNumbers)
	require.Equal(t, []string{"-", ".", "", "-."}, res.SpecialCharacters)
}

func TestProcess_NonASCIITokensAreSpecial(t *testing.T) {
	res, err := Process([]string{"héllo", "a b", "²", "наprivet", "a1"})
	require.NoError(t, err)

	require.Empty(t, res.Alphabets)
	require.Equal(t, []string{"héllo", "a b", "²", "наprivet", "a1"}, res.SpecialCharacters)
}

func TestProcess_MalformedNumericFails(t *testing.T) {
	for _, tok := range []string{"--1", "1.2.3", "1-2"} {
		_, err := Process([]string{tok})
		require.Error(t, err, "token %q", tok)
		require.Contains(t, err.Error(), tok)
	}
}

func TestProcess_Idempotent(t *testing.T) {
	in := []string{"2", "a", "y", "4", "&", "-", "*", "5", "92", "b"}
	first, err := Process(in)
	require.NoError(t, err)
	second, err := Process(in)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestProcess_PartitionAndConcatLength(t *testing.T) {
	in := []string{"2", "a", "y", "4", "&", "-", "*", "5", "92", "b"}
	res, err := Process(in)
	require.NoError(t, err)

	total := len(res.OddNumbers) + len(res.EvenNumbers) +
		len(res.Alphabets) + len(res.SpecialCharacters)
	require.Equal(t, len(in), total)

	var alphaLen int
	for _, a := range res.Alphabets {
		alphaLen += len(a)
	}
	require.Len(t, res.ConcatString, alphaLen)
	require.Equal(t, "103", res.Sum)
}

func TestStringify(t *testing.T) {
	in := []any{"a", json.Number("2.0"), json.Number("-7"), true, nil}
	require.Equal(t, []string{"a", "2.0", "-7", "true", "null"}, Stringify(in))
}
