package pegutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hucsmn/pegcore"
	"github.com/hucsmn/pegcore/pegutil"
)

func TestIdentifierMatchesLetterUnderscoreStart(t *testing.T) {
	got, err := parseWith(t, "_foo123", pegutil.Identifier)
	require.NoError(t, err)
	require.Equal(t, "_foo123", got)
}

func TestIdentifierRejectsLeadingDigit(t *testing.T) {
	_, err := parseWith(t, "1abc", pegutil.Identifier)
	require.Error(t, err)
}

func TestIntegerMatchesSignedValue(t *testing.T) {
	got, err := parseWith(t, "-42", pegutil.Integer)
	require.NoError(t, err)
	require.Equal(t, "-42", got)
}

func TestFloatMatchesSignedFractionWithExponent(t *testing.T) {
	got, err := parseWith(t, "-0.5e10", pegutil.Float)
	require.NoError(t, err)
	require.Equal(t, "-0.5e10", got)
}

func TestFloatRejectsBareInteger(t *testing.T) {
	_, err := parseWith(t, "42", pegutil.Float)
	require.Error(t, err, "Float requires the fractional part; a bare integer is not a Float")
}

func TestNewlineMatchesCRLFAsOneUnit(t *testing.T) {
	got, err := parseWith(t, "\r\n", pegutil.Newline)
	require.NoError(t, err)
	require.Equal(t, "\r\n", got)
}

func TestStringMatchesEscapes(t *testing.T) {
	got, err := parseWith(t, `"line\n\"tab\t"`, pegutil.String)
	require.NoError(t, err)
	require.Equal(t, `"line\n\"tab\t"`, got)
}

func TestStringRejectsUnterminated(t *testing.T) {
	_, err := parseWith(t, `"no closing quote`, pegutil.String)
	require.Error(t, err)
}

func bareDigits(state *peg.ParserState, pos peg.Position) (peg.Position, bool) {
	return pegutil.NoRedundantZeroes(peg.RepeatAtLeast(1, pegutil.DecDigit(state)))(pos)
}

func TestNoRedundantZeroesRejectsLeadingZero(t *testing.T) {
	_, err := peg.Parse(peg.NewInput("007"), "under_test", peg.Atomic, bareDigits, peg.Options{})
	require.Error(t, err)
}

func TestNoRedundantZeroesAcceptsBareZero(t *testing.T) {
	pairs, err := peg.Parse(peg.NewInput("0"), "under_test", peg.Atomic, bareDigits, peg.Options{})
	require.NoError(t, err)
	require.Equal(t, "0", pairs[0].AsStr())
}

func TestNoRedundantZeroesAcceptsNonZeroLeading(t *testing.T) {
	pairs, err := peg.Parse(peg.NewInput("123"), "under_test", peg.Atomic, bareDigits, peg.Options{})
	require.NoError(t, err)
	require.Equal(t, "123", pairs[0].AsStr())
}
