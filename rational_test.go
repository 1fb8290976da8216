package ratmath

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRat(t *testing.T, s string) Rational {
	t.Helper()
	r, err := ParseRational(s)
	require.NoError(t, err, "parsing %q", s)
	return r
}

func TestRationalNormalize(t *testing.T) {
	cases := []struct {
		num, den int64
		want     string
	}{
		{4, 8, "1/2"},
		{-4, 8, "-1/2"},
		{4, -8, "-1/2"},
		{-4, -8, "1/2"},
		{0, 5, "0"},
		{0, -5, "0"},
		{6, 3, "2"},
		{7, 1, "7"},
	}
	for _, c := range cases {
		r, err := RationalOf(c.num, c.den)
		require.NoError(t, err)
		assert.Equal(t, c.want, r.String(), "%d/%d", c.num, c.den)
		assert.Equal(t, 1, r.Den().Sign(), "%d/%d", c.num, c.den)
	}
}

func TestRationalZeroValue(t *testing.T) {
	var z Rational
	assert.True(t, z.IsZero())
	assert.True(t, z.Equal(IntRational(0)))
	assert.Equal(t, "0", z.String())
	assert.Equal(t, "1", z.Den().String())
	assert.True(t, z.Add(IntRational(3)).Equal(IntRational(3)))
}

func TestRationalOfUnsigned(t *testing.T) {
	r, err := RationalOf[uint64](math.MaxUint64, 1)
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551615", r.String())
	_, err = RationalOf[uint8](1, 0)
	var derr *DivisionError
	assert.ErrorAs(t, err, &derr)
}

func TestNewRationalCopies(t *testing.T) {
	n, d := big.NewInt(2), big.NewInt(3)
	r, err := NewRational(n, d)
	require.NoError(t, err)
	n.SetInt64(100)
	d.SetInt64(7)
	assert.Equal(t, "2/3", r.String())
	r.Num().SetInt64(5)
	assert.Equal(t, "2/3", r.String())
}

func TestParseRational(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"0", "0"},
		{"12", "12"},
		{"-12", "-12"},
		{"+3", "3"},
		{"4/8", "1/2"},
		{"-4/8", "-1/2"},
		{" 3/9 ", "1/3"},
		{"1..1/2", "3/2"},
		{"-1..1/2", "-3/2"},
		{"-0..1/2", "-1/2"},
		{"2..0/5", "2"},
		{"123456789012345678901234567890/10", "12345678901234567890123456789"},
	}
	for _, c := range cases {
		r, err := ParseRational(c.src)
		if assert.NoError(t, err, "parsing %q", c.src) {
			assert.Equal(t, c.want, r.String(), "parsing %q", c.src)
		}
	}
}

func TestParseRationalErrors(t *testing.T) {
	cases := []struct {
		src string
		err any
	}{
		{"", new(*FormatError)},
		{"x", new(*FormatError)},
		{"1/", new(*FormatError)},
		{"/2", new(*FormatError)},
		{"1/2/3", new(*FormatError)},
		{"1/-2", new(*FormatError)},
		{"1.5", new(*FormatError)},
		{"1/0", new(*DivisionError)},
		{"1..", new(*FormatError)},
		{"1..2", new(*FormatError)},
		{"1..2/", new(*FormatError)},
		{"1..2/0", new(*DivisionError)},
	}
	for _, c := range cases {
		_, err := ParseRational(c.src)
		assert.Error(t, err, "parsing %q", c.src)
		assert.True(t, errors.As(err, c.err), "parsing %q gave %#v", c.src, err)
	}
}

func TestParseMixedReasons(t *testing.T) {
	_, err := ParseMixed("1..")
	assert.ErrorContains(t, err, "missing numerator")
	_, err = ParseMixed("1..2")
	assert.ErrorContains(t, err, "missing denominator")
}

func TestRationalArithmetic(t *testing.T) {
	a, b := mustRat(t, "1/2"), mustRat(t, "-2/3")
	assert.Equal(t, "-1/6", a.Add(b).String())
	assert.Equal(t, "7/6", a.Sub(b).String())
	assert.Equal(t, "-1/3", a.Mul(b).String())
	q, err := a.Div(b)
	require.NoError(t, err)
	assert.Equal(t, "-3/4", q.String())
	assert.Equal(t, "1/2", a.Neg().Neg().String())
	assert.Equal(t, "2/3", b.Abs().String())
	inv, err := b.Reciprocal()
	require.NoError(t, err)
	assert.Equal(t, "-3/2", inv.String())
}

func TestRationalCanonicalZero(t *testing.T) {
	a := mustRat(t, "7/13")
	z := a.Add(a.Neg())
	assert.True(t, z.IsZero())
	assert.Equal(t, "0", z.Num().String())
	assert.Equal(t, "1", z.Den().String())
	assert.True(t, z.Equal(Rational{}))
}

func TestRationalDivisionErrors(t *testing.T) {
	var derr *DivisionError
	_, err := IntRational(1).Div(Rational{})
	assert.ErrorAs(t, err, &derr)
	_, err = Rational{}.Reciprocal()
	assert.ErrorAs(t, err, &derr)
	_, err = NewRational(big.NewInt(1), big.NewInt(0))
	assert.ErrorAs(t, err, &derr)
}

func TestRationalPow(t *testing.T) {
	cases := []struct {
		base string
		exp  int64
		want string
	}{
		{"2/3", 0, "1"},
		{"2/3", 1, "2/3"},
		{"2/3", 3, "8/27"},
		{"-2/3", 3, "-8/27"},
		{"-2/3", 2, "4/9"},
		{"2/3", -2, "9/4"},
		{"-2/3", -3, "-27/8"},
		{"0", 5, "0"},
		{"1", math.MinInt64, "1"},
		{"-1", math.MinInt64, "1"},
		{"-1", math.MaxInt64, "-1"},
	}
	for _, c := range cases {
		r, err := mustRat(t, c.base).Pow(c.exp)
		if assert.NoError(t, err, "%s^%d", c.base, c.exp) {
			assert.Equal(t, c.want, r.String(), "%s^%d", c.base, c.exp)
		}
	}
}

func TestRationalPowDomain(t *testing.T) {
	var derr *DomainError
	_, err := Rational{}.Pow(0)
	assert.ErrorAs(t, err, &derr)
	assert.ErrorContains(t, err, "power of zero")
	_, err = Rational{}.Pow(-2)
	assert.ErrorAs(t, err, &derr)
	assert.ErrorContains(t, err, "negative power")
}

func TestRationalCompare(t *testing.T) {
	a, b := mustRat(t, "-1/2"), mustRat(t, "1/3")
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(mustRat(t, "-2/4")))
	assert.True(t, a.Less(b))
	assert.True(t, a.LessEq(a))
	assert.True(t, b.Greater(a))
	assert.True(t, b.GreaterEq(b))
	assert.False(t, a.Equal(b))
	assert.Equal(t, -1, a.Sign())
	assert.Equal(t, 0, Rational{}.Sign())
	assert.True(t, IntRational(-4).IsInt())
	assert.False(t, b.IsInt())
}

func TestRationalMixedString(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"3/2", "1..1/2"},
		{"-3/2", "-1..1/2"},
		{"-1/2", "-0..1/2"},
		{"1/2", "0..1/2"},
		{"7", "7"},
		{"-7", "-7"},
		{"0", "0"},
		{"22/7", "3..1/7"},
	}
	for _, c := range cases {
		r := mustRat(t, c.src)
		got := r.MixedString()
		assert.Equal(t, c.want, got, "formatting %s", c.src)
		back, err := ParseRational(got)
		if assert.NoError(t, err, "reparsing %q", got) {
			assert.True(t, back.Equal(r), "%q reparsed as %v, not %v", got, back, r)
		}
	}
}

func TestRationalRat(t *testing.T) {
	r := mustRat(t, "-6/4")
	assert.Equal(t, "-3/2", r.Rat().RatString())
}
