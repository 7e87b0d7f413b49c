package validator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestToNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"   ", 0},
		{"42", 42},
		{" 42 ", 42},
		{"\t7\n", 7},
		{"-3.5", -3.5},
		{"+3", 3},
		{".5", 0.5},
		{"5.", 5},
		{"1e3", 1000},
		{"1E-2", 0.01},
		{"0x1A", 26},
		{"0o17", 15},
		{"0b101", 5},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"007", 7},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.ToNumber(tt.in))
		})
	}

	nan := []string{"abc", "12abc", "1,5", "1_000", "-0x10", "0x", "0xZZ", "infinity", "NaN", "--1", "1e", "."}
	for _, in := range nan {
		t.Run("NaN "+in, func(t *testing.T) {
			assert.True(t, math.IsNaN(validator.ToNumber(in)))
		})
	}
}

func TestNumeric(t *testing.T) {
	t.Parallel()

	v := validator.Numeric("N")

	t.Run("empty string coerces to zero", func(t *testing.T) {
		assert.Empty(t, v(""))
	})

	t.Run("letters fail", func(t *testing.T) {
		assert.Equal(t, "N", v("abc"))
	})

	t.Run("numbers pass", func(t *testing.T) {
		assert.Empty(t, v("12.5"))
		assert.Empty(t, v("0x10"))
	})

	t.Run("default message", func(t *testing.T) {
		assert.Equal(t, "must be a number", validator.Numeric("")("x"))
	})
}

func TestMin(t *testing.T) {
	t.Parallel()

	v := validator.Min(5)("M")

	assert.Empty(t, v("5"))
	assert.Empty(t, v("6"))
	assert.Equal(t, "M", v("4"))
	assert.Equal(t, "M", v(""), "empty coerces to 0")
	assert.Empty(t, v("abc"), "NaN is left to Numeric")
	assert.Equal(t, "must be at least 5", validator.Min(5)("")("1"))
}

func TestMax(t *testing.T) {
	t.Parallel()

	v := validator.Max(100)("X")

	assert.Empty(t, v("100"))
	assert.Empty(t, v("-1"))
	assert.Equal(t, "X", v("101"))
	assert.Empty(t, v("abc"), "NaN is left to Numeric")
}

func TestBiggerThan(t *testing.T) {
	t.Parallel()

	v := validator.BiggerThan("10")("B")

	assert.Empty(t, v("11"))
	assert.Equal(t, "B", v("10"), "equal is not bigger")
	assert.Equal(t, "B", v("9"))
	assert.Empty(t, validator.BiggerThan("abc")("B")("5"), "NaN sibling never fails")
}

func TestAmountRuleChain(t *testing.T) {
	t.Parallel()

	amount := validator.Compose(
		validator.Required("Please enter amount"),
		validator.Numeric("must be a number"),
		validator.Min(5)("Must be at least 5"),
		validator.Max(100)("Must be less than 100"),
	)

	assert.Equal(t, "Please enter amount", amount(""))
	assert.Equal(t, "must be a number", amount("x"))
	assert.Equal(t, "Must be at least 5", amount("4"))
	assert.Equal(t, "Must be less than 100", amount("101"))
	assert.Empty(t, amount("15"))
}
