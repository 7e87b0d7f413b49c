package formvalue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/formvalue"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestConstructors(t *testing.T) {
	t.Parallel()

	t.Run("zero values are the defaults", func(t *testing.T) {
		var s formvalue.Value[string]
		var b formvalue.Value[bool]
		assert.Equal(t, "", s.Value)
		assert.False(t, b.Value)
		assert.False(t, s.HasError())
		assert.False(t, b.IsTouched())
	})

	t.Run("string and bool start untouched without error", func(t *testing.T) {
		s := formvalue.String("abc")
		b := formvalue.Bool(true)
		assert.Equal(t, "abc", s.Value)
		assert.True(t, b.Value)
		assert.False(t, s.Touched)
		assert.Empty(t, s.Error)
	})

	t.Run("new hydrates error and touched", func(t *testing.T) {
		v := formvalue.New("x", "too short", true)
		assert.Equal(t, "x", v.Value)
		assert.Equal(t, "too short", v.Message())
		assert.True(t, v.Invalid())
	})
}

func TestInvalid(t *testing.T) {
	t.Parallel()

	v := formvalue.String("")
	v.Error = "required"

	assert.True(t, v.HasError())
	assert.False(t, v.Invalid(), "untouched field never displays its error")

	v.Touch()
	assert.True(t, v.Invalid())

	v.Error = ""
	assert.False(t, v.Invalid())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	required := validator.Required("R")

	t.Run("stores the message", func(t *testing.T) {
		v := formvalue.String("")
		formvalue.Validate(v, required)
		assert.Equal(t, "R", v.Error)
	})

	t.Run("error is stale until the next pass", func(t *testing.T) {
		v := formvalue.String("")
		formvalue.Validate(v, required)
		v.Value = "filled"
		assert.Equal(t, "R", v.Error)

		formvalue.Validate(v, required)
		assert.Empty(t, v.Error)
	})

	t.Run("nil validator clears", func(t *testing.T) {
		v := formvalue.New("", "old", false)
		formvalue.Validate(v, nil)
		assert.Empty(t, v.Error)
	})

	t.Run("repeated passes are stable", func(t *testing.T) {
		v := formvalue.String("ab")
		rule := validator.MinLength(4)("L")
		formvalue.Validate(v, rule)
		formvalue.Validate(v, rule)
		assert.Equal(t, "L", v.Error)
	})
}

func TestReset(t *testing.T) {
	t.Parallel()

	v := formvalue.New("A", "taken", true)
	v.Reset("B")

	assert.Equal(t, "B", v.Value)
	assert.Empty(t, v.Error)
	assert.False(t, v.Touched)
}
