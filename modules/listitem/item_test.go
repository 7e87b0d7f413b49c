package listitem_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/modules/listitem"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

var fixed = time.UnixMilli(1700000000000)

func clock() time.Time { return fixed }

func storedItem() *listitem.Item {
	return &listitem.Item{Label: "Alpha", Value: "A", MinValue: 10, MaxValue: 100, Step: 5}
}

func TestNewPageData(t *testing.T) {
	t.Parallel()

	t.Run("nil yields empty fields", func(t *testing.T) {
		p := listitem.NewPageData(nil)
		assert.Empty(t, p.Label.Value)
		assert.Empty(t, p.MinValue.Value)
		assert.False(t, p.Invalid)
	})

	t.Run("numbers are shown as whole units", func(t *testing.T) {
		p := listitem.NewPageData(&listitem.Item{MinValue: 10.6, MaxValue: 99.4, Step: 5})
		assert.Equal(t, "11", p.MinValue.Value)
		assert.Equal(t, "99", p.MaxValue.Value)
		assert.Equal(t, "5", p.Step.Value)
	})

	t.Run("record round trips", func(t *testing.T) {
		p := listitem.NewPageData(storedItem())
		if diff := cmp.Diff(*storedItem(), p.Record()); diff != "" {
			t.Errorf("record mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid item", func(t *testing.T) {
		p := listitem.NewPageData(storedItem())
		p.Clock = clock
		listitem.Validate(p)

		assert.False(t, p.Invalid)
		assert.Empty(t, p.Fields().Errors(form.PolicyAnyError))
		assert.Equal(t, "Last validated at 1700000000000", p.Message)
	})

	t.Run("blank item", func(t *testing.T) {
		p := listitem.NewPageData(nil)
		listitem.Validate(p)

		assert.True(t, p.Invalid)
		for _, name := range []string{listitem.FieldLabel, listitem.FieldMinValue, listitem.FieldMaxValue, listitem.FieldStep} {
			fv, ok := p.Text(name)
			require.True(t, ok, name)
			assert.Equal(t, "Must not be empty", fv.Error, name)
		}
		assert.Empty(t, p.Value.Error)
		assert.Contains(t, p.Message, "Last validated at ")
	})

	t.Run("rules fire in declaration order", func(t *testing.T) {
		p := listitem.NewPageData(storedItem())

		p.Label.Value = "toolong"
		p.MinValue.Value = "abc"
		p.Step.Value = "200"
		listitem.Validate(p)

		assert.Equal(t, "Must be at most 5 characters", p.Label.Error)
		assert.Equal(t, "Must be a number", p.MinValue.Error)
		assert.Equal(t, "Must be at most 100", p.Step.Error)

		p.MinValue.Value = "5"
		p.Step.Value = "0x10"
		listitem.Validate(p)
		assert.Equal(t, "Must be at least 10", p.MinValue.Error)
		assert.Empty(t, p.Step.Error, "hex literals coerce to 16")
	})

	t.Run("max value must be bigger than the current min value", func(t *testing.T) {
		p := listitem.NewPageData(storedItem())
		p.MinValue.Value = "20"
		p.MaxValue.Value = "20"
		listitem.Validate(p)
		assert.Equal(t, "Must be bigger than minimum", p.MaxValue.Error)

		p.MaxValue.Value = "21"
		listitem.Validate(p)
		assert.Empty(t, p.MaxValue.Error)

		p.MinValue.Value = "30"
		listitem.Validate(p)
		assert.Equal(t, "Must be bigger than minimum", p.MaxValue.Error)
		assert.True(t, p.Invalid)
	})

	t.Run("clock is read on every pass", func(t *testing.T) {
		now := fixed
		p := listitem.NewPageData(storedItem())
		p.Clock = func() time.Time { return now }

		listitem.Validate(p)
		first := p.Message
		now = now.Add(time.Second)
		listitem.Validate(p)

		assert.Equal(t, "Last validated at 1700000000000", first)
		assert.Equal(t, "Last validated at 1700000001000", p.Message)
	})
}

func TestForm(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("editing min value re-checks max value", func(t *testing.T) {
		f := listitem.New(storedItem(), listitem.WithClock(clock))
		defer f.Close()

		minValue, ok := f.Text(listitem.FieldMinValue)
		require.True(t, ok)
		f.Dispatcher().Props(minValue).OnBlur(form.TextEvent("150"))

		f.Read(func(p *listitem.PageData) {
			assert.Equal(t, "Must be bigger than minimum", p.MaxValue.Error)
			assert.False(t, p.MaxValue.Invalid(), "max value was never touched")
			assert.True(t, p.Invalid)
		})

		_, err := f.Submit(ctx)
		require.ErrorIs(t, err, form.ErrInvalidForm)
		assert.Equal(t, []string{listitem.FieldMaxValue}, validator.ExtractValidationErrors(err).Fields())
	})

	t.Run("valid item is saved and flashed", func(t *testing.T) {
		var (
			got     listitem.Item
			flashed string
		)
		f := listitem.New(storedItem(),
			listitem.WithClock(clock),
			listitem.WithSave(func(_ context.Context, item listitem.Item) error {
				got = item
				return nil
			}),
			listitem.WithFlash(func(msg string) { flashed = msg }),
		)
		defer f.Close()

		step, _ := f.Text(listitem.FieldStep)
		f.Dispatcher().Props(step).OnBlur(form.TextEvent("25"))

		item, err := f.Submit(ctx)
		require.NoError(t, err)

		want := *storedItem()
		want.Step = 25
		assert.Equal(t, want, got)
		assert.Equal(t, want, item)
		assert.Equal(t, listitem.SavedMessage, flashed)
	})

	t.Run("unknown field", func(t *testing.T) {
		f := listitem.New(nil)
		defer f.Close()

		_, ok := f.Text("price")
		assert.False(t, ok)
	})
}
