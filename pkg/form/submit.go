package form

import (
	"context"
	"fmt"
)

// SaveFunc persists a plain record built from a valid form.
type SaveFunc[T any] func(ctx context.Context, record T) error

// FlashFunc shows a one-off message after a successful save.
type FlashFunc func(message string)

// Submit re-validates the root, asks check whether it may be saved and, if
// so, hands the record built by build to save. build and check run under the
// dispatcher lock, save does not. A nil save makes Submit a dry run.
func Submit[R, T any](ctx context.Context, d *Dispatcher[R], check func(root *R) error, build func(root *R) T, save SaveFunc[T]) (T, error) {
	var (
		record   T
		checkErr error
	)

	err := d.Update(func(root *R) {
		d.runValidate(root)
		if checkErr = check(root); checkErr != nil {
			return
		}
		record = build(root)
	})
	if err != nil {
		return record, err
	}
	if checkErr != nil {
		return record, checkErr
	}

	if save != nil {
		if err := save(ctx, record); err != nil {
			return record, fmt.Errorf("form %s: save: %w", d.name, err)
		}
	}
	return record, nil
}
