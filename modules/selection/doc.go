// Package selection implements the multi-column selection grid.
//
// Each column holds an ordered list of rows. A row picks one option from
// the configured option list, carries an amount and shows a price derived
// from both. Within a column an option may be picked by one row only, so
// the choices offered to a row are the full option list minus what the
// other rows of the same column picked (see AllowedSelections).
//
// Prices are quoted by a Pricer after a delay, on a task that belongs to
// the row. Removing the row or editing it again cancels the task, and a
// result that arrives for a row that no longer exists, or for an older
// edit of it, is dropped:
//
//	g := selection.NewGrid(options, stored, selection.WithDelay(time.Second))
//	defer g.Close()
//
//	id, _ := g.Add(0)
//	_ = g.Input(0, id, selection.FieldAmount, "20", true) // blur: validate and reprice
//	_ = g.Wait()
//	records := g.Records()
package selection
