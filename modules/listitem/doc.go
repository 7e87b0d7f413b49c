// Package listitem implements the editor for one entry of the option list.
//
// An Item keeps its bounds as numbers while the form edits them as text.
// Validation checks each field on its own and adds one cross-field rule:
// the maximum value must be bigger than the current minimum value. Every
// validation pass stamps PageData.Message with the time it ran, read from
// the page clock so tests can pin it.
//
//	f := listitem.New(&item, listitem.WithSave(store), listitem.WithFlash(flash))
//	defer f.Close()
//
//	minValue, _ := f.Text(listitem.FieldMinValue)
//	f.Dispatcher().Props(minValue).OnBlur(form.TextEvent("20"))
//
//	saved, err := f.Submit(ctx)
package listitem
