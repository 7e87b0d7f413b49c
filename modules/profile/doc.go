// Package profile implements the profile editor form: name, e-mail, sex,
// civil status, an opt-in phone number and a password with confirmation.
//
// NewPageData hydrates the form from an optional stored profile, Validate
// recomputes every field error (the phone rules only apply when phone calls
// are allowed, the confirmation must equal the current password) and Form
// ties it all to a dispatcher with a save callback:
//
//	f := profile.New(stored, profile.WithSave(repo.SaveProfile))
//	defer f.Close()
//
//	name, _ := f.Text(profile.FieldName)
//	f.Dispatcher().Input(name, true, true)(form.TextEvent(""))
//	_, err := f.Submit(ctx) // form.ErrInvalidForm, nothing saved
package profile
