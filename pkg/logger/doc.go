// Package logger builds *slog.Logger instances for formkit components.
//
// New takes functional options for the output format (text or json), the
// minimum level, static attributes and context extractors that inject values
// such as a session id into every record. The handler is wrapped in
// LogHandlerDecorator, which runs the extractors on each Handle call. The
// index of the UI event being replayed, set with WithStep, is always
// extracted.
//
//	log := logger.New(
//	    logger.WithDevelopment("formscript"),
//	    logger.WithContextValue("session", sessionKey{}),
//	)
//	log.DebugContext(ctx, "field changed", logger.Form("profile"), logger.Revision(3))
//
// Components that accept an optional logger fall back to Discard so they can
// log unconditionally.
//
// Attribute helpers in attr.go keep key names consistent: form, field,
// column, row, revision, error.
package logger
