package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Form records the form name under "form".
func Form(name string) slog.Attr {
	return slog.String("form", name)
}

// Field records a field name under "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Column records a grid column index under "column".
func Column(idx int) slog.Attr {
	return slog.Int("column", idx)
}

// Row records a grid row identifier under "row".
func Row(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("row", id)
}

// Revision records a form revision under "revision".
func Revision(rev uint64) slog.Attr {
	return slog.Uint64("revision", rev)
}
