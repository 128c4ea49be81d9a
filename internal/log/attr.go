package log

import "log/slog"

// OmitEmpty builds an attribute with fn unless value is the zero value of
// its type, in which case it returns an empty attribute.
// The handler drops empty attributes, so
//
//	log.Info("wrote", OmitEmpty(slog.String, "output", path))
//
// leaves out output= when path is empty.
func OmitEmpty[T comparable](fn func(string, T) slog.Attr, key string, value T) slog.Attr {
	var zero T
	if value == zero {
		return slog.Attr{}
	}
	return fn(key, value)
}
