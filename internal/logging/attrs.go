package logging

import "log/slog"

// Log call sites pass slog.Attr values (via Field); events carry them as a
// plain map so the file sink and the panel's log subscribers can consume
// them without slog in their signatures.
func attrsToMap(attrs []slog.Attr) map[string]any {
	if len(attrs) == 0 {
		return nil
	}
	fields := make(map[string]any, len(attrs))
	for _, attr := range attrs {
		key, value := flattenAttr(attr)
		if key == "" {
			continue
		}
		fields[key] = value
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// flattenAttr resolves LogValuer indirection and turns slog groups into
// nested maps.
func flattenAttr(attr slog.Attr) (string, any) {
	if attr.Key == "" {
		return "", nil
	}
	value := attr.Value.Resolve()
	if value.Kind() != slog.KindGroup {
		return attr.Key, value.Any()
	}
	nested := map[string]any{}
	for _, member := range value.Group() {
		if key, val := flattenAttr(member); key != "" {
			nested[key] = val
		}
	}
	return attr.Key, nested
}
