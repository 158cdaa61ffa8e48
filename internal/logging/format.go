package logging

import (
	"fmt"
	"sort"
	"strings"
)

// FormatEventLine renders one event as a plain (non-ANSI) log line, used when
// the terminal does not support styling and by the file-less fallback path.
func FormatEventLine(event Event) string {
	ts := event.Time.Format("15:04:05")
	level := strings.ToUpper(event.Level.String())
	fields := ""
	if len(event.Fields) > 0 {
		keys := orderedFieldKeys(event.Fields)
		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", key, formatFieldValue(event.Fields[key])))
		}
		fields = " " + strings.Join(parts, " ")
	}
	return fmt.Sprintf("%s [%s] %s%s\n", ts, level, event.Message, fields)
}

func formatFieldValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "<nil>"
	case error:
		if v == nil {
			return "<nil>"
		}
		return v.Error()
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", value)
	}
}

func orderedFieldKeys(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
