package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Entry represents a single log entry.
type Entry struct {
	Level     Level
	Message   string
	Fields    Fields
	Timestamp time.Time
}

// Formatter renders log entries to bytes.
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// JSONFormatter renders entries as single-line JSON objects.
type JSONFormatter struct{}

// Format implements Formatter.
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	obj := make(map[string]interface{}, len(entry.Fields)+3)
	obj["level"] = entry.Level.String()
	obj["msg"] = entry.Message
	obj["ts"] = entry.Timestamp.Format(time.RFC3339Nano)
	for k, v := range entry.Fields {
		obj[k] = v
	}
	b, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// TextFormatter renders entries as a human-readable line with sorted fields.
type TextFormatter struct{}

// Format implements Formatter.
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(entry.Timestamp.Format("2006-01-02T15:04:05.000"))
	sb.WriteByte(' ')
	sb.WriteString(entry.Level.String())
	sb.WriteByte(' ')
	sb.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Fields))
	for k := range entry.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%v", k, entry.Fields[k])
	}
	sb.WriteByte('\n')
	return []byte(sb.String()), nil
}
