package logging

import (
	"encoding/json"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	color "github.com/smartchessacademy/website/src/ansicolor"
)

// PrettyZerologWriter reformats zerolog's JSON output for human eyes on a
// terminal. Structured output for log aggregation is not a concern here; the
// site runs on a single box.
type PrettyZerologWriter struct {
	wd                  string
	wasLastLogMultiline bool
}

type prettyLogEntry struct {
	Timestamp  string
	Level      string
	Message    string
	Error      string
	StackTrace []any

	OtherFields []prettyField
}

type prettyField struct {
	Name  string
	Value any
}

var colorFromLevel = map[string]string{
	"trace": color.Gray,
	"debug": color.Gray,
	"info":  color.BgBlue,
	"warn":  color.BgYellow,
	"error": color.BgRed,
	"fatal": color.BgRed,
	"panic": color.BgRed,
}

func NewPrettyZerologWriter() *PrettyZerologWriter {
	wd, _ := os.Getwd()
	return &PrettyZerologWriter{
		wd: wd,
	}
}

func (w *PrettyZerologWriter) Write(p []byte) (int, error) {
	var fields map[string]any
	err := json.Unmarshal(p, &fields)
	if err != nil {
		return os.Stderr.Write(p)
	}

	var pretty prettyLogEntry
	for name, val := range fields {
		switch name {
		case zerolog.TimestampFieldName:
			pretty.Timestamp, _ = val.(string)
		case zerolog.LevelFieldName:
			pretty.Level, _ = val.(string)
		case zerolog.MessageFieldName:
			pretty.Message, _ = val.(string)
		case zerolog.ErrorFieldName:
			pretty.Error, _ = val.(string)
		case zerolog.ErrorStackFieldName:
			pretty.StackTrace, _ = val.([]any)
		default:
			pretty.OtherFields = append(pretty.OtherFields, prettyField{
				Name:  name,
				Value: val,
			})
		}
	}

	sort.Slice(pretty.OtherFields, func(i, j int) bool {
		return pretty.OtherFields[i].Name < pretty.OtherFields[j].Name
	})

	isMultiline := pretty.Error != "" || pretty.StackTrace != nil || pretty.OtherFields != nil

	var b strings.Builder
	if isMultiline || w.wasLastLogMultiline {
		b.WriteString("---------------------------------------\n")
	}
	b.WriteString(pretty.Timestamp)
	b.WriteString(" ")
	if pretty.Level != "" {
		b.WriteString(colorFromLevel[pretty.Level])
		b.WriteString(color.Bold)
		b.WriteString(strings.ToUpper(pretty.Level))
		b.WriteString(color.Reset)
		b.WriteString(": ")
	}
	b.WriteString(pretty.Message)
	b.WriteString("\n")
	if pretty.Error != "" {
		b.WriteString("  " + color.Bold + color.Red + "ERROR:" + color.Reset + " ")
		b.WriteString(pretty.Error)
		b.WriteString("\n")
	}
	if len(pretty.OtherFields) > 0 {
		b.WriteString("  " + color.Bold + color.Blue + "Fields:" + color.Reset + "\n")
		for _, field := range pretty.OtherFields {
			valuePretty, _ := json.MarshalIndent(field.Value, "    ", "  ")
			b.WriteString("    ")
			b.WriteString(field.Name)
			b.WriteString(": ")
			b.Write(valuePretty)
			b.WriteString("\n")
		}
	}
	if pretty.StackTrace != nil {
		b.WriteString("  " + color.Bold + color.Blue + "Stack trace:" + color.Reset + "\n")
		for _, frame := range pretty.StackTrace {
			frameMap, ok := frame.(map[string]any)
			if !ok {
				continue
			}
			file, _ := frameMap["file"].(string)
			file = strings.Replace(file, w.wd, ".", 1)
			function, _ := frameMap["function"].(string)
			line, _ := frameMap["line"].(float64)

			b.WriteString("    ")
			b.WriteString(function)
			b.WriteString(" (")
			b.WriteString(file)
			b.WriteString(":")
			b.WriteString(strconv.Itoa(int(line)))
			b.WriteString(")\n")
		}
	}

	w.wasLastLogMultiline = isMultiline

	return os.Stderr.Write([]byte(b.String()))
}
