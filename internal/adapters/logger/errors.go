package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager describes an error that can report its own message without the chain.
// zerr.Error provides it.
type messager interface {
	Message() string
}

type metadataer interface {
	Metadata() map[string]any
}

type errorEntry struct {
	message  string
	metadata map[string]any
}

// collectErrorEntries walks the chain of err. zerr errors contribute their own
// message and metadata; the first standard error ends the walk with its full text.
// Metadata-only links, as created by zerr.With on a standard error, merge into
// the next entry.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	var carried map[string]any

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error(), metadata: carried})
			break
		}

		var meta map[string]any
		if md, ok := current.(metadataer); ok {
			meta = md.Metadata()
		}

		if m.Message() == "" {
			carried = mergeMetadata(carried, meta)
		} else {
			entries = append(entries, errorEntry{message: m.Message(), metadata: mergeMetadata(carried, meta)})
			carried = nil
		}
		current = errors.Unwrap(current)
	}

	return entries
}

func mergeMetadata(dst, src map[string]any) map[string]any {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	maps.Copy(dst, src)
	return dst
}

// formatErrorEntries renders the chain as an "Error:" line followed by a
// "Caused by:" block.
func formatErrorEntries(entries []errorEntry) string {
	if len(entries) == 0 {
		return ""
	}

	lines := strings.Split(entryText(entries[0]), "\n")
	formatted := make([]string, 0, len(lines)+2*len(entries))
	formatted = append(formatted, "Error: "+lines[0])
	for _, line := range lines[1:] {
		formatted = append(formatted, "       "+line)
	}

	formatted = appendCauses(formatted, entries[1:])
	return strings.Join(formatted, "\n")
}

// formatCauses renders every entry as a cause. It is used for the error
// attribute of a log record, where the record message is the headline.
func formatCauses(entries []errorEntry) string {
	return strings.Join(appendCauses(nil, entries), "\n")
}

func appendCauses(formatted []string, entries []errorEntry) []string {
	for i, entry := range entries {
		if i == 0 {
			formatted = append(formatted, "", "  Caused by:")
		}
		lines := strings.Split(entryText(entry), "\n")
		formatted = append(formatted, "    → "+lines[0])
		for _, line := range lines[1:] {
			formatted = append(formatted, "      "+line)
		}
	}
	return formatted
}

// entryText appends sorted metadata to the message.
func entryText(entry errorEntry) string {
	if len(entry.metadata) == 0 {
		return entry.message
	}

	keys := slices.Sorted(maps.Keys(entry.metadata))
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, entry.metadata[k]))
	}
	return entry.message + " (" + strings.Join(pairs, ", ") + ")"
}
