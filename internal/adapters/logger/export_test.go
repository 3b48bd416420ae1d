package logger

// Exported for white-box testing.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
	FormatCauses        = formatCauses
)

// Format exposes the message pipeline without a host.
func (a *Adapter) Format(msg string, args ...any) string {
	return a.format(msg, args)
}

// EntryMessage returns the message of a collected entry.
func EntryMessage(e errorEntry) string { return e.message }

// EntryMetadata returns the metadata of a collected entry.
func EntryMetadata(e errorEntry) map[string]any { return e.metadata }
