package resume

// Parse dispatches on the prompt format the reply was requested with.
func Parse(format Format, raw string) (StructuredResume, error) {
	if format == FormatJSON {
		return ParseJSON(raw)
	}
	return ParseText(raw)
}
