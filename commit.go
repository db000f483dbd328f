package fseries

// CommitOrKeep implements the last-good-value policy for text input.
// It parses text and, on success, replaces *current with the result. On
// failure *current is left untouched and the parse error is returned; the
// caller keeps the text as typed so the user may go on editing it.
//
// Both expression commits and coefficient bound commits go through here.
func CommitOrKeep[T any](current *T, text string, parse func(string) (T, error)) error {
	v, err := parse(text)
	if err != nil {
		tracer().Debugf("keeping last good value, cannot parse %q: %v", text, err)
		return err
	}
	*current = v
	return nil
}
