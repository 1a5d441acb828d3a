package airp

// Parse reads the first value of text.
// It returns the value together with the number of bytes of text it consumed,
// whitespace following the value included. Content after that is left to the
// caller. An empty or all-whitespace text yields a nil value, zero consumed
// and no error. Containers nested deeper than MaxDepth are rejected with
// UnrecognizedToken.
func Parse(text string) (*Value, int, error) {
	return parse(text, 0)
}

// ParseBytes is like Parse for a byte slice.
func ParseBytes(data []byte) (*Value, int, error) {
	return parse(string(data), 0)
}

// ParseStrict is like Parse but fails with UnrecognizedToken if anything
// other than whitespace follows the value.
func ParseStrict(text string) (*Value, error) {
	v, n, err := parse(text, 0)
	if err != nil {
		return nil, err
	}
	rest := text[n:]
	if sp := skipSpace(rest); sp < len(rest) {
		return nil, newParseError(UnrecognizedToken, rest[sp:], n+sp, "trailing content")
	}
	return v, nil
}

// Valid reports whether text holds exactly one value.
func Valid(text string) bool {
	v, err := ParseStrict(text)
	return err == nil && v != nil
}
