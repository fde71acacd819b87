package base79

// MarshalText implements encoding.TextMarshaler.
func (n Number) MarshalText() (text []byte, err error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Number) UnmarshalText(text []byte) (err error) {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*n = parsed

	return nil
}
