package roman

// Check normalises raw and validates it with engine, returning the
// upper-case numeral on success.
func Check(raw string, engine Engine) (string, error) {
	s, err := NormaliseNumeral(raw)
	if err != nil {
		return "", err
	}
	if !engine.Validate(s) {
		return s, &NumeralError{Numeral: s}
	}
	return s, nil
}

// ToInt converts a raw numeral to its value. The numeral is normalised and
// validated with engine before it is decoded.
func ToInt(raw string, engine Engine) (int, error) {
	s, err := Check(raw, engine)
	if err != nil {
		return 0, err
	}
	return decode(s), nil
}

// FromInt returns the canonical numeral for n.
func FromInt(n int) (string, error) {
	if n < Min || n > Max {
		return "", &RangeError{Value: n}
	}
	return encode(n), nil
}
