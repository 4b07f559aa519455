package calc

// Keypad is the button layout, row by row.
var Keypad = [][]string{
	{KeyClear, KeySign, KeyPercent, "/"},
	{"7", "8", "9", "x"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"00", "0", ".", KeyEquals},
}

// KeyForRune maps a typed character to a key label.
func KeyForRune(r rune) (string, bool) {
	switch {
	case r >= '0' && r <= '9':
		return string(r), true
	}
	switch r {
	case '.', '+', '-', '/', '%':
		return string(r), true
	case 'x', 'X', '*', '×':
		return "x", true
	case '=':
		return KeyEquals, true
	case 'n', 'N':
		return KeySign, true
	case 'c', 'C':
		return KeyClear, true
	}
	return "", false
}

// IsAccentKey reports whether key is drawn as an operator button.
func IsAccentKey(key string) bool {
	if key == KeyEquals {
		return true
	}
	_, ok := CanonicalOperator(key)
	return ok
}
