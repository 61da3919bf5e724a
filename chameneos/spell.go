package chameneos

// digitWords spells a single decimal digit, each with a leading space —
// matching the reference benchmark's concatenation of " zero".." nine"
// with no separator between digits.
var digitWords = [10]string{
	" zero", " one", " two", " three", " four",
	" five", " six", " seven", " eight", " nine",
}

// Spell renders n as a space-separated sequence of English digit names,
// most significant digit first, e.g. Spell(10) == " one zero".
func Spell(n int) string {
	if n == 0 {
		return digitWords[0]
	}

	var out string
	for n > 0 {
		out = digitWords[n%10] + out
		n /= 10
	}
	return out
}
