package document

import "strings"

// FormatCPF applies the CPF mask XXX.XXX.XXX-XX to the digits of s.
// Partial input is formatted progressively, so it can be called on every
// keystroke. When s holds more than 11 digits it is returned unchanged,
// since the caller is most likely typing a CNPJ.
func FormatCPF(s string) string {
	digits := Clean(s)
	if len(digits) > CPFLength {
		return s
	}
	return mask(digits, []separator{{3, '.'}, {6, '.'}, {9, '-'}})
}

// FormatCNPJ applies the CNPJ mask XX.XXX.XXX/XXXX-XX to the digits of s,
// progressively for partial input. Past 14 digits the hyphen keeps
// preceding the last two digits.
func FormatCNPJ(s string) string {
	digits := Clean(s)
	hyphen := 12
	if len(digits) > CNPJLength {
		hyphen = len(digits) - 2
	}
	return mask(digits, []separator{{2, '.'}, {5, '.'}, {8, '/'}, {hyphen, '-'}})
}

// Format picks the CPF mask for up to 11 digits and the CNPJ mask above that.
func Format(s string) string {
	if len(Clean(s)) <= CPFLength {
		return FormatCPF(s)
	}
	return FormatCNPJ(s)
}

type separator struct {
	after int
	char  byte
}

// mask inserts each separator once at least one digit follows its position.
func mask(digits string, seps []separator) string {
	var b strings.Builder
	b.Grow(len(digits) + len(seps))

	next := 0
	for i := 0; i < len(digits); i++ {
		if next < len(seps) && i == seps[next].after {
			b.WriteByte(seps[next].char)
			next++
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}
