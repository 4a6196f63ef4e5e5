// Package document cleans, formats and validates Brazilian taxpayer
// identifiers: CPF (individuals, 11 digits) and CNPJ (companies, 14 digits).
//
// Every function is pure. Inputs are arbitrary user keystrokes; punctuation
// and any other non-digit characters are ignored, so "111.444.777-35" and
// "11144477735" are the same document.
package document

import "errors"

// Type identifies which registry a document number belongs to.
// The zero value means the digit count matches neither.
type Type string

const (
	TypeCPF  Type = "CPF"
	TypeCNPJ Type = "CNPJ"
)

const (
	CPFLength  = 11
	CNPJLength = 14
)

// Domain errors returned by Result.Err
var (
	ErrRequired      = errors.New("document is required")
	ErrInvalidLength = errors.New("document must have 11 (CPF) or 14 (CNPJ) digits")
	ErrInvalidCPF    = errors.New("invalid CPF")
	ErrInvalidCNPJ   = errors.New("invalid CNPJ")
)

// Clean strips every character that is not an ASCII decimal digit,
// preserving order.
func Clean(s string) string {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			buf = append(buf, s[i])
		}
	}
	return string(buf)
}

// TypeOf returns the document type implied by the cleaned digit count.
func TypeOf(s string) Type {
	switch len(Clean(s)) {
	case CPFLength:
		return TypeCPF
	case CNPJLength:
		return TypeCNPJ
	default:
		return ""
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
