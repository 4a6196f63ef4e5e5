package document

import "errors"

// Code is a machine-readable validation outcome, used to look up
// localised messages.
type Code string

const (
	CodeRequired      Code = "required"
	CodeInvalidLength Code = "invalid_length"
	CodeCPFValid      Code = "cpf_valid"
	CodeCPFInvalid    Code = "cpf_invalid"
	CodeCNPJValid     Code = "cnpj_valid"
	CodeCNPJInvalid   Code = "cnpj_invalid"
)

// DefaultMessages holds the English message for every Code.
var DefaultMessages = map[Code]string{
	CodeRequired:      "Required field",
	CodeInvalidLength: "Enter a valid CPF (11 digits) or CNPJ (14 digits)",
	CodeCPFValid:      "Valid CPF",
	CodeCPFInvalid:    "Invalid CPF",
	CodeCNPJValid:     "Valid CNPJ",
	CodeCNPJInvalid:   "Invalid CNPJ",
}

// Result is the outcome of Validate. It is always produced; invalid input
// is reported through Valid and Code, never through a panic or error.
type Result struct {
	Valid   bool   `json:"valid"`
	Type    Type   `json:"documentType"`
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// MarshalJSON renders an indeterminate Type as null.
func (t Type) MarshalJSON() ([]byte, error) {
	if t == "" {
		return []byte("null"), nil
	}
	return []byte(`"` + string(t) + `"`), nil
}

// Err maps a failed result onto the package's sentinel errors.
// It returns nil for a valid result.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	switch r.Code {
	case CodeRequired:
		return ErrRequired
	case CodeCPFInvalid:
		return ErrInvalidCPF
	case CodeCNPJInvalid:
		return ErrInvalidCNPJ
	default:
		return ErrInvalidLength
	}
}

// CodeOf returns the failure code behind one of the package's sentinel
// errors, unwrapping as needed.
func CodeOf(err error) (Code, bool) {
	switch {
	case errors.Is(err, ErrRequired):
		return CodeRequired, true
	case errors.Is(err, ErrInvalidLength):
		return CodeInvalidLength, true
	case errors.Is(err, ErrInvalidCPF):
		return CodeCPFInvalid, true
	case errors.Is(err, ErrInvalidCNPJ):
		return CodeCNPJInvalid, true
	default:
		return "", false
	}
}

// Validate dispatches on the cleaned digit count: 11 digits are checked as
// a CPF, 14 as a CNPJ, anything else is rejected without a type.
func Validate(s string) Result {
	switch len(Clean(s)) {
	case 0:
		return newResult(false, "", CodeRequired)
	case CPFLength:
		if ValidateCPF(s) {
			return newResult(true, TypeCPF, CodeCPFValid)
		}
		return newResult(false, TypeCPF, CodeCPFInvalid)
	case CNPJLength:
		if ValidateCNPJ(s) {
			return newResult(true, TypeCNPJ, CodeCNPJValid)
		}
		return newResult(false, TypeCNPJ, CodeCNPJInvalid)
	default:
		return newResult(false, "", CodeInvalidLength)
	}
}

func newResult(valid bool, t Type, code Code) Result {
	return Result{Valid: valid, Type: t, Code: code, Message: DefaultMessages[code]}
}

// ValidateCPF reports whether s holds exactly 11 digits, not all equal,
// whose two trailing check digits match the mod-11 checksum.
func ValidateCPF(s string) bool {
	d, ok := digitsOf(s, CPFLength)
	if !ok {
		return false
	}
	return d[9] == cpfCheckDigit(d[:9]) && d[10] == cpfCheckDigit(d[:10])
}

// ValidateCNPJ reports whether s holds exactly 14 digits, not all equal,
// whose two trailing check digits match the mod-11 checksum.
func ValidateCNPJ(s string) bool {
	d, ok := digitsOf(s, CNPJLength)
	if !ok {
		return false
	}
	return d[12] == cnpjCheckDigit(d[:12]) && d[13] == cnpjCheckDigit(d[:13])
}

// digitsOf returns the numeric digits of s when there are exactly n of them
// and they are not all the same.
func digitsOf(s string, n int) ([]int, bool) {
	cleaned := Clean(s)
	if len(cleaned) != n {
		return nil, false
	}

	d := make([]int, n)
	repeated := true
	for i := 0; i < n; i++ {
		d[i] = int(cleaned[i] - '0')
		if cleaned[i] != cleaned[0] {
			repeated = false
		}
	}
	if repeated {
		return nil, false
	}
	return d, true
}

// cpfCheckDigit weighs the leftmost digit with len(d)+1 down to 2 on the right.
func cpfCheckDigit(d []int) int {
	sum := 0
	for i, v := range d {
		sum += v * (len(d) + 1 - i)
	}
	r := 11 - sum%11
	if r >= 10 {
		return 0
	}
	return r
}

// cnpjCheckDigit weighs digits from the right starting at 2, wrapping from
// 9 back to 2.
func cnpjCheckDigit(d []int) int {
	sum := 0
	weight := 2
	for i := len(d) - 1; i >= 0; i-- {
		sum += d[i] * weight
		weight++
		if weight > 9 {
			weight = 2
		}
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}
