package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCPF(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"formatted", "111.444.777-35", true},
		{"bare digits", "11144477735", true},
		{"another valid", "529.982.247-25", true},
		{"first check digit wrong", "111.444.777-45", false},
		{"second check digit wrong", "111.444.777-36", false},
		{"all same digit", "111.111.111-11", false},
		{"all zeros", "000.000.000-00", false},
		{"too short", "123", false},
		{"too long", "111444777350", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateCPF(tt.input))
		})
	}
}

func TestValidateCPF_AllRepeatedSequences(t *testing.T) {
	for c := byte('0'); c <= '9'; c++ {
		s := string(repeat(c, CPFLength))
		assert.False(t, ValidateCPF(s), s)
	}
}

func TestValidateCNPJ(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"formatted", "11.222.333/0001-81", true},
		{"bare digits", "11222333000181", true},
		{"another valid", "11.444.777/0001-61", true},
		{"last digit mutated", "11.222.333/0001-82", false},
		{"first check digit mutated", "11.222.333/0001-91", false},
		{"all same digit", "11.111.111/1111-11", false},
		{"cpf length", "111.444.777-35", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateCNPJ(tt.input))
		})
	}
}

func TestValidateCNPJ_AllRepeatedSequences(t *testing.T) {
	for c := byte('0'); c <= '9'; c++ {
		s := string(repeat(c, CNPJLength))
		assert.False(t, ValidateCNPJ(s), s)
	}
}

func TestCNPJCheckDigit_WeightCycle(t *testing.T) {
	// 5,4,3,2,9,8,7,6,5,4,3,2 over 11.222.333/0001 sums to 102.
	d := []int{1, 1, 2, 2, 2, 3, 3, 3, 0, 0, 0, 1}
	assert.Equal(t, 8, cnpjCheckDigit(d))
	assert.Equal(t, 1, cnpjCheckDigit(append(d, 8)))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		valid   bool
		docType Type
		code    Code
		message string
	}{
		{"empty", "", false, "", CodeRequired, "Required field"},
		{"punctuation only", ".-/", false, "", CodeRequired, "Required field"},
		{"valid cpf", "111.444.777-35", true, TypeCPF, CodeCPFValid, "Valid CPF"},
		{"invalid cpf", "111.444.777-00", false, TypeCPF, CodeCPFInvalid, "Invalid CPF"},
		{"valid cnpj", "11.222.333/0001-81", true, TypeCNPJ, CodeCNPJValid, "Valid CNPJ"},
		{"invalid cnpj", "11.222.333/0001-00", false, TypeCNPJ, CodeCNPJInvalid, "Invalid CNPJ"},
		{"twelve digits", "111444777351", false, "", CodeInvalidLength, "Enter a valid CPF (11 digits) or CNPJ (14 digits)"},
		{"short", "123", false, "", CodeInvalidLength, "Enter a valid CPF (11 digits) or CNPJ (14 digits)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.input)
			assert.Equal(t, tt.valid, got.Valid)
			assert.Equal(t, tt.docType, got.Type)
			assert.Equal(t, tt.code, got.Code)
			assert.Equal(t, tt.message, got.Message)
		})
	}
}

func TestValidate_TypeFollowsLength(t *testing.T) {
	for n := 0; n <= 20; n++ {
		s := string(repeat('7', n))
		got := Validate(s)
		switch n {
		case CPFLength:
			assert.Equal(t, TypeCPF, got.Type, n)
		case CNPJLength:
			assert.Equal(t, TypeCNPJ, got.Type, n)
		default:
			assert.Equal(t, Type(""), got.Type, n)
		}
		assert.Equal(t, got.Type, TypeOf(s))
	}
}

func TestValidate_IgnoresPunctuation(t *testing.T) {
	assert.Equal(t, ValidateCPF("11144477735"), ValidateCPF("111.444.777-35"))
	assert.Equal(t, Validate("11222333000181"), Validate(" 11.222.333 / 0001-81 "))
}

func TestResult_Err(t *testing.T) {
	assert.NoError(t, Validate("111.444.777-35").Err())
	assert.ErrorIs(t, Validate("").Err(), ErrRequired)
	assert.ErrorIs(t, Validate("123").Err(), ErrInvalidLength)
	assert.ErrorIs(t, Validate("111.444.777-00").Err(), ErrInvalidCPF)
	assert.ErrorIs(t, Validate("11.222.333/0001-00").Err(), ErrInvalidCNPJ)
}

func TestResult_JSON(t *testing.T) {
	data, err := json.Marshal(Validate("123"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"valid":false,"documentType":null,"code":"invalid_length","message":"Enter a valid CPF (11 digits) or CNPJ (14 digits)"}`, string(data))

	data, err = json.Marshal(Validate("11.222.333/0001-81"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"valid":true,"documentType":"CNPJ","code":"cnpj_valid","message":"Valid CNPJ"}`, string(data))
}

func repeat(c byte, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = c
	}
	return b
}

func TestCodeOf(t *testing.T) {
	for _, input := range []string{"", "123", "111.444.777-00", "11.222.333/0001-00"} {
		res := Validate(input)
		code, ok := CodeOf(fmt.Errorf("saving profile: %w", res.Err()))
		assert.True(t, ok, input)
		assert.Equal(t, res.Code, code, input)
	}

	_, ok := CodeOf(errors.New("unrelated"))
	assert.False(t, ok)
	_, ok = CodeOf(nil)
	assert.False(t, ok)
}
