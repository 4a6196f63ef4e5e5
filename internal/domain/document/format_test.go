package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"111.444.777-35", "11144477735"},
		{"11.222.333/0001-81", "11222333000181"},
		{" a1b2 c3 ", "123"},
		{"abc", ""},
		{"١٢٣", ""}, // non-ASCII digits are not decimal 0-9
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.input))
		})
	}
}

func TestFormatCPF(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"1", "1"},
		{"111", "111"},
		{"1114", "111.4"},
		{"111444", "111.444"},
		{"1114447", "111.444.7"},
		{"111444777", "111.444.777"},
		{"1114447773", "111.444.777-3"},
		{"11144477735", "111.444.777-35"},
		{"111.444.777-35", "111.444.777-35"},
		{"111-444", "111.444"},
		// more than 11 digits is returned untouched
		{"111444777351", "111444777351"},
		{"11.222.333/0001-81", "11.222.333/0001-81"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCPF(tt.input))
		})
	}
}

func TestFormatCNPJ(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"11", "11"},
		{"112", "11.2"},
		{"11222", "11.222"},
		{"112223", "11.222.3"},
		{"11222333", "11.222.333"},
		{"112223330", "11.222.333/0"},
		{"112223330001", "11.222.333/0001"},
		{"1122233300018", "11.222.333/0001-8"},
		{"11222333000181", "11.222.333/0001-81"},
		{"11.222.333/0001-81", "11.222.333/0001-81"},
		{"112223330001811", "11.222.333/00018-11"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCNPJ(tt.input))
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"111", "111"},
		{"1114", "111.4"},
		{"11144477735", "111.444.777-35"},
		{"111444777351", "11.144.477/7351"},
		{"11222333000181", "11.222.333/0001-81"},
		{"11.222.333/0001-81", "11.222.333/0001-81"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.input))
		})
	}
}

func TestFormat_ReappliedToOwnOutput(t *testing.T) {
	for _, s := range []string{"", "1", "1114", "11144477735", "112223330", "11222333000181", "1122233300018199"} {
		once := Format(s)
		assert.Equal(t, once, Format(once), "Format(%q)", s)
	}
}

func FuzzFormat(f *testing.F) {
	for _, seed := range []string{"", "111.444.777-35", "11.222.333/0001-81", "abc123", "1234567890123456"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, s string) {
		once := Format(s)
		twice := Format(once)
		if Clean(once) != Clean(twice) {
			t.Fatalf("digits changed on reformat: %q -> %q", once, twice)
		}
		if once != twice {
			t.Fatalf("Format not idempotent: %q -> %q", once, twice)
		}
		if Clean(once) != Clean(s) {
			t.Fatalf("Format changed digits of %q: %q", s, once)
		}
	})
}
