package phone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mintospay/internal/phone"
)

func TestNormalize_AcceptedShapes(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"already normalized", "+256700000000", "+256700000000"},
		{"country code without plus", "256700000000", "+256700000000"},
		{"local leading zero", "0700000000", "+256700000000"},
		{"bare nine digits", "700000000", "+256700000000"},
		{"formatted with spaces", "+256 700 000 000", "+256700000000"},
		{"formatted with dashes", "0700-000-000", "+256700000000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := phone.Normalize(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	first, err := phone.Normalize("0700123456")
	require.NoError(t, err)

	second, err := phone.Normalize(first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNormalize_Rejections(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too short local", "07000"},
		{"too long local", "070000000000"},
		{"too many digits after code", "2567000000001"},
		{"too few digits after code", "25670000000"},
		{"unrecognized prefix", "12345678"},
		{"letters only", "not-a-number"},
		{"kenyan number", "+254700000000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := phone.Normalize(tc.input)
			assert.Error(t, err)
		})
	}
}

func TestNormalize_LengthErrorReportsDigitCount(t *testing.T) {
	_, err := phone.Normalize("070000000000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got 11")
}
