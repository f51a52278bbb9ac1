package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCpf_ValidFormatted(t *testing.T) {
	cpf, err := NewCpf("529.982.247-25")
	require.NoError(t, err)
	assert.Equal(t, "52998224725", cpf.Value())
	assert.Equal(t, "529.982.247-25", cpf.Formatted())
}

func TestNewCpf_ValidBareDigits(t *testing.T) {
	cpf, err := NewCpf("52998224725")
	require.NoError(t, err)
	assert.Equal(t, "52998224725", cpf.Value())
}

func TestNewCpf_NormalizationEquality(t *testing.T) {
	formatted, err := NewCpf("111.444.777-35")
	require.NoError(t, err)

	bare, err := NewCpf("11144477735")
	require.NoError(t, err)

	assert.True(t, formatted.Equals(bare))
}

func TestNewCpf_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "too short", raw: "123"},
		{name: "too long", raw: "529982247251"},
		{name: "all same digits", raw: "11111111111"},
		{name: "all same digits formatted", raw: "999.999.999-99"},
		{name: "bad first check digit", raw: "52998224715"},
		{name: "bad second check digit", raw: "52998224724"},
		{name: "letters only", raw: "abcdefghijk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCpf(tt.raw)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "Invalid CPF format")
		})
	}
}

func TestCpf_String(t *testing.T) {
	cpf, err := NewCpf("52998224725")
	require.NoError(t, err)
	assert.Equal(t, "529.982.247-25", cpf.String())
}
