// Package valueobject contains immutable domain values with their own validity rules.
package valueobject

import (
	"strings"

	domainerrors "agroleads/internal/domain/errors"
)

// Cpf is a validated Brazilian individual taxpayer registry number (CPF).
// The zero value is invalid; construct through NewCpf.
type Cpf struct {
	value string
}

// NewCpf creates a Cpf from a raw string, accepting both the formatted
// ("000.000.000-00") and the bare 11-digit representation. It fails when the
// cleaned value is not 11 digits, is a run of a single repeated digit, or
// carries wrong check digits.
func NewCpf(raw string) (Cpf, error) {
	cleaned := cleanCpf(raw)

	if !isValidCpf(cleaned) {
		return Cpf{}, domainerrors.ErrInvalidCpf.WithMessagef("Invalid CPF format: %s", raw)
	}

	return Cpf{value: cleaned}, nil
}

// cleanCpf strips every non-digit character.
func cleanCpf(raw string) string {
	var digits strings.Builder
	digits.Grow(len(raw))

	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	return digits.String()
}

func isValidCpf(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}

	allSame := true
	for i := 1; i < len(cpf); i++ {
		if cpf[i] != cpf[0] {
			allSame = false

			break
		}
	}
	if allSame {
		return false
	}

	return validateCheckDigits(cpf)
}

// validateCheckDigits applies the modulo-11 algorithm to both trailing digits.
func validateCheckDigits(cpf string) bool {
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(cpf[i]-'0') * (10 - i)
	}
	if checkDigit(sum) != int(cpf[9]-'0') {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(cpf[i]-'0') * (11 - i)
	}

	return checkDigit(sum) == int(cpf[10]-'0')
}

func checkDigit(sum int) int {
	digit := 11 - (sum % 11)
	if digit == 10 || digit == 11 {
		return 0
	}

	return digit
}

// Value returns the canonical unformatted 11-digit string.
func (c Cpf) Value() string {
	return c.value
}

// Formatted returns the CPF in "000.000.000-00" display form.
func (c Cpf) Formatted() string {
	return c.value[:3] + "." + c.value[3:6] + "." + c.value[6:9] + "-" + c.value[9:]
}

// Equals reports whether two CPFs hold the same canonical value.
func (c Cpf) Equals(other Cpf) bool {
	return c.value == other.value
}

// String implements fmt.Stringer using the formatted representation.
func (c Cpf) String() string {
	return c.Formatted()
}
