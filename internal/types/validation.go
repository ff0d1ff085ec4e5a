package types

import (
	"fmt"
	"regexp"
)

var (
	reBirthDateFull  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reBirthDateYYYMM = regexp.MustCompile(`^\d{4}-\d{2}$`)
	reBirthDateYYYY  = regexp.MustCompile(`^\d{4}$`)
)

// ValidateIDPresent ensures a required identifier is non-empty.
func ValidateIDPresent(id, name string) error {
	if id == "" {
		return fmt.Errorf("%s must not be empty", name)
	}
	return nil
}

// ValidateCheckAge checks that the caller supplied at least one age signal and
// that each supplied birth date matches its declared precision.
func ValidateCheckAge(d CheckAgeData) error {
	if d.BirthDateYYYYMMDD == "" && d.BirthDateYYYYMM == "" && d.BirthDateYYYY == "" && d.Age == 0 {
		return fmt.Errorf("checkAge: birth date or age is required")
	}
	if d.BirthDateYYYYMMDD != "" && !reBirthDateFull.MatchString(d.BirthDateYYYYMMDD) {
		return fmt.Errorf("checkAge: birthDateYYYYMMDD %q is not YYYY-MM-DD", d.BirthDateYYYYMMDD)
	}
	if d.BirthDateYYYYMM != "" && !reBirthDateYYYMM.MatchString(d.BirthDateYYYYMM) {
		return fmt.Errorf("checkAge: birthDateYYYYMM %q is not YYYY-MM", d.BirthDateYYYYMM)
	}
	if d.BirthDateYYYY != "" && !reBirthDateYYYY.MatchString(d.BirthDateYYYY) {
		return fmt.Errorf("checkAge: birthDateYYYY %q is not YYYY", d.BirthDateYYYY)
	}
	if d.Age < 0 {
		return fmt.Errorf("checkAge: age must not be negative")
	}
	return nil
}
