package types

import "testing"

func TestValidateCheckAge(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		in   CheckAgeData
		ok   bool
	}{
		{"full date", CheckAgeData{BirthDateYYYYMMDD: "2012-05-17"}, true},
		{"year month", CheckAgeData{BirthDateYYYYMM: "2012-05"}, true},
		{"year only", CheckAgeData{BirthDateYYYY: "2012"}, true},
		{"age only", CheckAgeData{Age: 13}, true},
		{"nothing supplied", CheckAgeData{UserIdentifier: "u1"}, false},
		{"malformed full date", CheckAgeData{BirthDateYYYYMMDD: "20120517"}, false},
		{"malformed year month", CheckAgeData{BirthDateYYYYMM: "2012/05"}, false},
		{"malformed year", CheckAgeData{BirthDateYYYY: "12"}, false},
		{"negative age", CheckAgeData{Age: -3}, false},
	}
	for _, c := range cases {
		err := ValidateCheckAge(c.in)
		if c.ok && err != nil {
			t.Fatalf("%s: expected ok, got %v", c.name, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
	}
}

func TestValidateIDPresent(t *testing.T) {
	t.Parallel()
	if err := ValidateIDPresent("x", "agId"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateIDPresent("", "agId"); err == nil {
		t.Fatal("expected error for empty id")
	}
}
