package format

import (
	"regexp"
	"testing"
)

func TestSchoolName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"SK abbreviation", "sekolah kebangsaan taman desa", "SK TAMAN DESA"},
		{"SMKA wins over SMK", "sekolah menengah kebangsaan agama bukit kuang", "SMKA BUKIT KUANG"},
		{"plain SMK", "Sekolah Menengah Kebangsaan Dato Onn", "SMK DATO ONN"},
		{"SJKC parenthetical", "sekolah jenis kebangsaan (cina) foon yew", "SJKC FOON YEW"},
		{"SJKT parenthetical", "SEKOLAH JENIS KEBANGSAAN (TAMIL) LADANG", "SJKT LADANG"},
		{"bare SJK", "sekolah jenis kebangsaan masai", "SJK MASAI"},
		{"already abbreviated", "SK TAMAN DESA", "SK TAMAN DESA"},
		{"uppercase only", "kolej tingkatan enam", "KOLEJ TINGKATAN ENAM"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SchoolName(tt.in)
			if got != tt.want {
				t.Errorf("SchoolName(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := SchoolName(got); again != got {
				t.Errorf("not idempotent: SchoolName(%q) = %q", got, again)
			}
		})
	}
}

func TestPhoneNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"11 digits", "01112345678", "011-123 45678"},
		{"10 digits", "0123456789", "012-345 6789"},
		{"already formatted", "012-345 6789", "012-345 6789"},
		{"too short", "12345", "12345"},
		{"strips noise", "+6 012 345-6789", "601-234 56789"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PhoneNumber(tt.in); got != tt.want {
				t.Errorf("PhoneNumber(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

var icShape = regexp.MustCompile(`^\d{6}-\d{2}-\d{4}$`)

func TestIC(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"12 digits", "120601081234", "120601-08-1234"},
		{"formatted input", "120601-08-1234", "120601-08-1234"},
		{"partial stays digits", "1206", "1206"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IC(tt.in); got != tt.want {
				t.Errorf("IC(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestICShapeProperty(t *testing.T) {
	// For any 12-digit input the canonical form has the 6-2-4 shape and
	// stripping it reproduces the digits.
	inputs := []string{"120601081234", "990229140007", "000101010001"}
	for _, in := range inputs {
		got := IC(in)
		if len(got) != 14 || !icShape.MatchString(got) {
			t.Errorf("IC(%q) = %q, want \\d{6}-\\d{2}-\\d{4}", in, got)
		}
		if Digits(got) != in {
			t.Errorf("Digits(IC(%q)) = %q, want %q", in, Digits(got), in)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"guru@moe.edu.my", "a.b@c.d", "x@y.z"}
	invalid := []string{"", "no-at.com", "two@@at.com", "spaces in@mail.com", "noperiod@domain"}
	for _, e := range valid {
		if !IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q) = false, want true", e)
		}
	}
	for _, e := range invalid {
		if IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q) = true, want false", e)
		}
	}
}

func TestIsValidMalaysianPhone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0123456789", true},
		{"01234567890", true},
		{"60123456789", true},
		{"601234567890", true},
		{"012-345 6789", true},
		{"12345", false},
		{"0223456789", false},
		{"012345678", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidMalaysianPhone(tt.in); got != tt.want {
			t.Errorf("IsValidMalaysianPhone(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
