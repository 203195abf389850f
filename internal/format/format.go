package format

import (
	"regexp"
	"strings"
)

// Abbreviation patterns are applied in order. The agama and parenthetical
// variants must come before their shorter prefixes or they collapse to the
// wrong abbreviation (SMKA would become "SMK AGAMA").
var schoolAbbrevs = []struct {
	phrase string
	abbrev string
}{
	{"SEKOLAH MENENGAH KEBANGSAAN AGAMA", "SMKA"},
	{"SEKOLAH MENENGAH KEBANGSAAN", "SMK"},
	{"SEKOLAH JENIS KEBANGSAAN (CINA)", "SJKC"},
	{"SEKOLAH JENIS KEBANGSAAN (TAMIL)", "SJKT"},
	{"SEKOLAH JENIS KEBANGSAAN", "SJK"},
	{"SEKOLAH KEBANGSAAN", "SK"},
}

// SchoolName uppercases the input and abbreviates the standard school
// prefixes (SK, SMK, SMKA, SJKC, ...). Idempotent.
func SchoolName(name string) string {
	if name == "" {
		return ""
	}
	out := strings.ToUpper(name)
	for _, a := range schoolAbbrevs {
		out = strings.ReplaceAll(out, a.phrase, a.abbrev)
	}
	return out
}

var nonDigit = regexp.MustCompile(`\D`)

// Digits strips everything but 0-9.
func Digits(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

// PhoneNumber formats a Malaysian phone number as XXX-XXX XXXXX (11+
// digits) or XXX-XXX XXXX (10 digits). Shorter input is returned as bare
// digits.
func PhoneNumber(phone string) string {
	cleaned := Digits(phone)
	switch {
	case len(cleaned) >= 11:
		return cleaned[0:3] + "-" + cleaned[3:6] + " " + cleaned[6:11]
	case len(cleaned) == 10:
		return cleaned[0:3] + "-" + cleaned[3:6] + " " + cleaned[6:10]
	}
	return cleaned
}

// IC canonicalizes a national ID to NNNNNN-NN-NNNN once 12 digits are
// present; until then it returns the bare digits so partial input is
// preserved as typed.
func IC(ic string) string {
	cleaned := Digits(ic)
	if len(cleaned) >= 12 {
		return cleaned[0:6] + "-" + cleaned[6:8] + "-" + cleaned[8:12]
	}
	return cleaned
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail rejects obviously malformed addresses. Not an RFC 5322
// check and not meant to be one.
func IsValidEmail(email string) bool {
	if email == "" {
		return false
	}
	return emailRe.MatchString(email)
}

// IsValidMalaysianPhone accepts the domestic mobile form (01x..., 10-11
// digits) or the international form (601..., 11-12 digits).
func IsValidMalaysianPhone(phone string) bool {
	cleaned := Digits(phone)
	if strings.HasPrefix(cleaned, "01") && (len(cleaned) == 10 || len(cleaned) == 11) {
		return true
	}
	return strings.HasPrefix(cleaned, "601") && (len(cleaned) == 11 || len(cleaned) == 12)
}
