// Package validate gates submission. It never mutates the registration;
// callers re-run it on demand and render the structured result.
package validate

import (
	"regexp"

	"mssd-portal/internal/format"
	"mssd-portal/internal/models"
)

// Error messages surface to users as-is.
const (
	ErrSchoolCode   = "Format Kod Sekolah Salah (Contoh: JEA1057)"
	ErrEmail        = "Email tidak sah"
	ErrPhone        = "No. Telefon tidak sah"
	ErrIncompleteIC = "IC tidak lengkap"
)

var schoolCodeRe = regexp.MustCompile(`^[A-Z]{3}\d{4}$`)

// Result is the structured error set for one submission attempt.
// Teachers and Students are keyed by list index.
type Result struct {
	OK         bool             `json:"ok"`
	SchoolCode string           `json:"schoolCode,omitempty"`
	Teachers   map[int][]string `json:"teachers,omitempty"`
	Students   map[int][]string `json:"students,omitempty"`
}

// Submission checks school code shape, teacher email/phone/IC and
// student IC completeness.
func Submission(reg models.Registration) Result {
	res := Result{
		OK:       true,
		Teachers: map[int][]string{},
		Students: map[int][]string{},
	}

	if !schoolCodeRe.MatchString(reg.SchoolCode) {
		res.SchoolCode = ErrSchoolCode
		res.OK = false
	}

	for i, t := range reg.Teachers {
		var errs []string
		if !format.IsValidEmail(t.Email) {
			errs = append(errs, ErrEmail)
		}
		if !format.IsValidMalaysianPhone(t.Phone) {
			errs = append(errs, ErrPhone)
		}
		if len(format.Digits(t.IC)) != 12 {
			errs = append(errs, ErrIncompleteIC)
		}
		if len(errs) > 0 {
			res.Teachers[i] = errs
			res.OK = false
		}
	}

	for i, s := range reg.Students {
		if len(format.Digits(s.IC)) != 12 {
			res.Students[i] = []string{ErrIncompleteIC}
			res.OK = false
		}
	}

	return res
}

// MissingCategory reports whether any student still lacks a category.
// Kept separate from Submission: it blocks with a single message rather
// than an inline field error.
func MissingCategory(students []models.Student) bool {
	for _, s := range students {
		if s.Category == "" {
			return true
		}
	}
	return false
}
