// Package derive holds the registration derivation rules: gender from
// IC parity, category inference from school type, and the registration
// and player ID generators. Everything here is a pure function of its
// inputs; callers run the stages in order (categories, then IDs) after
// any relevant field change.
package derive

import (
	"mssd-portal/internal/format"
	"mssd-portal/internal/models"
)

// GenderFromIC infers gender from the last digit of a complete 12-digit
// national ID: even is female, odd is male. Incomplete ICs report ok=false
// and the caller leaves the gender field alone.
func GenderFromIC(ic string) (gender string, ok bool) {
	digits := format.Digits(ic)
	if len(digits) != 12 {
		return "", false
	}
	last := digits[11] - '0'
	if last%2 == 0 {
		return models.GenderFemale, true
	}
	return models.GenderMale, true
}

// CategoryForPrimary maps gender to the only legal primary-school
// categories. Empty gender yields an empty category.
func CategoryForPrimary(gender string) string {
	switch gender {
	case models.GenderMale:
		return models.CategoryL12
	case models.GenderFemale:
		return models.CategoryP12
	}
	return ""
}

// CategoryOptions lists the categories a student may hold for the given
// school type and gender. Primary has exactly one option per gender;
// secondary offers both age brackets and requires an explicit choice.
func CategoryOptions(schoolType, gender string) []string {
	switch schoolType {
	case models.SchoolTypePrimary:
		if c := CategoryForPrimary(gender); c != "" {
			return []string{c}
		}
	case models.SchoolTypeSecondary:
		switch gender {
		case models.GenderMale:
			return []string{models.CategoryL15, models.CategoryL18}
		case models.GenderFemale:
			return []string{models.CategoryP15, models.CategoryP18}
		}
	}
	return nil
}

func isPrimaryCategory(c string) bool {
	return c == models.CategoryL12 || c == models.CategoryP12
}

func isSecondaryCategory(c string) bool {
	switch c {
	case models.CategoryL15, models.CategoryP15, models.CategoryL18, models.CategoryP18:
		return true
	}
	return false
}

// ApplyCategoryRules runs the category inference stage over a student
// list and returns the updated copy. Rules, in order per student:
//
//   - a complete 12-digit IC overwrites the gender via parity;
//   - primary school type forces L12/P12 from gender, clearing any
//     stale secondary category;
//   - secondary school type clears primary categories (the student must
//     then pick L15/L18 or P15/P18 explicitly) and leaves a valid
//     secondary choice untouched.
//
// An unknown or empty school type leaves categories as they are.
func ApplyCategoryRules(schoolType string, students []models.Student) []models.Student {
	out := make([]models.Student, len(students))
	copy(out, students)
	for i := range out {
		if g, ok := GenderFromIC(out[i].IC); ok {
			out[i].Gender = g
		}
		switch schoolType {
		case models.SchoolTypePrimary:
			if c := CategoryForPrimary(out[i].Gender); c != "" {
				out[i].Category = c
			} else if isSecondaryCategory(out[i].Category) {
				out[i].Category = ""
			}
		case models.SchoolTypeSecondary:
			if isPrimaryCategory(out[i].Category) {
				out[i].Category = ""
			}
		}
	}
	return out
}
