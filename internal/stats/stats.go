// Package stats folds the full registration set into the dashboard
// rollups: totals, per-category race breakdowns and a best-effort
// primary/secondary classification of each school.
package stats

import (
	"strings"

	"mssd-portal/internal/derive"
	"mssd-portal/internal/models"
)

// BadgeUnknown is shown when a school has no type string at all.
const BadgeUnknown = "??"

type CategoryStat struct {
	Total int            `json:"total"`
	Races map[string]int `json:"races"`
}

type Summary struct {
	TotalSchools     int `json:"totalSchools"`
	TotalTeachers    int `json:"totalTeachers"`
	TotalStudents    int `json:"totalStudents"`
	MaleStudents     int `json:"maleStudents"`
	FemaleStudents   int `json:"femaleStudents"`
	MaleTeachers     int `json:"maleTeachers"`
	FemaleTeachers   int `json:"femaleTeachers"`
	PrimarySchools   int `json:"primarySchools"`
	SecondarySchools int `json:"secondarySchools"`

	// Categories holds the six fixed buckets (L12..P18), always present.
	Categories map[string]CategoryStat `json:"categories"`

	// SchoolTypes maps each unique school name to its classification
	// badge. Advisory only; it may disagree with the stored school-type
	// field and never feeds back into inference or validation.
	SchoolTypes map[string]string `json:"schoolTypes"`
}

type schoolAcc struct {
	rawType    string
	categories map[string]bool
}

// Collect computes the summary in one pass over the registrations.
// Schools are unique by name, not by registration ID: two registrations
// with the same school name count as one school.
func Collect(regs models.RegistrationsMap) Summary {
	sum := Summary{
		Categories:  map[string]CategoryStat{},
		SchoolTypes: map[string]string{},
	}
	for _, c := range models.Categories {
		sum.Categories[c] = CategoryStat{Races: emptyRaces()}
	}

	schools := map[string]*schoolAcc{}

	for _, reg := range regs {
		acc := schools[reg.SchoolName]
		if acc == nil {
			acc = &schoolAcc{rawType: reg.SchoolType, categories: map[string]bool{}}
			schools[reg.SchoolName] = acc
		}

		sum.TotalTeachers += len(reg.Teachers)
		sum.TotalStudents += len(reg.Students)

		for _, t := range reg.Teachers {
			switch g, ok := derive.GenderFromIC(t.IC); {
			case ok && g == models.GenderMale:
				sum.MaleTeachers++
			case ok:
				sum.FemaleTeachers++
			}
		}

		for _, s := range reg.Students {
			if s.Gender == models.GenderMale {
				sum.MaleStudents++
			} else {
				sum.FemaleStudents++
			}
			cat, known := sum.Categories[s.Category]
			if !known {
				continue
			}
			cat.Total++
			cat.Races[foldRace(s.Race)]++
			sum.Categories[s.Category] = cat
			acc.categories[s.Category] = true
		}
	}

	sum.TotalSchools = len(schools)
	for name, acc := range schools {
		badge := classify(acc.rawType, acc.categories, name)
		sum.SchoolTypes[name] = badge
		switch badge {
		case models.SchoolTypePrimary:
			sum.PrimarySchools++
		case models.SchoolTypeSecondary:
			sum.SecondarySchools++
		}
	}

	return sum
}

func emptyRaces() map[string]int {
	m := make(map[string]int, len(models.Races))
	for _, r := range models.Races {
		m[r] = 0
	}
	return m
}

func foldRace(race string) string {
	switch race {
	case models.RaceMelayu, models.RaceCina, models.RaceIndia, models.RaceBumiputera:
		return race
	}
	return models.RaceOther
}

var secondaryNameHints = []string{
	"SMKA", "SMK", "SEKOLAH MENENGAH", "KOLEJ", "MAKTAB", "VOKASIONAL", "TEKNIK",
}

var primaryNameHints = []string{
	"SJK", "SEKOLAH KEBANGSAAN", "SEKOLAH JENIS", "SEKOLAH RENDAH",
}

// classify resolves a school to primary/secondary through a priority
// chain: the explicit type field, then the category mix of its students,
// then school-name keywords, then a truncated raw-type badge.
func classify(rawType string, categories map[string]bool, name string) string {
	typ := strings.ToUpper(strings.TrimSpace(rawType))
	switch {
	case strings.Contains(typ, "RENDAH"):
		return models.SchoolTypePrimary
	case strings.Contains(typ, "MENENGAH"):
		return models.SchoolTypeSecondary
	}

	hasPrimary := categories[models.CategoryL12] || categories[models.CategoryP12]
	hasSecondary := categories[models.CategoryL15] || categories[models.CategoryP15] ||
		categories[models.CategoryL18] || categories[models.CategoryP18]
	switch {
	case hasPrimary && !hasSecondary:
		return models.SchoolTypePrimary
	case hasSecondary && !hasPrimary:
		return models.SchoolTypeSecondary
	}

	upper := strings.ToUpper(name)
	for _, hint := range secondaryNameHints {
		if strings.Contains(upper, hint) {
			return models.SchoolTypeSecondary
		}
	}
	if strings.HasPrefix(upper, "SK ") {
		return models.SchoolTypePrimary
	}
	for _, hint := range primaryNameHints {
		if strings.Contains(upper, hint) {
			return models.SchoolTypePrimary
		}
	}

	if typ == "" {
		return BadgeUnknown
	}
	if len(typ) > 10 {
		return typ[:10]
	}
	return typ
}
