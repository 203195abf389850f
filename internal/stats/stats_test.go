package stats

import (
	"testing"

	"mssd-portal/internal/models"
)

func student(gender, race, category string) models.Student {
	return models.Student{Gender: gender, Race: race, Category: category}
}

func TestCollectTotals(t *testing.T) {
	regs := models.RegistrationsMap{
		"MSSD-01-01": {
			SchoolName: "SK TAMAN DESA",
			SchoolType: models.SchoolTypePrimary,
			Teachers: []models.Teacher{
				{IC: "800101-01-5523"}, // odd, male
				{IC: "790315-01-5544"}, // even, female
			},
			Students: []models.Student{
				student(models.GenderMale, models.RaceMelayu, models.CategoryL12),
				student(models.GenderMale, models.RaceCina, models.CategoryL12),
				student(models.GenderMale, models.RaceMelayu, models.CategoryL12),
				student(models.GenderFemale, models.RaceIndia, models.CategoryP12),
				student(models.GenderFemale, "Siam", models.CategoryP12), // folds into Lain-lain
			},
		},
		"MSSD-02-01": {
			SchoolName: "SMK DATO ONN",
			SchoolType: models.SchoolTypeSecondary,
			Teachers:   []models.Teacher{{IC: "750505-01-5011"}},
			Students: []models.Student{
				student(models.GenderMale, models.RaceMelayu, models.CategoryL15),
				student(models.GenderFemale, models.RaceBumiputera, models.CategoryP18),
			},
		},
	}

	sum := Collect(regs)

	if sum.TotalSchools != 2 || sum.TotalTeachers != 3 || sum.TotalStudents != 7 {
		t.Errorf("totals = %d/%d/%d, want 2/3/7", sum.TotalSchools, sum.TotalTeachers, sum.TotalStudents)
	}
	if sum.MaleStudents+sum.FemaleStudents != sum.TotalStudents {
		t.Errorf("male %d + female %d != total %d", sum.MaleStudents, sum.FemaleStudents, sum.TotalStudents)
	}
	if sum.MaleStudents != 4 || sum.FemaleStudents != 3 {
		t.Errorf("students = %d male / %d female, want 4/3", sum.MaleStudents, sum.FemaleStudents)
	}
	if sum.MaleTeachers != 2 || sum.FemaleTeachers != 1 {
		t.Errorf("teachers = %d male / %d female, want 2/1", sum.MaleTeachers, sum.FemaleTeachers)
	}
	if sum.PrimarySchools != 1 || sum.SecondarySchools != 1 {
		t.Errorf("schools = %d primary / %d secondary, want 1/1", sum.PrimarySchools, sum.SecondarySchools)
	}

	l12 := sum.Categories[models.CategoryL12]
	if l12.Total != 3 {
		t.Errorf("L12 total = %d, want 3", l12.Total)
	}
	if l12.Races[models.RaceMelayu] != 2 || l12.Races[models.RaceCina] != 1 {
		t.Errorf("L12 races = %v", l12.Races)
	}
	p12 := sum.Categories[models.CategoryP12]
	if p12.Races[models.RaceOther] != 1 {
		t.Errorf("unknown race not folded: %v", p12.Races)
	}

	// Race buckets within each category sum to the category total.
	for _, c := range models.Categories {
		cat := sum.Categories[c]
		raceSum := 0
		for _, n := range cat.Races {
			raceSum += n
		}
		if raceSum != cat.Total {
			t.Errorf("%s: race sum %d != total %d", c, raceSum, cat.Total)
		}
	}
}

func TestCollectDuplicateSchoolNames(t *testing.T) {
	// Two registrations with the same school name are one school for
	// counting purposes. Keyed by name, not by registration ID.
	regs := models.RegistrationsMap{
		"MSSD-01-01": {
			SchoolName: "SK TAMAN DESA",
			SchoolType: models.SchoolTypePrimary,
			Students:   []models.Student{student(models.GenderMale, models.RaceMelayu, models.CategoryL12)},
		},
		"MSSD-01-02": {
			SchoolName: "SK TAMAN DESA",
			SchoolType: models.SchoolTypePrimary,
			Students:   []models.Student{student(models.GenderFemale, models.RaceCina, models.CategoryP12)},
		},
	}
	sum := Collect(regs)
	if sum.TotalSchools != 1 {
		t.Errorf("TotalSchools = %d, want 1", sum.TotalSchools)
	}
	if sum.PrimarySchools != 1 {
		t.Errorf("PrimarySchools = %d, want 1", sum.PrimarySchools)
	}
	if sum.TotalStudents != 2 {
		t.Errorf("TotalStudents = %d, want 2", sum.TotalStudents)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		rawType    string
		categories []string
		school     string
		want       string
	}{
		{"explicit rendah", "SEKOLAH RENDAH", nil, "ANYTHING", models.SchoolTypePrimary},
		{"explicit menengah lowercase", "sekolah menengah", nil, "ANYTHING", models.SchoolTypeSecondary},
		{"only-12 categories", "", []string{"L12", "P12"}, "ANYTHING", models.SchoolTypePrimary},
		{"only-secondary categories", "", []string{"L15", "P18"}, "ANYTHING", models.SchoolTypeSecondary},
		{"mixed categories fall through to name", "", []string{"L12", "L15"}, "SMK PERMAS", models.SchoolTypeSecondary},
		{"SK prefix", "", nil, "SK TAMAN DESA", models.SchoolTypePrimary},
		{"SJK name", "", nil, "SJKC FOON YEW", models.SchoolTypePrimary},
		{"SMK name", "", nil, "SMK DATO ONN", models.SchoolTypeSecondary},
		{"kolej keyword", "", nil, "KOLEJ TINGKATAN ENAM", models.SchoolTypeSecondary},
		{"maktab keyword", "", nil, "MAKTAB SULTAN ABU BAKAR", models.SchoolTypeSecondary},
		{"vokasional keyword", "", nil, "SEKOLAH VOKASIONAL PG", models.SchoolTypeSecondary},
		{"no signal no type", "", nil, "INSTITUT X", BadgeUnknown},
		{"no signal truncates raw type", "PUSAT LATIHAN SUKAN", nil, "INSTITUT X", "PUSAT LATI"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cats := map[string]bool{}
			for _, c := range tt.categories {
				cats[c] = true
			}
			if got := classify(tt.rawType, cats, tt.school); got != tt.want {
				t.Errorf("classify(%q, %v, %q) = %q, want %q", tt.rawType, tt.categories, tt.school, got, tt.want)
			}
		})
	}
}
