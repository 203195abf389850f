package derive

import (
	"testing"
	"time"

	"mssd-portal/internal/models"
)

func regWithCategories(cats ...string) models.Registration {
	students := make([]models.Student, len(cats))
	for i, c := range cats {
		students[i] = models.Student{Category: c}
	}
	return models.Registration{Students: students}
}

func TestGenerateRegistrationID(t *testing.T) {
	t.Run("empty set starts at 01", func(t *testing.T) {
		if got := GenerateRegistrationID("L12", models.RegistrationsMap{}); got != "MSSD-01-01" {
			t.Errorf("got %q, want MSSD-01-01", got)
		}
	})

	t.Run("counts registrations not students", func(t *testing.T) {
		existing := models.RegistrationsMap{
			"MSSD-01-01": regWithCategories("L12", "L12", "P12"),
		}
		if got := GenerateRegistrationID("L12", existing); got != "MSSD-01-02" {
			t.Errorf("got %q, want MSSD-01-02", got)
		}
	})

	t.Run("only exact category matches count", func(t *testing.T) {
		existing := models.RegistrationsMap{
			"MSSD-01-01": regWithCategories("P12"),
		}
		if got := GenerateRegistrationID("L12", existing); got != "MSSD-01-01" {
			t.Errorf("got %q, want MSSD-01-01 (P12 school does not count for L12)", got)
		}
	})

	// Documented conflation, not a bug: U15-only and U18-only schools
	// share the "02" family counter.
	t.Run("secondary brackets share family 02", func(t *testing.T) {
		if got := GenerateRegistrationID("L15", models.RegistrationsMap{}); got != "MSSD-02-01" {
			t.Errorf("L15 first = %q, want MSSD-02-01", got)
		}
		if got := GenerateRegistrationID("P18", models.RegistrationsMap{}); got != "MSSD-02-01" {
			t.Errorf("P18 first = %q, want MSSD-02-01", got)
		}
	})
}

func TestRegistrationFamily(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"L12", "01"},
		{"P12", "01"},
		{"L15", "02"},
		{"P15", "02"},
		{"L18", "02"},
		{"P18", "02"},
		{"", "02"},
	}
	for _, tt := range tests {
		if got := RegistrationFamily(tt.category); got != tt.want {
			t.Errorf("RegistrationFamily(%q) = %q, want %q", tt.category, got, tt.want)
		}
	}
}

func TestGeneratePlayerID(t *testing.T) {
	year := time.Now().Format("06")

	t.Run("composition", func(t *testing.T) {
		got := GeneratePlayerID(models.GenderMale, "SK ABC", 0, "L12", "MSSD-01-02")
		want := year + "12" + "01" + "02" + "01"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
		if len(got) != 10 {
			t.Errorf("len = %d, want 10", len(got))
		}
	})

	t.Run("gender change flips only the gender segment", func(t *testing.T) {
		male := GeneratePlayerID(models.GenderMale, "SK ABC", 0, "L12", "MSSD-01-02")
		female := GeneratePlayerID(models.GenderFemale, "SK ABC", 0, "L12", "MSSD-01-02")
		if male[:4] != female[:4] || male[6:] != female[6:] {
			t.Errorf("non-gender segments differ: %q vs %q", male, female)
		}
		if male[4:6] != "01" || female[4:6] != "02" {
			t.Errorf("gender segments = %q/%q, want 01/02", male[4:6], female[4:6])
		}
	})

	t.Run("age token probed 12 then 15 then 18", func(t *testing.T) {
		tests := []struct {
			category string
			want     string
		}{
			{"L12", "12"},
			{"L15", "15"},
			{"P18", "18"},
			{"X", "15"}, // unknown token falls back to 15
		}
		for _, tt := range tests {
			got := GeneratePlayerID(models.GenderMale, "SK ABC", 0, tt.category, "MSSD-02-01")
			if got[2:4] != tt.want {
				t.Errorf("category %q: age segment = %q, want %q", tt.category, got[2:4], tt.want)
			}
		}
	})

	t.Run("student index is 1-based and padded", func(t *testing.T) {
		got := GeneratePlayerID(models.GenderMale, "SK ABC", 4, "L12", "MSSD-01-01")
		if got[8:10] != "05" {
			t.Errorf("index segment = %q, want 05", got[8:10])
		}
	})

	t.Run("missing registration ID yields 00 school segment", func(t *testing.T) {
		got := GeneratePlayerID(models.GenderMale, "SK ABC", 0, "L12", "")
		if got[6:8] != "00" {
			t.Errorf("school segment = %q, want 00", got[6:8])
		}
	})
}

func TestApplyPlayerIDs(t *testing.T) {
	students := []models.Student{
		{Gender: models.GenderMale, Category: models.CategoryL12},
		{Gender: models.GenderFemale, Category: models.CategoryP12},
		{Gender: "", Category: models.CategoryL12}, // incomplete, skipped
	}
	out := ApplyPlayerIDs("SK ABC", "MSSD-01-03", students)

	if out[0].PlayerID == "" || out[1].PlayerID == "" {
		t.Fatalf("complete students missing player IDs: %+v", out)
	}
	if out[0].PlayerID[8:10] != "01" || out[1].PlayerID[8:10] != "02" {
		t.Errorf("index segments = %q/%q, want 01/02", out[0].PlayerID[8:10], out[1].PlayerID[8:10])
	}
	if out[2].PlayerID != "" {
		t.Errorf("incomplete student got ID %q", out[2].PlayerID)
	}
	if students[0].PlayerID != "" {
		t.Errorf("input mutated")
	}
}
