package derive

import (
	"fmt"
	"strings"
	"time"

	"mssd-portal/internal/models"
)

// RegistrationFamily is the coarse counting family used for registration
// ID sequencing: any category carrying "12" is family "01", everything
// else is "02". U15 and U18 deliberately share one counter; downstream
// sequencing depends on that.
func RegistrationFamily(category string) string {
	if strings.Contains(category, "12") {
		return "01"
	}
	return "02"
}

// GenerateRegistrationID produces the next sequential ID for the given
// category, MSSD-{family}-{seq}. The sequence counts existing
// registrations (not students) that hold at least one student in exactly
// this category, then adds one. The snapshot is read-only input supplied
// fresh by the caller; under concurrent submissions against stale
// snapshots the ID is best-effort, not unique — dedup is the remote
// store's problem.
func GenerateRegistrationID(category string, existing models.RegistrationsMap) string {
	count := 0
	for _, reg := range existing {
		for _, s := range reg.Students {
			if s.Category == category {
				count++
				break
			}
		}
	}
	return fmt.Sprintf("MSSD-%s-%s", RegistrationFamily(category), pad2(fmt.Sprint(count+1)))
}

// GeneratePlayerID builds the 10-digit player ID: 2-digit year, 2-digit
// age code, 2-digit gender code (01 male / 02 female), 2-digit school
// sequence from the registration ID suffix, 2-digit 1-based student
// index. The age token is probed 12, then 15, then 18, with 15 as the
// fallback when none match.
func GeneratePlayerID(gender, schoolName string, studentIndex int, category, regID string) string {
	year := time.Now().Format("06")

	ageCode := "15"
	switch {
	case strings.Contains(category, "12"):
		ageCode = "12"
	case strings.Contains(category, "15"):
		ageCode = "15"
	case strings.Contains(category, "18"):
		ageCode = "18"
	}

	genderCode := "02"
	if gender == models.GenderMale {
		genderCode = "01"
	}

	schoolNo := "00"
	if regID != "" {
		parts := strings.Split(regID, "-")
		schoolNo = pad2(parts[len(parts)-1])
	}

	// schoolName is part of the recomputation contract but is not
	// encoded in the ID itself.
	return year + ageCode + genderCode + schoolNo + pad2(fmt.Sprint(studentIndex+1))
}

// ApplyPlayerIDs is the ID stage of the pipeline: every student with a
// gender and category gets a recomputed player ID against the given
// school name and registration ID. Incomplete students keep whatever
// they had (usually "").
func ApplyPlayerIDs(schoolName, regID string, students []models.Student) []models.Student {
	out := make([]models.Student, len(students))
	copy(out, students)
	for i := range out {
		if out[i].Category == "" || out[i].Gender == "" || schoolName == "" || regID == "" {
			continue
		}
		out[i].PlayerID = GeneratePlayerID(out[i].Gender, schoolName, i, out[i].Category, regID)
	}
	return out
}

func pad2(s string) string {
	for len(s) < 2 {
		s = "0" + s
	}
	return s
}
