package notify

import (
	"fmt"
	"strings"

	"mssd-portal/internal/models"
)

// SummaryMessage renders the organizer notification for a submitted or
// updated registration: school, ID, lead teacher, participant count and
// a per-category breakdown.
func SummaryMessage(regID string, reg models.Registration, isUpdate bool) string {
	title := "PENDAFTARAN BARU"
	actionText := "mendaftar"
	if isUpdate {
		title = "KEMASKINI PENDAFTARAN"
		actionText = "mengemaskini pendaftaran"
	}

	schoolName := strings.TrimSpace(reg.SchoolName)
	if schoolName == "" {
		schoolName = "Tidak dinyatakan"
	}
	teacherName := "Tidak dinyatakan"
	teacherPhone := "Tidak dinyatakan"
	if len(reg.Teachers) > 0 {
		if n := strings.TrimSpace(reg.Teachers[0].Name); n != "" {
			teacherName = n
		}
		if p := strings.TrimSpace(reg.Teachers[0].Phone); p != "" {
			teacherPhone = p
		}
	}

	lines := []string{
		title,
		fmt.Sprintf("Salam Sejahtera, sebuah sekolah baru %s.", actionText),
		"",
		"Sekolah: " + schoolName,
		"ID: " + regID,
		"Guru: " + teacherName,
		"Tel: " + teacherPhone,
		fmt.Sprintf("Peserta: %d orang", len(reg.Students)),
		"Pecahan: " + CategoryBreakdown(reg.Students),
	}
	return strings.Join(lines, "\n")
}

// CategoryBreakdown counts students per category bucket, e.g.
// "L12: 2, P15: 1". Students missing a gender or category are skipped.
// The bucket key is rebuilt from gender prefix plus age token (probed
// 15, 18, then 12, defaulting to 12) rather than taken verbatim from
// the category field.
func CategoryBreakdown(students []models.Student) string {
	counts := map[string]int{}
	for _, s := range students {
		if s.Gender == "" || s.Category == "" {
			continue
		}
		genderCode := "P"
		if s.Gender == models.GenderMale {
			genderCode = "L"
		}
		ageCode := "12"
		switch {
		case strings.Contains(s.Category, "15"):
			ageCode = "15"
		case strings.Contains(s.Category, "18"):
			ageCode = "18"
		}
		key := genderCode + ageCode
		counts[key]++
	}

	var parts []string
	for _, c := range models.Categories {
		if counts[c] > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", c, counts[c]))
		}
	}
	return strings.Join(parts, ", ")
}
