package models

// Malay labels are the wire values: the spreadsheet rows and the JSON
// API carry them verbatim, so they live here as constants rather than
// being translated at the edges.
const (
	GenderMale   = "Lelaki"
	GenderFemale = "Perempuan"

	PositionLead         = "Ketua"
	PositionAccompanying = "Pengiring"

	SchoolTypePrimary   = "SEKOLAH RENDAH"
	SchoolTypeSecondary = "SEKOLAH MENENGAH"

	StatusActive = "AKTIF"
)

// Competition categories: gender prefix (L/P) + age bracket (12/15/18).
const (
	CategoryL12 = "L12"
	CategoryP12 = "P12"
	CategoryL15 = "L15"
	CategoryP15 = "P15"
	CategoryL18 = "L18"
	CategoryP18 = "P18"
)

// Categories is the fixed bucket order used by stats and notifications.
var Categories = []string{
	CategoryL12, CategoryP12,
	CategoryL15, CategoryP15,
	CategoryL18, CategoryP18,
}

const (
	RaceMelayu     = "Melayu"
	RaceCina       = "Cina"
	RaceIndia      = "India"
	RaceBumiputera = "Bumiputera"
	RaceOther      = "Lain-lain"
)

// Races is the fixed bucket order; anything unlisted folds into RaceOther.
var Races = []string{RaceMelayu, RaceCina, RaceIndia, RaceBumiputera, RaceOther}

type Teacher struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	IC       string `json:"ic"`
	Position string `json:"position"` // Ketua / Pengiring
}

type Student struct {
	Name     string `json:"name"`
	IC       string `json:"ic"`
	Gender   string `json:"gender"` // Lelaki / Perempuan / ""
	Race     string `json:"race"`
	Category string `json:"category"` // derived, may be "" until complete
	PlayerID string `json:"playerId"` // derived, see derive.GeneratePlayerID
}

type Registration struct {
	SchoolName string    `json:"schoolName"`
	SchoolCode string    `json:"schoolCode"`
	SchoolType string    `json:"schoolType"`
	Teachers   []Teacher `json:"teachers"`
	Students   []Student `json:"students"`
	CreatedAt  string    `json:"createdAt"`
	UpdatedAt  string    `json:"updatedAt"`
	Status     string    `json:"status"`
}

// RegistrationsMap is keyed by registration ID (MSSD-XX-NN).
type RegistrationsMap map[string]Registration

type ScheduleItem struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
}

type ScheduleDay struct {
	Date  string         `json:"date"`
	Items []ScheduleItem `json:"items"`
}

type Schedules struct {
	Primary   []ScheduleDay `json:"primary"`
	Secondary []ScheduleDay `json:"secondary"`
}

type Links struct {
	Rules   string `json:"rules"`
	Results string `json:"results"`
	Photos  string `json:"photos"`
}

type Documents struct {
	Invitation string `json:"invitation"`
	Meeting    string `json:"meeting"`
	Arbiter    string `json:"arbiter"`
}

type EventConfig struct {
	EventName            string    `json:"eventName"`
	EventVenue           string    `json:"eventVenue"`
	AdminPhone           string    `json:"adminPhone"`
	TournamentDate       string    `json:"tournamentDate,omitempty"`
	RegistrationDeadline string    `json:"registrationDeadline,omitempty"`
	Schedules            Schedules `json:"schedules"`
	Links                Links     `json:"links"`
	Documents            Documents `json:"documents"`
}

// DefaultEventConfig is used when the remote Config sheet is empty.
func DefaultEventConfig() EventConfig {
	day := []ScheduleDay{
		{Date: "HARI PERTAMA", Items: []ScheduleItem{{Time: "8.00 pagi", Activity: "Pendaftaran"}}},
	}
	return EventConfig{
		EventName:  "KEJOHANAN CATUR MSSD PASIR GUDANG 2026",
		EventVenue: "SK TAMAN PASIR PUTIH",
		AdminPhone: "601110000000",
		Schedules:  Schedules{Primary: day, Secondary: day},
		Links:      Links{Rules: "#", Results: "https://chess-results.com", Photos: "#"},
		Documents:  Documents{Invitation: "#", Meeting: "#", Arbiter: "#"},
	}
}
