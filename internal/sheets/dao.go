package sheets

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"mssd-portal/internal/format"
	"mssd-portal/internal/models"
)

const (
	SheetRegistrations = "Registrations"
	SheetConfig        = "Config"
)

// Registrations sheet columns. Teachers and students are JSON cells:
// one row per registration, header row at index 0.
//
//	A reg_id | B school_name | C school_code | D school_type |
//	E teachers | F students | G created_at | H updated_at | I status

func registrationRow(regID string, reg models.Registration) ([]interface{}, error) {
	teachers, err := json.Marshal(reg.Teachers)
	if err != nil {
		return nil, err
	}
	students, err := json.Marshal(reg.Students)
	if err != nil {
		return nil, err
	}
	return []interface{}{
		regID,
		reg.SchoolName,
		reg.SchoolCode,
		reg.SchoolType,
		string(teachers),
		string(students),
		reg.CreatedAt,
		reg.UpdatedAt,
		reg.Status,
	}, nil
}

func parseRegistration(row []interface{}) (string, models.Registration, error) {
	regID := strings.TrimSpace(get(row, 0))
	if regID == "" {
		return "", models.Registration{}, fmt.Errorf("empty reg_id")
	}
	reg := models.Registration{
		SchoolName: get(row, 1),
		SchoolCode: get(row, 2),
		SchoolType: get(row, 3),
		CreatedAt:  get(row, 6),
		UpdatedAt:  get(row, 7),
		Status:     get(row, 8),
	}
	if raw := get(row, 4); raw != "" {
		if err := json.Unmarshal([]byte(raw), &reg.Teachers); err != nil {
			return "", models.Registration{}, fmt.Errorf("teachers cell: %w", err)
		}
	}
	if raw := get(row, 5); raw != "" {
		if err := json.Unmarshal([]byte(raw), &reg.Students); err != nil {
			return "", models.Registration{}, fmt.Errorf("students cell: %w", err)
		}
	}
	return regID, reg, nil
}

// LoadAll returns the full registration snapshot keyed by registration
// ID. Unparseable rows are logged and skipped so one bad cell cannot
// take the dashboard down.
func (c *Client) LoadAll() (models.RegistrationsMap, error) {
	values, err := c.readAll(SheetRegistrations)
	if err != nil {
		return nil, err
	}
	regs := models.RegistrationsMap{}
	for i := 1; i < len(values); i++ {
		if len(values[i]) == 0 {
			continue
		}
		regID, reg, err := parseRegistration(values[i])
		if err != nil {
			log.Printf("sheets: row %d: %v", i+1, err)
			continue
		}
		regs[regID] = reg
	}
	return regs, nil
}

func (c *Client) findRow(regID string) (int, models.Registration, error) {
	values, err := c.readAll(SheetRegistrations)
	if err != nil {
		return 0, models.Registration{}, err
	}
	for i := 1; i < len(values); i++ {
		if get(values[i], 0) == regID {
			_, reg, err := parseRegistration(values[i])
			if err != nil {
				return 0, models.Registration{}, err
			}
			return i + 1, reg, nil // sheet rows are 1-indexed
		}
	}
	return 0, models.Registration{}, nil
}

// SubmitOrUpdate appends a new registration row or overwrites the
// existing one (full record, last write wins).
func (c *Client) SubmitOrUpdate(regID string, reg models.Registration, isUpdate bool) error {
	row, err := registrationRow(regID, reg)
	if err != nil {
		return err
	}
	if !isUpdate {
		return c.appendRow(SheetRegistrations, row)
	}
	rowNum, _, err := c.findRow(regID)
	if err != nil {
		return err
	}
	if rowNum == 0 {
		return fmt.Errorf("registration not found")
	}
	return c.updateRow(SheetRegistrations, rowNum, row)
}

// Search retrieves a registration by ID plus the last 4 digits of its
// first teacher's phone number. Wrong ID and wrong password both report
// found=false with no further detail.
func (c *Client) Search(regID, last4 string) (models.Registration, bool, error) {
	rowNum, reg, err := c.findRow(regID)
	if err != nil {
		return models.Registration{}, false, err
	}
	if rowNum == 0 || len(reg.Teachers) == 0 {
		return models.Registration{}, false, nil
	}
	phone := format.Digits(reg.Teachers[0].Phone)
	if len(phone) < 4 || phone[len(phone)-4:] != format.Digits(last4) {
		return models.Registration{}, false, nil
	}
	return reg, true, nil
}

// Config sheet: key | value rows, JSON values for the nested fields.

func (c *Client) LoadConfig() (models.EventConfig, error) {
	values, err := c.readAll(SheetConfig)
	if err != nil {
		return models.EventConfig{}, err
	}
	cfg := models.DefaultEventConfig()
	for i := 1; i < len(values); i++ {
		key := strings.TrimSpace(get(values[i], 0))
		val := get(values[i], 1)
		switch key {
		case "event_name":
			cfg.EventName = val
		case "event_venue":
			cfg.EventVenue = val
		case "admin_phone":
			cfg.AdminPhone = val
		case "tournament_date":
			cfg.TournamentDate = val
		case "registration_deadline":
			cfg.RegistrationDeadline = val
		case "schedules":
			if err := json.Unmarshal([]byte(val), &cfg.Schedules); err != nil {
				log.Printf("sheets: config schedules: %v", err)
			}
		case "links":
			if err := json.Unmarshal([]byte(val), &cfg.Links); err != nil {
				log.Printf("sheets: config links: %v", err)
			}
		case "documents":
			if err := json.Unmarshal([]byte(val), &cfg.Documents); err != nil {
				log.Printf("sheets: config documents: %v", err)
			}
		}
	}
	return cfg, nil
}

func (c *Client) SaveConfig(cfg models.EventConfig) error {
	schedules, err := json.Marshal(cfg.Schedules)
	if err != nil {
		return err
	}
	links, err := json.Marshal(cfg.Links)
	if err != nil {
		return err
	}
	documents, err := json.Marshal(cfg.Documents)
	if err != nil {
		return err
	}
	rows := [][]interface{}{
		{"key", "value"},
		{"event_name", cfg.EventName},
		{"event_venue", cfg.EventVenue},
		{"admin_phone", cfg.AdminPhone},
		{"tournament_date", cfg.TournamentDate},
		{"registration_deadline", cfg.RegistrationDeadline},
		{"schedules", string(schedules)},
		{"links", string(links)},
		{"documents", string(documents)},
	}
	if err := c.clearRange(SheetConfig, "A:B"); err != nil {
		return err
	}
	return c.writeRows(SheetConfig, "A1", rows)
}

func get(row []interface{}, idx int) string {
	if idx < 0 || idx >= len(row) || row[idx] == nil {
		return ""
	}
	return fmt.Sprint(row[idx])
}
