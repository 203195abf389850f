// Package notify pushes registration events to the organizers. The
// provider is selected by config; "none" is a valid choice and the
// portal works fully without one.
package notify

import (
	"context"
	"fmt"
	"log"

	"mssd-portal/internal/config"
	"mssd-portal/internal/models"
)

type Notifier interface {
	Name() string

	// RegistrationSynced is called after a successful submit or update.
	RegistrationSynced(ctx context.Context, regID string, reg models.Registration, isUpdate bool) error
}

func New(cfg config.Config) (Notifier, error) {
	switch cfg.Notifier {
	case "telegram":
		return newTelegram(cfg.TelegramToken, cfg.AdminChatIDs)
	case "none":
		return noop{}, nil
	default:
		return nil, fmt.Errorf("unknown notifier: %s", cfg.Notifier)
	}
}

type noop struct{}

func (noop) Name() string { return "none" }

func (noop) RegistrationSynced(ctx context.Context, regID string, reg models.Registration, isUpdate bool) error {
	log.Printf("notify: %s %s (%d students)", action(isUpdate), regID, len(reg.Students))
	return nil
}

func action(isUpdate bool) string {
	if isUpdate {
		return "update"
	}
	return "submit"
}
