package notifier

import (
	"context"
	"net/http"
	"time"

	config "github.com/Keoroanthony/go-crm/configs"
)

// FromConfig assembles the notifiers switched on in cfg. With none enabled it
// returns Noop.
func FromConfig(ctx context.Context, cfg config.Config) (Notifier, error) {
	var m Multi

	if cfg.Notify.Email {
		email, err := NewSESEmailNotifier(ctx, cfg.Email)
		if err != nil {
			return nil, err
		}
		m = append(m, email)
	}

	if cfg.Notify.SMS {
		m = append(m, NewSMSNotifier(cfg.SMS, &http.Client{Timeout: 10 * time.Second}))
	}

	if len(m) == 0 {
		return Noop{}, nil
	}
	return m, nil
}
