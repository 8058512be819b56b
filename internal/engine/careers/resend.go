package careers

import (
	"context"
	"encoding/json"

	"github.com/careerscout/careerscout/internal/engine"
)

type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendEmail delivers one HTML email via Resend and returns the provider's
// raw response (normally just the created message id).
func SendEmail(ctx context.Context, to, subject, html string) (map[string]any, error) {
	body, err := json.Marshal(resendPayload{
		From:    engine.Cfg.EmailFrom,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return nil, err
	}

	headers := map[string]string{
		"Authorization": "Bearer " + engine.Cfg.ResendAPIKey,
	}

	var out map[string]any
	if err := engine.DoJSON(ctx, engine.ProviderResend, "POST", engine.Cfg.ResendBaseURL+"/emails", headers, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}
