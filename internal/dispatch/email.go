package dispatch

import (
	"context"
	"fmt"

	"github.com/careerscout/careerscout/internal/engine"
	"github.com/careerscout/careerscout/internal/engine/careers"
)

// SendEmail delivers one HTML email through the mail provider.
func SendEmail(ctx context.Context, in engine.SendEmailInput) Envelope {
	if in.To == "" || in.Subject == "" || in.HTML == "" {
		return fail("Missing required fields: to, subject, or html",
			"Missing required fields: to, subject, or html")
	}

	resp, err := careers.SendEmail(ctx, in.To, in.Subject, in.HTML)
	if err != nil {
		return upstreamFail(err, "Failed to send email")
	}
	return ok(resp, fmt.Sprintf("Email sent to %s", in.To))
}
