package jobserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/careerscout/careerscout/internal/dispatch"
	"github.com/careerscout/careerscout/internal/engine"
)

// send-email is the one tool with a side effect, so it is never cached and
// carries no read-only hint.
func registerSendEmail(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "send-email",
		Description: "Send an HTML email to a recipient. Requires to, subject, and html.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.SendEmailInput) (*mcp.CallToolResult, dispatch.Envelope, error) {
		return nil, dispatch.SendEmail(ctx, input), nil
	})
}
