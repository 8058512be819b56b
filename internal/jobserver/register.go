// Package jobserver exposes the career tools over MCP so assistant clients
// can call them directly. Every tool delegates to the shared dispatch layer,
// so MCP callers and HTTP callers see identical behavior.
package jobserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all career tools on the given MCP server:
// search-jobs, job-details, estimated-salary, company-job-salary,
// market-insight-tool, intelligent-job-search, analyze-company, web-search,
// send-email.
func RegisterTools(server *mcp.Server) {
	registerSearchJobs(server)
	registerJobDetails(server)
	registerEstimatedSalary(server)
	registerCompanyJobSalary(server)
	registerMarketInsight(server)
	registerIntelligentSearch(server)
	registerAnalyzeCompany(server)
	registerWebSearch(server)
	registerSendEmail(server)
}
