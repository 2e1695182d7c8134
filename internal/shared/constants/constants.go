package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination for search results
	DefaultPage      = 1
	DefaultPageSize  = 20
	MaxPageSize      = 100
	SnippetMaxLength = 400

	// HTTP Headers
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"

	// Content Types
	ContentTypeJSON = "application/json"

	// Database table names
	TableIssues    = "issues"
	TableIssuesFTS = "issues_fts"
	TableUsers     = "users"
)
