package constants

// Context keys set by the auth middleware
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
)

// Validation limits
const (
	MinPasswordLength = 6
)

// Date and time formats used in request payloads and stored columns
const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

// Entity defaults applied on create when the client omits the field
const (
	DefaultEventCategory = "Personal"
	DefaultEventColor    = "#667eea"
)
