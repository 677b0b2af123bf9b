package constants

const (
	MaxNameLen        = 100
	MaxDescriptionLen = 255
)

const (
	// DateFormat is how dates are typed in flags and forms.
	DateFormat = "2006-01-02"
	// DateTimeFormat is how dates are shown in tables and detail views.
	DateTimeFormat = "2006-01-02 15:04"
)

const (
	DefaultBaseURL  = "https://ledger-backend-app.azurewebsites.net"
	DefaultCurrency = "USD"
	DefaultLogLevel = "info"
)
