package constants

const (
	AppName            = "fastlit"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/fastlit/fastlit.db"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Persisted keys. Each key carries its own version suffix so future
	// format changes can migrate one value without touching the others.
	KeySessions     = "FastSessions.v1"
	KeyPlan         = "FastingPlan.v1"
	KeyReminders    = "ReminderSettings.v1"
	KeyTimeFormat   = "TimeFormat24h.v1"
	KeyOnboarded    = "Onboarded.v1"
	KeyHealthLinked = "HealthLinked.v1"

	// Plan tags. Stable textual identifiers for plan serialization.
	PlanTagSixteenEight = "16:8"
	PlanTagEighteenSix  = "18:6"
	PlanTagTwentyFour   = "20:4"
	PlanTagCustomPrefix = "custom:"

	// Reminder defaults
	DefaultPreEndMinutes = 10
	DefaultSnoozeMinutes = 10
	MinSnoozeMinutes     = 5
	MaxSnoozeMinutes     = 60

	// Notify constants
	NotifierLockfileName   = "fastlit-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.fastlit"
	SpoolFileName          = "pending-notifications.json"
)
