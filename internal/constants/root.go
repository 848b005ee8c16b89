package constants

const (
	AppName            = "habitapp"
	DefaultKeyringUser = "vault-master-key"
	DefaultConfigPath  = "~/.config/habitapp/state.json"
	Version            = "v1.0.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Water unit conversion ratios
	MlPerOz = 29.5735
	OzPerMl = 0.033814

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitapp-"
	BackupFileSuffix = ".json"
)

// Budget split targets as a share of post-tax income (conscious-spending plan).
const (
	BudgetTargetFixedCosts  = 0.5
	BudgetTargetInvestments = 0.1
	BudgetTargetSavings     = 0.1
	BudgetTargetGuiltFree   = 0.3
)
