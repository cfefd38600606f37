package config

const (
	defaultPar2Binary      = "par2"
	defaultRedundancy      = 10
	defaultThreads         = "+"
	defaultRecoveryFiles   = 1
	defaultQuietLevel      = 2
	defaultJobs            = 1
	defaultLockDir         = "~/.local/state/par2r/locks"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultLogRetentionDay = 30
	maxRedundancy          = 100
	maxQuietLevel          = 2
)

// DefaultExtensions lists the file extensions that mark a directory as a
// target. Matching is exact and case-sensitive.
var DefaultExtensions = []string{
	".dng",
	".jpg",
	".tif",
	".tiff",
	".jpeg",
	".mp4",
	".mov",
	".m4v",
	".avi",
	".lrcat",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Par2: Par2{
			Binary:        defaultPar2Binary,
			Redundancy:    defaultRedundancy,
			Threads:       defaultThreads,
			RecoveryFiles: defaultRecoveryFiles,
			QuietLevel:    defaultQuietLevel,
		},
		Scan: Scan{
			Extensions: append([]string(nil), DefaultExtensions...),
		},
		Run: Run{
			Jobs:    defaultJobs,
			LockDir: defaultLockDir,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDay,
		},
	}
}
