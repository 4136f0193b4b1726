package db

// Config carries the connection settings for the billing database. Dialect
// selection happens in Dialect; pool durations are expressed in seconds with
// zero leaving the driver default untouched.
type Config struct {
	// Type selects the dialect: postgres, mysql or sqlite. For sqlite the
	// Name field is reused as the database file path.
	Type string

	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string

	MaxIdleConn     int
	MaxOpenConn     int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}
