package cmd

// Config carries everything the dispatch service needs from the environment.
type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	RouteTokenSecret  string
	DriverViewBaseURL string
	S3SignatureBucket string
	S3Region          string
	S3PublicBaseURL   string
}
