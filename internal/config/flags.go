package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server base URL (e.g. https://vault.example.com/api)
//	-d local cache database DSN
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-workers bulk decryption pool size
//	-log-file log file path
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var poolSize int
	var logFile string

	flag.StringVar(&serverAddress, "a", "", "Vault server base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local cache database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&poolSize, "workers", 0, "Bulk decryption pool size")
	flag.StringVar(&logFile, "log-file", "", "Log file path")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Adapter: Adapter{
			ServerAddress:  serverAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers:      Workers{PoolSize: poolSize},
		JSONFilePath: jsonConfigPath,
	}
}
