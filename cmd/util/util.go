package util

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/shelfkv/shelf/lib/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupStoreFlags adds the store connection flags to a command.
func SetupStoreFlags(cmd *cobra.Command) {
	key := "host"
	cmd.Flags().String(key, "localhost", WrapString("Host of the Redis/KeyDB server"))

	key = "port"
	cmd.Flags().Int(key, 6379, WrapString("Port of the Redis/KeyDB server"))

	key = "db"
	cmd.Flags().Int(key, 0, WrapString("Logical database index to use"))

	key = "timeout"
	cmd.Flags().Int(key, 5, WrapString("Connection timeout in seconds"))
}

// InitConfig initializes configuration from environment variables.
// Flags, when set, take precedence over the environment.
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// conventional REDIS_* names, not a prefixed scheme
	_ = viper.BindEnv("host", "REDIS_HOST")
	_ = viper.BindEnv("port", "REDIS_PORT")
	_ = viper.BindEnv("db", "REDIS_DB")
	_ = viper.BindEnv("timeout", "REDIS_TIMEOUT")
}

// GetStoreConfig reads the store configuration from viper.
func GetStoreConfig() store.Config {
	return store.Config{
		Host:           viper.GetString("host"),
		Port:           viper.GetInt("port"),
		DB:             viper.GetInt("db"),
		TimeoutSeconds: viper.GetInt("timeout"),
	}
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}
