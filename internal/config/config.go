package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Init(root *cobra.Command) {
	viper.SetEnvPrefix("LABHUB")
	viper.AutomaticEnv()
	_ = godotenv.Load("labhub.env")
	if root != nil {
		_ = viper.BindPFlags(root.PersistentFlags())
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyAPIBaseURL, "http://localhost:8080")
	viper.SetDefault(KeyAPITimeout, "30s")
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyExportFormat, "json")
	viper.SetDefault(KeyExportDir, ".")
	viper.SetDefault(KeySnapshotMode, "FULL")
	viper.SetDefault(KeySnapshotFetchMax, 100)
	viper.SetDefault(KeyTokenizerModel, "gpt-4o-mini")
	viper.SetDefault(KeyContextTokens, 4096)
	viper.SetDefault(KeyAutoMigrate, true)
	viper.SetDefault(KeyColorOutput, true)
}

func APIBaseURL() string     { return viper.GetString(KeyAPIBaseURL) }
func APIToken() string       { return viper.GetString(KeyAPIToken) }
func APICallTimeout() string { return viper.GetString(KeyAPITimeout) }
func PostgresURL() string    { return viper.GetString(KeyPostgresURL) }
func LogLevel() string       { return viper.GetString(KeyLogLevel) }
func ExportFormat() string   { return viper.GetString(KeyExportFormat) }
func ExportDir() string      { return viper.GetString(KeyExportDir) }
func SnapshotMode() string   { return viper.GetString(KeySnapshotMode) }
func SnapshotFetchMax() int  { return viper.GetInt(KeySnapshotFetchMax) }
func TokenizerModel() string { return viper.GetString(KeyTokenizerModel) }
func ContextTokens() int     { return viper.GetInt(KeyContextTokens) }
func AutoMigrate() bool      { return viper.GetBool(KeyAutoMigrate) }
func ColorOutput() bool      { return viper.GetBool(KeyColorOutput) }
