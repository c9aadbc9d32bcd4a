package config

const (
	KeyAPIBaseURL       = "api_base_url"
	KeyAPIToken         = "api_token"
	KeyAPITimeout       = "api_call_timeout"
	KeyPostgresURL      = "postgres_url"
	KeyLogLevel         = "log_level"
	KeyExportFormat     = "export_format"
	KeyExportDir        = "export_dir"
	KeySnapshotMode     = "snapshot_mode"
	KeySnapshotFetchMax = "snapshot_fetch_max"
	KeyTokenizerModel   = "tokenizer_model"
	KeyContextTokens    = "context_tokens"
	KeyAutoMigrate      = "auto_migrate"
	KeyColorOutput      = "color_output"
)
