package cmd

type Config struct {
	HTTPPort           string
	EngineSettingsPath string
	ImportInboxDir     string
	ImportOutboxDir    string
	ImportSchedule     string
}
