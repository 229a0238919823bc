package usercfg

func getDefaults() Config {
	t := true
	return Config{
		SchemaVersion:   CurrentSchemaVersion,
		TargetDir:       "",
		DownloadsDir:    "",
		StrictThreshold: 0.65,
		UseTrash:        &t,
	}
}
