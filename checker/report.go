package checker

// Report maps a Check outcome to the single line the CLI prints on stdout.
func Report(err error) string {
	if err != nil {
		return "TOML error: " + err.Error()
	}
	return "TOML is valid"
}
