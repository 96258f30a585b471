package sat

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
)

// ConfigPath points at an optional config.json mapping solver names to
// executable paths, e.g. {"minisatPath": "/usr/local/bin/minisat"}.
var ConfigPath = "config.json"

// getExecutablePath resolves a solver executable from the config file. A
// missing file, unreadable JSON or absent key falls back to the bare
// executable name, leaving resolution to $PATH.
func getExecutablePath(solver string, fallback string) string {
	bytes, err := os.ReadFile(ConfigPath)
	if err != nil {
		return fallback
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return fallback
	}

	var config map[string]string
	mapstructure.Decode(inputJson, &config)

	path, ok := config[solver]
	if !ok {
		return fallback
	}
	return path
}
