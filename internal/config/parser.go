package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	deskerrors "github.com/alexisbeaulieu97/deskpilot/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// parseFile loads one YAML document from disk into out. Missing files are not
// an error; every configuration file is optional.
func parseFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return deskerrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return deskerrors.NewParseError(path, extractLine(err), err)
	}

	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
