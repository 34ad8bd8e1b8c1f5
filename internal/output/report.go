package output

import (
	"fmt"
	"strings"

	"github.com/homepath/deposit-forecast/internal/domain"
)

// GenerateReport writes result in the named format to a timestamped file in dir
// and returns the file path. "all" writes every registered format.
func GenerateReport(result *domain.ProjectionResult, format, dir string) ([]string, error) {
	if f := GetFormatterByName(format); f != nil {
		path, err := WriteFormatted(f, result, dir)
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	}
	if NormalizeFormatName(format) == "all" {
		var paths []string
		for _, name := range AvailableFormatterNames() {
			path, err := WriteFormatted(GetFormatterByName(name), result, dir)
			if err != nil {
				return paths, fmt.Errorf("%s report: %w", name, err)
			}
			paths = append(paths, path)
		}
		return paths, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
