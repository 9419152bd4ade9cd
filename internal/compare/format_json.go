package compare

import (
	"encoding/json"

	"github.com/budgetpulse/budgetpulse/internal/domain"
)

// JSONFormatter formats a scenario comparison as JSON
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// Format generates JSON output for a scenario comparison
func (jf *JSONFormatter) Format(report *domain.ScenarioComparisonReport) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(report, "", "  ")
	} else {
		data, err = json.Marshal(report)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}
