package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/thermolab/internal/lab"
)

type SeriesData struct {
	Label string    `json:"label"`
	Y     []float64 `json:"y"`
}

type ExportData struct {
	Study   string             `json:"study"`
	Rule    string             `json:"rule"`
	Points  int                `json:"points"`
	XLabel  string             `json:"x_label"`
	X       []float64          `json:"x"`
	Series  []SeriesData       `json:"series"`
	Params  map[string]float64 `json:"params"`
	Metrics map[string]float64 `json:"metrics"`
}

func buildExportData(rule string, cfg lab.Config, result *lab.Result) ExportData {
	data := ExportData{
		Study:   result.Study,
		Rule:    rule,
		Points:  cfg.Points,
		XLabel:  result.XLabel,
		X:       result.X,
		Series:  make([]SeriesData, len(result.Series)),
		Params:  cfg.Params(),
		Metrics: result.Metrics,
	}
	for i, s := range result.Series {
		data.Series[i] = SeriesData{Label: s.Label, Y: s.Y}
	}
	return data
}

func ExportJSON(path, rule string, cfg lab.Config, result *lab.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return writeJSON(file, rule, cfg, result)
}

func ExportJSONStdout(rule string, cfg lab.Config, result *lab.Result) error {
	return writeJSON(os.Stdout, rule, cfg, result)
}

func writeJSON(w io.Writer, rule string, cfg lab.Config, result *lab.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildExportData(rule, cfg, result))
}
