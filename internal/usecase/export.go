package usecase

import (
	"encoding/csv"
	"fmt"
	"io"

	"TrendPulse/internal/domain/models"
	"TrendPulse/pkg/util"
)

var exportHeader = []string{
	"name",
	"category",
	"growth_rate",
	"adoption_level",
	"impact_level",
	"confidence_score",
	"first_detected",
}

// ExportCSV writes the trend set as CSV: a header row plus one row per
// trend, dates at day precision, rates with two decimals.
func (t *TrendTracker) ExportCSV(w io.Writer, trends []models.Trend) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, tr := range trends {
		row := []string{
			tr.Name,
			tr.Category,
			fmt.Sprintf("%.2f", tr.GrowthRate),
			string(tr.AdoptionLevel),
			string(tr.ImpactLevel),
			fmt.Sprintf("%.2f", tr.ConfidenceScore),
			util.FormatDate(tr.FirstDetected),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
