// Package report renders the probability model and DP outputs to the
// same external formats the teacher tools use: xlsx tables via excelize
// and a YAML debug dump of the upgrade-state table.
package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/zyr17/artifact-scheduler/internal/data"
	"github.com/zyr17/artifact-scheduler/internal/dp"
)

func colName(n int) string {
	if n <= 0 {
		return ""
	}
	out := ""
	for n > 0 {
		n--
		out = string(rune('A'+(n%26))) + out
		n /= 26
	}
	return out
}

func subsLabel(a data.Artifact) string {
	parts := make([]string, len(a.Subs))
	for i, s := range a.Subs {
		parts[i] = fmt.Sprintf("%s(%d)", s.Affix, s.Roll)
	}
	return strings.Join(parts, ", ")
}

// ExportEnumeratorXLSX writes one sheet per set plus an "All" sheet
// listing every enumerated artifact and its drop probability, mirroring
// the teacher's header/column layout (export_xlsx.go's colName helper
// and per-sheet row writer).
func ExportEnumeratorXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	writeSheet := func(name string, rows []data.ArtifactProb) error {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
		f.SetCellValue(name, colName(1)+"1", "Set")
		f.SetCellValue(name, colName(2)+"1", "Main")
		f.SetCellValue(name, colName(3)+"1", "Subs")
		f.SetCellValue(name, colName(4)+"1", "Probability")
		for i, ap := range rows {
			row := i + 2
			f.SetCellValue(name, fmt.Sprintf("%s%d", colName(1), row), ap.Artifact.Set.String())
			f.SetCellValue(name, fmt.Sprintf("%s%d", colName(2), row), ap.Artifact.Main.String())
			f.SetCellValue(name, fmt.Sprintf("%s%d", colName(3), row), subsLabel(ap.Artifact))
			f.SetCellValue(name, fmt.Sprintf("%s%d", colName(4), row), ap.Prob)
		}
		return nil
	}

	if err := writeSheet("All", data.GetAllArtifactsWithProbs(nil)); err != nil {
		return fmt.Errorf("report: writing All sheet: %w", err)
	}
	for _, set := range data.Sets {
		s := set
		if err := writeSheet(set.String(), data.GetAllArtifactsWithProbs(&s)); err != nil {
			return fmt.Errorf("report: writing %s sheet: %w", set, err)
		}
	}
	f.DeleteSheet("Sheet1")

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("report: saving %s: %w", path, err)
	}
	return nil
}

// ExportGainReportsXLSX writes a batch of find_gain fuzz results as a flat
// table, one row per input/output pair.
func ExportGainReportsXLSX(path string, reports []dp.GainReport) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetCellValue(sheet, colName(1)+"1", "Score Bar")
	f.SetCellValue(sheet, colName(2)+"1", "Target Cost")
	f.SetCellValue(sheet, colName(3)+"1", "Gain")
	for i, r := range reports {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("%s%d", colName(1), row), r.ScoreBar)
		f.SetCellValue(sheet, fmt.Sprintf("%s%d", colName(2), row), r.TargetCost)
		f.SetCellValue(sheet, fmt.Sprintf("%s%d", colName(3), row), r.Gain)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("report: saving %s: %w", path, err)
	}
	return nil
}
