package excel

import (
	"github.com/xuri/excelize/v2"

	"github.com/talentops/resume-intake/internal/core/domain"
)

// Column order of the candidate-details workbook handed to recruiters. The
// trailing columns are filled in by hand after screening, so they start as
// the unknown sentinel.
var detailColumns = []string{
	"Source Date", "Month", "Year", "Source", "Rec", "Skill",
	"Candidate Name", "Total Experience", "Email ID", "Phone Number",
	"Status", "Education", "NP", "Current Company", "CCTC", "ECTC",
	"Current Location", "Current Status", "Comment",
}

func writeDetails(path string, ds domain.Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	header := toAnySlice(detailColumns)
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}
	for i, rec := range ds {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			rec.SourceDate, rec.Month, rec.Year,
			domain.Unknown, domain.Unknown,
			rec.SkillList(), rec.CandidateName, rec.TotalExperience,
			rec.EmailID, rec.PhoneNumber, string(rec.Status),
			domain.Unknown, domain.Unknown, domain.Unknown,
			domain.Unknown, domain.Unknown, domain.Unknown,
			domain.Unknown, domain.Unknown,
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
