// Package excel is the primary RecordStore: one xlsx workbook, loaded whole
// at the start of a pass and rewritten whole at the end.
package excel

import (
	"context"
	"errors"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/talentops/resume-intake/internal/core/domain"
)

const sheetName = "Sheet1"

// Current schema, in persisted column order.
var columns = []string{
	"Source Date", "Month", "Year", "Skill", "Candidate Name",
	"Total Experience", "Email ID", "Phone Number", "File Name", "Status",
}

// Column names written by earlier versions of the pipeline, renamed once at
// load time so nothing downstream ever branches on column presence.
var legacyRenames = map[string]string{
	"Name":        "Candidate Name",
	"Skills":      "Skill",
	"Received On": "Source Date",
	"Experience":  "Total Experience",
}

// droppedColumns are legacy columns discarded entirely at load.
var droppedColumns = map[string]struct{}{
	"Date": {},
}

type Store struct {
	path        string
	detailsPath string
}

// New builds a store writing the primary workbook at path and, when
// detailsPath is non-empty, the secondary candidate-details projection
// beside it.
func New(path, detailsPath string) *Store {
	return &Store{path: path, detailsPath: detailsPath}
}

// Load reads the whole dataset. A missing workbook is an empty dataset, not
// an error; anything else is ErrStoreLoad.
func (s *Store) Load(_ context.Context) (domain.Dataset, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, domain.WrapError(domain.ErrStoreLoad, "open workbook", err)
	}
	defer f.Close()

	sheet := sheetName
	if list := f.GetSheetList(); len(list) > 0 {
		sheet = list[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, domain.WrapError(domain.ErrStoreLoad, "read rows", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	index := headerIndex(rows[0])
	ds := make(domain.Dataset, 0, len(rows)-1)
	for _, row := range rows[1:] {
		ds = append(ds, recordFromRow(row, index))
	}
	return ds, nil
}

// Save rewrites the primary workbook in dataset order, then regenerates the
// details projection when configured. Save failures are fatal to the run.
func (s *Store) Save(_ context.Context, ds domain.Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	header := toAnySlice(columns)
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return domain.WrapError(domain.ErrStoreSave, "write header", err)
	}
	for i, rec := range ds {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return domain.WrapError(domain.ErrStoreSave, "address row", err)
		}
		row := []any{
			rec.SourceDate, rec.Month, rec.Year, rec.SkillList(),
			rec.CandidateName, rec.TotalExperience, rec.EmailID,
			rec.PhoneNumber, rec.FileName, string(rec.Status),
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return domain.WrapError(domain.ErrStoreSave, "write row", err)
		}
	}
	if err := f.SaveAs(s.path); err != nil {
		return domain.WrapError(domain.ErrStoreSave, "save workbook", err)
	}

	if s.detailsPath == "" {
		return nil
	}
	if err := writeDetails(s.detailsPath, ds); err != nil {
		return domain.WrapError(domain.ErrStoreSave, "save details workbook", err)
	}
	return nil
}

// headerIndex maps each current-schema column to its position in the loaded
// header row, applying legacy renames and dropping retired columns.
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, dropped := droppedColumns[name]; dropped {
			continue
		}
		if renamed, ok := legacyRenames[name]; ok {
			name = renamed
		}
		if _, taken := index[name]; !taken {
			index[name] = i
		}
	}
	return index
}

func recordFromRow(row []string, index map[string]int) domain.CandidateRecord {
	cell := func(column string) string {
		i, ok := index[column]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	return domain.CandidateRecord{
		SourceDate:      cell("Source Date"),
		Month:           cell("Month"),
		Year:            cell("Year"),
		Skills:          domain.ParseSkillList(cell("Skill")),
		CandidateName:   cell("Candidate Name"),
		TotalExperience: cell("Total Experience"),
		EmailID:         cell("Email ID"),
		PhoneNumber:     cell("Phone Number"),
		FileName:        cell("File Name"),
		Status:          domain.RecordStatus(cell("Status")),
	}
}

func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
