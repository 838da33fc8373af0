package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/talentops/resume-intake/internal/core/domain"
)

func newStoreWithMock(t *testing.T) (*Store, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	return &Store{db: db}, mock, func() { _ = db.Close() }
}

func TestLoadPreservesRowOrder(t *testing.T) {
	store, mock, done := newStoreWithMock(t)
	defer done()

	rows := sqlmock.NewRows([]string{
		"source_date", "month", "year", "skill", "candidate_name",
		"total_experience", "email_id", "phone_number", "file_name", "status",
	}).
		AddRow("2024-03-05 10:30:00", "March", "2024", "UVM, Verilog", "John Smith",
			"2 years", "john@example.org", "9876543210", "john.pdf", "Existing").
		AddRow("unknown", "unknown", "unknown", "unknown", "unknown",
			"unknown", "unknown", "unknown", "mystery.pdf", "New")
	mock.ExpectQuery("SELECT source_date, month, year, skill").WillReturnRows(rows)

	ds, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(ds) != 2 {
		t.Fatalf("Load() = %d records, want 2", len(ds))
	}
	if ds[0].CandidateName != "John Smith" || ds[1].FileName != "mystery.pdf" {
		t.Fatalf("rows out of order: %+v", ds)
	}
	if ds[0].SkillList() != "UVM, Verilog" {
		t.Errorf("SkillList() = %q", ds[0].SkillList())
	}
	if len(ds[1].Skills) != 0 {
		t.Errorf("sentinel skill cell parsed as %v", ds[1].Skills)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestLoadWrapsQueryFailure(t *testing.T) {
	store, mock, done := newStoreWithMock(t)
	defer done()

	mock.ExpectQuery("SELECT source_date").WillReturnError(errors.New("connection reset"))

	_, err := store.Load(context.Background())
	if !domain.IsKind(err, domain.ErrStoreLoad) {
		t.Fatalf("Load() error = %v, want ErrStoreLoad", err)
	}
}

func TestSaveRewritesTableInOneTransaction(t *testing.T) {
	store, mock, done := newStoreWithMock(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM candidate_records").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO candidate_records").
		WithArgs(0, "2024-03-05 10:30:00", "March", "2024", "Verilog", "John Smith",
			"2 years", "john@example.org", "9876543210", "john.pdf", "New").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ds := domain.Dataset{{
		SourceDate:      "2024-03-05 10:30:00",
		Month:           "March",
		Year:            "2024",
		Skills:          []string{"Verilog"},
		CandidateName:   "John Smith",
		TotalExperience: "2 years",
		EmailID:         "john@example.org",
		PhoneNumber:     "9876543210",
		FileName:        "john.pdf",
		Status:          domain.StatusNew,
	}}
	if err := store.Save(context.Background(), ds); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSaveRollsBackOnInsertFailure(t *testing.T) {
	store, mock, done := newStoreWithMock(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM candidate_records").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO candidate_records").WillReturnError(errors.New("out of disk"))
	mock.ExpectRollback()

	err := store.Save(context.Background(), domain.Dataset{{FileName: "x.pdf"}})
	if !domain.IsKind(err, domain.ErrStoreSave) {
		t.Fatalf("Save() error = %v, want ErrStoreSave", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
