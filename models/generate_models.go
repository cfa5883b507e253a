package models

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

/*
Column Mismatch Report Usage:

The report lists database columns that no field of the corresponding Go
model maps to. Tables that do not exist yet are reported as missing.

	voidpdev migrate --report

Example output:
=== COLUMN MISMATCH REPORT ===
--- Table: posts ---
Found 1 columns not accounted for in model:
  - legacy_body

--- Table: projects ---
All columns are accounted for in the model.

=== SUMMARY ===
Total mismatched columns across all tables: 1
*/

// All lists every persisted model, in migration order.
func All() []any {
	return []any{&Post{}, &Project{}}
}

// Migrate creates or alters the tables of every model.
func Migrate(db *gorm.DB) error {
	migrateDB := db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})
	if err := migrateDB.AutoMigrate(All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// GenerateQueries writes typed gorm/gen query helpers for every model to
// outPath.
func GenerateQueries(db *gorm.DB, outPath string) {
	g := gen.NewGenerator(gen.Config{
		OutPath:           outPath,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(Post{}, Project{})
	g.Execute()
}

// TableReport is the column mismatch result for one table.
type TableReport struct {
	Table     string
	Missing   bool
	Unmapped  []string
	Unmatched []string
}

// ColumnReport compares each model table with the live schema. Unmapped
// holds database columns no model field maps to; Unmatched holds model
// columns absent from the database.
func ColumnReport(db *gorm.DB) ([]TableReport, error) {
	cache := &sync.Map{}
	var reports []TableReport

	for _, model := range All() {
		s, err := schema.Parse(model, cache, db.NamingStrategy)
		if err != nil {
			return nil, fmt.Errorf("parse schema of %T: %w", model, err)
		}

		report := TableReport{Table: s.Table}
		if !db.Migrator().HasTable(s.Table) {
			report.Missing = true
			reports = append(reports, report)
			continue
		}

		columnTypes, err := db.Migrator().ColumnTypes(s.Table)
		if err != nil {
			return nil, fmt.Errorf("error querying columns for table %s: %w", s.Table, err)
		}
		dbColumns := make([]string, 0, len(columnTypes))
		for _, ct := range columnTypes {
			dbColumns = append(dbColumns, ct.Name())
		}

		modelColumns := make([]string, 0, len(s.Fields))
		for _, field := range s.Fields {
			if field.DBName != "" {
				modelColumns = append(modelColumns, field.DBName)
			}
		}

		report.Unmapped = difference(dbColumns, modelColumns)
		report.Unmatched = difference(modelColumns, dbColumns)
		reports = append(reports, report)
	}

	return reports, nil
}

// PrintColumnReport writes reports in the human readable format shown at the
// top of this file.
func PrintColumnReport(w io.Writer, reports []TableReport) {
	fmt.Fprintln(w, "=== COLUMN MISMATCH REPORT ===")

	total := 0
	for _, report := range reports {
		fmt.Fprintf(w, "\n--- Table: %s ---\n", report.Table)
		switch {
		case report.Missing:
			fmt.Fprintln(w, "Table does not exist yet (will be created during migration)")
		case len(report.Unmapped) > 0:
			fmt.Fprintf(w, "Found %d columns not accounted for in model:\n", len(report.Unmapped))
			for _, col := range report.Unmapped {
				fmt.Fprintf(w, "  - %s\n", col)
			}
			total += len(report.Unmapped)
		default:
			fmt.Fprintln(w, "All columns are accounted for in the model.")
		}
		for _, col := range report.Unmatched {
			fmt.Fprintf(w, "  ! model column %s missing from database\n", col)
		}
	}

	fmt.Fprintf(w, "\n=== SUMMARY ===\n")
	fmt.Fprintf(w, "Total mismatched columns across all tables: %d\n", total)
}

// difference returns the values of a absent from b, sorted.
func difference(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, v := range b {
		set[v] = true
	}

	var out []string
	for _, v := range a {
		if !set[v] {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
