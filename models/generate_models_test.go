package models_test

import (
	"bytes"
	"testing"

	"github.com/Samandar-Komilov/voidpdev/database/databasetest"
	"github.com/Samandar-Komilov/voidpdev/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnReportOnMigratedSchema(t *testing.T) {
	db := databasetest.Open(t)

	reports, err := models.ColumnReport(db)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	for _, report := range reports {
		assert.False(t, report.Missing, report.Table)
		assert.Empty(t, report.Unmapped, report.Table)
		assert.Empty(t, report.Unmatched, report.Table)
	}

	var out bytes.Buffer
	models.PrintColumnReport(&out, reports)
	assert.Contains(t, out.String(), "--- Table: posts ---")
	assert.Contains(t, out.String(), "Total mismatched columns across all tables: 0")
}

func TestColumnReportFlagsDrift(t *testing.T) {
	db := databasetest.Open(t)
	require.NoError(t, db.Exec("ALTER TABLE projects ADD COLUMN legacy_score integer").Error)
	require.NoError(t, db.Migrator().DropTable("posts"))

	reports, err := models.ColumnReport(db)
	require.NoError(t, err)

	byTable := map[string]models.TableReport{}
	for _, r := range reports {
		byTable[r.Table] = r
	}
	assert.True(t, byTable["posts"].Missing)
	assert.Equal(t, []string{"legacy_score"}, byTable["projects"].Unmapped)
}
