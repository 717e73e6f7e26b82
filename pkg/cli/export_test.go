package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/getmockd/hrmockd/pkg/dataset"
)

func exportJSON(t *testing.T, kind dataset.Kind, o exportOptions) []map[string]any {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, runExport(&buf, kind, o))

	var out []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out), buf.String())
	return out
}

func TestExport_All(t *testing.T) {
	t.Parallel()

	recs := exportJSON(t, dataset.KindDepartments, exportOptions{seed: 7, format: FormatJSON})
	require.Len(t, recs, 10)
	assert.Equal(t, "Engineering", recs[0]["title"])
	assert.Equal(t, "1", recs[0]["departmentId"])
}

func TestExport_Reproducible(t *testing.T) {
	t.Parallel()

	a := exportJSON(t, dataset.KindUsers, exportOptions{seed: 42, format: FormatJSON})
	b := exportJSON(t, dataset.KindUsers, exportOptions{seed: 42, format: FormatJSON})
	assert.Equal(t, a, b)
}

func TestExport_Where(t *testing.T) {
	t.Parallel()

	recs := exportJSON(t, dataset.KindLeaveTypes, exportOptions{
		seed:   1,
		where:  `accrualType == "PRO_RATA_ACCRUAL"`,
		format: FormatJSON,
	})
	require.Len(t, recs, 3)
	for _, r := range recs {
		assert.Equal(t, "PRO_RATA_ACCRUAL", r["accrualType"])
	}

	recs = exportJSON(t, dataset.KindLeaveRequests, exportOptions{
		seed:   1,
		where:  `status == "APPROVED" && hours >= 7.5`,
		format: FormatJSON,
	})
	for _, r := range recs {
		assert.Equal(t, "APPROVED", r["status"])
		assert.GreaterOrEqual(t, r["hours"], 7.5)
	}

	recs = exportJSON(t, dataset.KindPayrollCycles, exportOptions{where: `default == true`, format: FormatJSON})
	require.Len(t, recs, 1)
	assert.Equal(t, "FORTNIGHTLY", recs[0]["type"])
}

func TestExport_WhereErrors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := runExport(&buf, dataset.KindDepartments, exportOptions{where: "title ==", format: FormatJSON})
	assert.ErrorContains(t, err, "compile --where")

	err = runExport(&buf, dataset.KindDepartments, exportOptions{where: "title > 5", format: FormatJSON})
	assert.ErrorContains(t, err, "eval --where")
}

func TestExport_JSONPath(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, runExport(&buf, dataset.KindLocations, exportOptions{
		jsonPath: "$[*].locationId",
		format:   FormatJSON,
	}))

	var ids []string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ids))
	assert.Equal(t, []string{
		"SYDNEY", "MELBOURNE", "BRISBANE", "PERTH", "ADELAIDE",
		"CANBERRA", "DARWIN", "HOBART", "AUCKLAND", "WELLINGTON",
	}, ids)

	err := runExport(&buf, dataset.KindLocations, exportOptions{jsonPath: "$[", format: FormatJSON})
	assert.ErrorContains(t, err, "parse --jsonpath")
}

func TestExport_YAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, runExport(&buf, dataset.KindLegalEntities, exportOptions{seed: 3, format: "YAML"}))

	var recs []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &recs))
	require.Len(t, recs, 3)
	assert.Equal(t, true, recs[0]["default"])
	assert.Equal(t, "01", recs[0]["branchNumber"])
}

func readSheet(t *testing.T, data []byte, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestExport_XLSX(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, runExport(&buf, dataset.KindDepartments, exportOptions{seed: 7, format: FormatXLSX}))

	rows := readSheet(t, buf.Bytes(), "departments")
	require.Len(t, rows, 11)
	assert.Equal(t, []string{"deleted", "departmentId", "description", "id", "parent", "path", "title"}, rows[0])
	assert.Equal(t, "1", rows[1][1])
	assert.Equal(t, "Engineering", rows[1][6])
}

func TestExport_XLSXProjection(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, runExport(&buf, dataset.KindLeaveTypes, exportOptions{
		seed:     1,
		jsonPath: "$[*].code",
		format:   FormatXLSX,
	}))

	rows := readSheet(t, buf.Bytes(), "leaveTypes")
	require.Len(t, rows, 6)
	assert.Equal(t, []string{"value"}, rows[0])
	assert.Equal(t, []string{"AL"}, rows[1])
}

func TestExport_BadFormat(t *testing.T) {
	t.Parallel()

	err := runExport(&bytes.Buffer{}, dataset.KindUsers, exportOptions{format: "csv"})
	assert.ErrorContains(t, err, "unsupported format")
}

func TestExportCommand(t *testing.T) {
	t.Parallel()

	code, out, _ := run(t, "export", "leaveTypes", "--jsonpath", "$[*].code")
	require.Equal(t, 0, code)

	var codes []string
	require.NoError(t, json.Unmarshal([]byte(out), &codes))
	assert.Equal(t, []string{"AL", "PL", "LSL", "CL", "ML"}, codes)

	code, _, errOut := run(t, "export", "payslips")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown collection")

	code, _, _ = run(t, "export")
	assert.Equal(t, 1, code)
}

func TestExportCommand_OutputFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "candidates.json")
	code, out, _ := run(t, "export", "candidates", "-o", path, "--seed", "9")
	require.Equal(t, 0, code)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var recs []map[string]any
	require.NoError(t, json.Unmarshal(data, &recs))
	assert.Len(t, recs, 25)
}
