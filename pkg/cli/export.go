package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/getmockd/hrmockd/pkg/dataset"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatXLSX = "xlsx"
)

// exportOptions controls which records export prints and how.
type exportOptions struct {
	seed     int64
	where    string
	jsonPath string
	format   string
	output   string
}

func newExportCmd() *cobra.Command {
	var o exportOptions

	cmd := &cobra.Command{
		Use:   "export <collection>",
		Short: "Print one generated collection as JSON, YAML or a spreadsheet",
		Long: `Generate a dataset and print every record of one collection.

Collections may be named by path (leave-types) or key (leaveTypes).
--where filters records with an expression evaluated against each record's
JSON fields; --jsonpath projects the filtered records with a JSONPath query
rooted at the record array.

The xlsx format writes a workbook with one sheet named after the collection,
one header row of field names and one row per record. Nested values are
written as JSON text.`,
		Example: `  # All departments as JSON
  hrmockd export departments

  # Approved leave requests longer than a day, as YAML
  hrmockd export leave-requests --where 'status == "APPROVED" && hours > 7.5' --format yaml

  # Email addresses of active users from a reproducible dataset
  hrmockd export users --seed 42 --where 'active' --jsonpath '$[*].email'

  # Employee list as a spreadsheet
  hrmockd export employees --format xlsx -o employees.xlsx`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			kinds := dataset.Kinds()
			names := make([]string, len(kinds))
			for i, k := range kinds {
				names[i] = string(k)
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := dataset.ParseKind(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if o.output != "" {
				f, err := os.Create(o.output)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer f.Close()
				out = f
			}
			return runExport(out, kind, o)
		},
	}

	fl := cmd.Flags()
	fl.Int64Var(&o.seed, "seed", 0, "Dataset seed; 0 draws fresh randomness")
	fl.StringVarP(&o.where, "where", "w", "", "Filter expression evaluated per record (expr-lang syntax)")
	fl.StringVarP(&o.jsonPath, "jsonpath", "j", "", "JSONPath projection applied to the filtered records")
	fl.StringVarP(&o.format, "format", "f", FormatJSON, "Output format: json, yaml, xlsx")
	fl.StringVarP(&o.output, "output", "o", "", "Output file (default: stdout)")
	return cmd
}

func runExport(w io.Writer, kind dataset.Kind, o exportOptions) error {
	format := strings.ToLower(o.format)
	if format != FormatJSON && format != FormatYAML && format != FormatXLSX {
		return fmt.Errorf("unsupported format %q (want json, yaml or xlsx)", o.format)
	}

	snap, err := dataset.Build(dataset.Options{Seed: o.seed})
	if err != nil {
		return fmt.Errorf("generate dataset: %w", err)
	}
	typed, err := snap.Records(kind)
	if err != nil {
		return err
	}

	records, err := toGeneric(typed)
	if err != nil {
		return err
	}
	if o.where != "" {
		if records, err = filterRecords(records, o.where); err != nil {
			return err
		}
	}

	var result any = records
	if o.jsonPath != "" {
		if result, err = project(records, o.jsonPath); err != nil {
			return err
		}
	}
	if format == FormatXLSX {
		return writeWorkbook(w, kind.Key(), result)
	}
	return writeResult(w, result, format)
}

// toGeneric converts typed records to their JSON field maps, so filters
// and projections see the same names and shapes as API clients.
func toGeneric(records []any) ([]any, error) {
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}
	v, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	out, _ := v.([]any)
	if out == nil {
		out = []any{}
	}
	return out, nil
}

// filterRecords keeps the records for which where evaluates to true.
// Fields absent from a record evaluate to nil.
func filterRecords(records []any, where string) ([]any, error) {
	program, err := expr.Compile(where, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compile --where %q: %w", where, err)
	}

	out := make([]any, 0, len(records))
	for i, rec := range records {
		ok, err := matches(program, rec)
		if err != nil {
			return nil, fmt.Errorf("eval --where on record %d: %w", i, err)
		}
		if ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func matches(program *vm.Program, rec any) (bool, error) {
	env, ok := rec.(map[string]any)
	if !ok {
		return false, fmt.Errorf("record is %T, not an object", rec)
	}
	v, err := expr.Run(program, env)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	return ok && b, nil
}

func project(records []any, path string) ([]any, error) {
	x, err := jp.ParseString(path)
	if err != nil {
		return nil, fmt.Errorf("parse --jsonpath %q: %w", path, err)
	}
	out := x.Get(records)
	if out == nil {
		out = []any{}
	}
	return out, nil
}

func writeResult(w io.Writer, v any, format string) error {
	if format == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// writeWorkbook writes v as a single-sheet workbook. Object rows get one
// column per field name seen across all rows, sorted; any other element
// lands in a single "value" column.
func writeWorkbook(w io.Writer, sheet string, v any) error {
	rows, _ := v.([]any)

	var columns []string
	objects := len(rows) > 0
	seen := map[string]bool{}
	for _, row := range rows {
		m, ok := row.(map[string]any)
		if !ok {
			objects = false
			break
		}
		for k := range m {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
	}
	if objects {
		slices.Sort(columns)
	}
	if !objects || len(columns) == 0 {
		objects = false
		columns = []string{"value"}
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range rows {
		cells := make([]any, len(columns))
		if m, ok := row.(map[string]any); objects && ok {
			for j, c := range columns {
				cells[j] = cellValue(m[c])
			}
		} else {
			cells[0] = cellValue(row)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func cellValue(v any) any {
	switch v.(type) {
	case nil:
		return nil
	case map[string]any, []any:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	default:
		return v
	}
}
