package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
	"github.com/SscSPs/salesmaster_cloud/internal/core/ingest"
	portssvc "github.com/SscSPs/salesmaster_cloud/internal/core/ports/services"
	"github.com/SscSPs/salesmaster_cloud/internal/core/services"
	"github.com/SscSPs/salesmaster_cloud/internal/middleware"
	"github.com/SscSPs/salesmaster_cloud/internal/platform/config"
	"github.com/SscSPs/salesmaster_cloud/internal/repositories/database/pgsql"
	"github.com/SscSPs/salesmaster_cloud/pkg/database"
	"github.com/spf13/cobra"
)

// ReplaceFunc runs the bulk replace for already built records.
type ReplaceFunc func(ctx context.Context, records []domain.Record, progress portssvc.ProgressFunc) (*domain.ReplaceResult, error)

// ImportCommand parses a local spreadsheet, shows the proposed mapping and,
// once confirmed, replaces the shared collection with its rows.
type ImportCommand struct {
	Path     string
	Mappings []string
	Yes      bool
	Preview  int

	// Replace defaults to a database-backed import service.
	Replace ReplaceFunc

	stdout io.Writer
	logger *slog.Logger
}

func NewImportCommand(stdout io.Writer, logger *slog.Logger) *ImportCommand {
	return &ImportCommand{Preview: 5, stdout: stdout, logger: logger}
}

func newImportCommand(stdout io.Writer, newLogger func() *slog.Logger) *cobra.Command {
	importer := NewImportCommand(stdout, nil)
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace every stored account with the rows of a spreadsheet.",
		Long: `Parses a CSV, TSV or XLSX file and prints the proposed column mapping
together with the first rows. The first row is the header.

Override a column with --map INDEX=FIELD, repeated as needed. Fields are
Ignore, Client, Vendor, Amount, Status, Phone, Date and Note.

Nothing is written unless --yes is given. With --yes every stored record
is deleted and the file's rows are inserted in batches.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			importer.logger = newLogger()
			return importer.Run(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&importer.Path, "file", "f", "", "Spreadsheet to import (.csv, .tsv, .txt or .xlsx).")
	flags.StringArrayVarP(&importer.Mappings, "map", "m", nil, "Column override as INDEX=FIELD, e.g. 4=Note.")
	flags.BoolVarP(&importer.Yes, "yes", "y", false, "Replace the stored records without asking again.")
	flags.IntVar(&importer.Preview, "preview", 5, "Number of data rows to print.")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (c *ImportCommand) Run(ctx context.Context) error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.Path, err)
	}
	if len(data) == 0 {
		return errors.New("file is empty")
	}

	rows, err := ingest.ParseFile(filepath.Base(c.Path), data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", c.Path, err)
	}
	if len(rows) == 0 {
		return errors.New("file has no rows")
	}
	header, dataRows := ingest.SplitHeader(rows)

	mapping := ingest.ProposeMapping(header)
	overrides, err := parseMapFlags(c.Mappings)
	if err != nil {
		return err
	}
	for _, o := range overrides {
		if err := mapping.Override(o.index, o.field); err != nil {
			return fmt.Errorf("--map %d=%s: %w", o.index, o.field, err)
		}
	}

	c.printPreview(header, dataRows, mapping)

	if !mapping.Mapped() {
		return errors.New("every column is ignored, map at least one with --map")
	}
	records := ingest.BuildRecords(dataRows, mapping)

	if !c.Yes {
		fmt.Fprintf(c.stdout, "\n%d records would replace the stored collection. Run again with --yes to write them.\n", len(records))
		return nil
	}

	replace := c.Replace
	if replace == nil {
		closeFn, dbReplace, err := c.databaseReplacer(ctx)
		if err != nil {
			return err
		}
		defer closeFn()
		replace = dbReplace
	}

	total := len(records)
	result, err := replace(ctx, records, func(inserted int) {
		fmt.Fprintf(c.stdout, "inserted %d/%d\n", inserted, total)
	})
	if result != nil {
		fmt.Fprintf(c.stdout, "deleted %d, inserted %d\n", result.Deleted, result.Inserted)
	}
	if err != nil {
		return fmt.Errorf("import failed, the collection may be partially replaced, fix the problem and run the import again: %w", err)
	}
	return nil
}

func (c *ImportCommand) databaseReplacer(ctx context.Context) (func(), ReplaceFunc, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.ValidateDatabase(); err != nil {
		return nil, nil, err
	}
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	repos := pgsql.NewRepositoryProvider(dbPool)
	importSvc := services.NewImportService(repos.RecordRepo, services.WithBatchPause(cfg.ImportBatchPause))

	// The service logs through the context logger.
	logger := c.logger
	return func() { database.ClosePgxPool(dbPool) },
		func(ctx context.Context, records []domain.Record, progress portssvc.ProgressFunc) (*domain.ReplaceResult, error) {
			if logger != nil {
				ctx = middleware.WithLogger(ctx, logger)
			}
			return importSvc.ReplaceRecords(ctx, records, progress)
		}, nil
}

func (c *ImportCommand) printPreview(header []string, rows [][]string, mapping domain.ColumnMapping) {
	fmt.Fprintf(c.stdout, "%s: %d columns, %d data rows\n\n", c.Path, len(header), len(rows))

	w := tabwriter.NewWriter(c.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COLUMN\tHEADER\tFIELD")
	for i, h := range header {
		fmt.Fprintf(w, "%d\t%s\t%s\n", i, h, mapping.FieldAt(i))
	}
	_ = w.Flush()

	if c.Preview <= 0 || len(rows) == 0 {
		return
	}
	fmt.Fprintln(c.stdout)
	w = tabwriter.NewWriter(c.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows[:min(c.Preview, len(rows))] {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()
}

type columnOverride struct {
	index int
	field domain.Field
}

// parseMapFlags reads INDEX=FIELD pairs. Field names are case-insensitive.
func parseMapFlags(values []string) ([]columnOverride, error) {
	out := make([]columnOverride, 0, len(values))
	for _, v := range values {
		idx, name, ok := strings.Cut(v, "=")
		if !ok {
			return nil, fmt.Errorf("--map %q: expected INDEX=FIELD", v)
		}
		index, err := strconv.Atoi(strings.TrimSpace(idx))
		if err != nil || index < 0 {
			return nil, fmt.Errorf("--map %q: column index must be a non-negative integer", v)
		}
		field, ok := domain.ParseField(name)
		if !ok {
			return nil, fmt.Errorf("--map %q: unknown field %q", v, strings.TrimSpace(name))
		}
		out = append(out, columnOverride{index: index, field: field})
	}
	return out, nil
}
