package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/forage/internal/cli"
	"github.com/Veraticus/forage/internal/common"
	"github.com/Veraticus/forage/internal/config"
	"github.com/Veraticus/forage/internal/csvimport"
	"github.com/Veraticus/forage/internal/spreadsheet"
	"github.com/Veraticus/forage/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <recipes|plants> <file>",
		Short: "Import recipes or plants from a CSV file",
		Long: `Read a CSV document (or the first sheet of an XLSX workbook) and add its
records to the catalog.

Rows that fail validation are reported and left out. Records whose title
(recipes) or name or latin name (plants) matches one already stored are
duplicates: they are skipped, replaced or imported under a new name
according to --on-duplicate. With --on-duplicate=ask each duplicate is
reviewed interactively first. All writes happen in one transaction.

Blank lines are skipped, and row numbers in error messages count only
the header and the non-blank rows. Line breaks inside workbook cells
become spaces.`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: entityKinds,
		RunE:      runImport,
	}

	cmd.Flags().String("on-duplicate", config.DefaultOnDuplicate, "what to do with duplicates (skip, replace, rename, ask)")
	cmd.Flags().String("reviewer", config.DefaultReviewer, "interactive reviewer for --on-duplicate=ask (prompt, tui)")
	cmd.Flags().Int64("max-bytes", config.DefaultMaxBytes, "reject files larger than this many bytes")
	cmd.Flags().Bool("dry-run", false, "Show what would be imported without saving")

	// Bind to viper
	_ = viper.BindPFlag(config.KeyOnDuplicate, cmd.Flags().Lookup("on-duplicate"))
	_ = viper.BindPFlag(config.KeyReviewer, cmd.Flags().Lookup("reviewer"))
	_ = viper.BindPFlag(config.KeyMaxBytes, cmd.Flags().Lookup("max-bytes"))

	return cmd
}

// importOptions controls one run of importDocument.
type importOptions struct {
	in          io.Reader
	out         io.Writer
	onDuplicate string
	reviewer    string
	maxBytes    int64
	dryRun      bool
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	kind, err := parseEntityKind(args[0])
	if err != nil {
		return err
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	doc, err := openDocument(args[1])
	if err != nil {
		return err
	}
	defer func() { _ = doc.Close() }()

	store, err := initStorage(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeStorage(store)

	opts := importOptions{
		in:          cmd.InOrStdin(),
		out:         cmd.OutOrStdout(),
		onDuplicate: cfg.Import.OnDuplicate,
		reviewer:    cfg.Import.Reviewer,
		maxBytes:    cfg.Import.MaxBytes,
		dryRun:      dryRun,
	}

	interruptHandler := cli.NewInterruptHandler(opts.out)
	ctx := interruptHandler.HandleInterrupts(cmd.Context(), opts.onDuplicate == config.OnDuplicateAsk)
	defer interruptHandler.Stop()

	_, _ = fmt.Fprintln(opts.out, cli.FormatTitle(fmt.Sprintf("Importing %s from %s", kind, filepath.Base(args[1]))))

	switch kind {
	case kindRecipes:
		_, err = importDocument(ctx, recipeEntity(store), doc, opts)
	case kindPlants:
		_, err = importDocument(ctx, plantEntity(store), doc, opts)
	}
	if err != nil && (interruptHandler.WasInterrupted() || isInterrupted(err)) {
		return common.NewUserError("import interrupted, nothing was written", err)
	}
	return err
}

// openDocument opens path as CSV text. Workbooks (.xlsx) are converted from
// their first sheet.
func openDocument(path string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Clean(path)) // #nosec G304 -- user-provided import file
	if err != nil {
		return nil, common.NewUserError("cannot open "+path, err)
	}
	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return f, nil
	}
	defer func() { _ = f.Close() }()

	rows, err := spreadsheet.ReadRows(f, "")
	if err != nil {
		return nil, common.NewUserError("cannot read workbook "+path, err)
	}
	return io.NopCloser(strings.NewReader(workbookDocument(rows))), nil
}

// cellBreaks turns line breaks typed inside a cell into spaces, since a CSV
// record never spans lines.
var cellBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// workbookDocument serializes sheet rows as CSV text, one line per row.
func workbookDocument(rows [][]string) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = cellBreaks.Replace(cell)
		}
		lines[i] = csvimport.FormatRow(cells)
	}
	return strings.Join(lines, "\n")
}

// importDocument runs the whole pipeline for one document: parse, detect
// duplicates, review, resolve and commit.
func importDocument[T any](ctx context.Context, e entity[T], r io.Reader, opts importOptions) (csvimport.Summary, error) {
	parser := csvimport.NewParser(e.schema,
		csvimport.WithMaxBytes(opts.maxBytes),
		csvimport.WithLogger(slog.Default()),
	)

	result, err := parser.ParseReader(ctx, r)
	if err != nil {
		return csvimport.Summary{}, err
	}
	printParseResult(opts.out, result)

	if result.HasFatal() {
		return csvimport.Summary{}, common.NewUserError(
			"import rejected: "+strings.Join(result.Errors, "; "), common.ErrImportRejected)
	}
	if len(result.Records) == 0 {
		_, _ = fmt.Fprintln(opts.out, cli.FormatWarning("Nothing to import"))
		return csvimport.Summary{}, nil
	}

	existing, err := e.list(ctx)
	if err != nil {
		return csvimport.Summary{}, fmt.Errorf("failed to load existing %ss: %w", e.name, err)
	}

	fresh, conflicts := csvimport.DetectConflicts(result.Records, existing, e.schema)
	if len(conflicts) > 0 {
		_, _ = fmt.Fprintln(opts.out, cli.FormatInfo(fmt.Sprintf("%d of %d %ss already exist", len(conflicts), len(result.Records), e.name)))
	}

	reviewer, err := newReviewer(e, opts)
	if err != nil {
		return csvimport.Summary{}, err
	}
	if err := reviewer.Review(ctx, conflicts); err != nil {
		return csvimport.Summary{}, fmt.Errorf("failed to review duplicates: %w", err)
	}

	plan := csvimport.Resolve(fresh, conflicts, e.schema)

	if opts.dryRun {
		summary := csvimport.Summary{Added: len(plan.Inserts), Replaced: len(plan.Updates), Skipped: plan.Skipped}
		_, _ = fmt.Fprintln(opts.out, cli.RenderBox("Dry run, nothing written", summary.String()))
		return summary, nil
	}

	summary, err := csvimport.Commit(ctx, plan, e.commit)
	if err != nil {
		return csvimport.Summary{}, err
	}

	slog.Info("Import finished",
		"entity", e.name,
		"rows", result.TotalRows,
		"failed_rows", result.FailedRows(),
		"added", summary.Added,
		"replaced", summary.Replaced,
		"skipped", summary.Skipped)

	_, _ = fmt.Fprintln(opts.out, cli.RenderBox("Import complete", cli.FormatSuccess(summary.String())))
	return summary, nil
}

// newReviewer picks the conflict reviewer for opts.onDuplicate.
func newReviewer[T any](e entity[T], opts importOptions) (csvimport.Reviewer[T], error) {
	if opts.onDuplicate != config.OnDuplicateAsk {
		resolution, err := csvimport.ParseResolution(opts.onDuplicate)
		if err != nil {
			return nil, common.NewUserError("invalid --on-duplicate value", err)
		}
		return csvimport.StaticReviewer[T]{Resolution: resolution}, nil
	}

	switch opts.reviewer {
	case "tui":
		return tui.NewReviewer(e.name, e.describe), nil
	case "prompt", "":
		return cli.NewConflictPrompter(opts.in, opts.out, e.name, e.describe), nil
	default:
		return nil, common.NewUserError(fmt.Sprintf("unknown reviewer %q", opts.reviewer), common.ErrInvalidConfig)
	}
}

func printParseResult[T any](w io.Writer, result *csvimport.Result[T]) {
	for _, warning := range result.Warnings {
		_, _ = fmt.Fprintln(w, cli.FormatWarning(warning))
	}
	for _, msg := range result.Errors {
		_, _ = fmt.Fprintln(w, cli.FormatError(msg))
	}
	if !result.HasFatal() {
		_, _ = fmt.Fprintln(w, cli.FormatInfo(fmt.Sprintf("Read %d of %d rows", result.SuccessfulRows, result.TotalRows)))
	}
}

// isInterrupted reports whether err came from a canceled review or context.
func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, cli.ErrInputCancelled) || errors.Is(err, tui.ErrReviewAborted)
}
