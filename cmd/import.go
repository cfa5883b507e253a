package cmd

import (
	"fmt"
	"io"

	"github.com/Samandar-Komilov/voidpdev/database"
	"github.com/Samandar-Komilov/voidpdev/services"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Import Markdown posts from a directory",
	Long: `Import every *.md file below a directory as a blog post.

Front matter keys: title, slug, excerpt, tags, featured_image, published,
draft and date. Posts whose slug already exists are updated.

Examples:
  voidpdev import ./posts              # Create or update posts
  voidpdev import ./posts --dry-run    # Show what would happen`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().Bool("dry-run", false, "validate documents without writing")
}

func runImport(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	normalizer, err := newNormalizer(cfg)
	if err != nil {
		return err
	}
	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}

	repo := database.New(db).PostRepo()
	writer := services.NewPostWriter(repo, normalizer, newSanitizer(cfg))
	importer := services.NewImporter(writer, repo, normalizer, dryRun)

	results, err := importer.ImportDirectory(cmd.Context(), args[0])
	if printErr := printImportResults(cmd.OutOrStdout(), results); printErr != nil {
		return fmt.Errorf("print import summary: %w", printErr)
	}
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed to import", failed, len(results))
	}
	return nil
}

func printImportResults(w io.Writer, results []services.ImportResult) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No Markdown documents found")
		return err
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{Borders: tw.BorderNone}),
	)

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		outcome := r.Outcome
		if r.DryRun && r.Err == nil {
			outcome = "would be " + outcome
		}
		reason := ""
		if r.Err != nil {
			reason = r.Err.Error()
		}
		rows = append(rows, []string{r.Path, r.Slug, outcome, reason})
	}

	table.Header([]string{"File", "Slug", "Outcome", "Reason"})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
