package cmd

import (
	"github.com/Samandar-Komilov/voidpdev/models"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Create or update the posts and projects tables.

Examples:
  voidpdev migrate                      # Apply the schema
  voidpdev migrate --report             # Compare models with live columns
  voidpdev migrate --generate ./query   # Also write gorm/gen query helpers`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().Bool("report", false, "print a model/column mismatch report instead of migrating")
	migrateCmd.Flags().String("generate", "", "directory to write generated query helpers to")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	db, err := openDB(cfg)
	if err != nil {
		return err
	}

	if report, _ := cmd.Flags().GetBool("report"); report {
		reports, err := models.ColumnReport(db)
		if err != nil {
			return err
		}
		models.PrintColumnReport(cmd.OutOrStdout(), reports)
		return nil
	}

	if err := models.Migrate(db); err != nil {
		return err
	}
	log.Info().Msg("Schema migrated")

	if outPath, _ := cmd.Flags().GetString("generate"); outPath != "" {
		models.GenerateQueries(db, outPath)
		log.Info().Str("path", outPath).Msg("Query helpers generated")
	}
	return nil
}
