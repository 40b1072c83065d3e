package cmd

import (
	"log"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/openswoop/fourplan/pkg/database"
	"github.com/openswoop/fourplan/pkg/plan"
	"github.com/openswoop/fourplan/pkg/report"
	"github.com/openswoop/fourplan/pkg/scrape"
	"github.com/spf13/cobra"
)

var dbFile = "/fourplan/fourplan.db"

var outDir string
var dbPath string
var describe bool
var dump bool

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the plan and write CSV reports",
	Long: `Builds the course plan and writes schedule.csv, requirements.csv,
summary.csv and week.csv. The results are also inserted into a local
SQLite database.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPlan(cmd.Context())
		if err != nil {
			return err
		}

		// If the debug flag is set, dump the plan and exit early
		if dump {
			spew.Dump(p)
			return nil
		}

		var descriptions map[string]string
		if describe {
			descriptions, err = scrape.GetDescriptions(c, plan.CatalogSearchUrl, p.Courses)
			if err != nil {
				return err
			}
			log.Println("Found", len(descriptions), "catalog descriptions")
		}

		// Save all the data to the database
		if dbPath == "" {
			userCacheDir, _ := os.UserCacheDir()
			dbPath = userCacheDir + dbFile
		}
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return err
		}
		sqlite, err := database.NewSqlite(dbPath)
		if err != nil {
			return err
		}
		defer sqlite.Close()
		if err := sqlite.Save(database.NewRows(p)); err != nil {
			return err
		}
		log.Println("Saved to database", dbPath)

		// Write to CSV
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}
		if err := report.WritePlan(outDir, p, descriptions); err != nil {
			return err
		}
		log.Println("Wrote reports to", outDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(&outDir, "out", ".", "Directory for the CSV reports")
	buildCmd.Flags().StringVar(&dbPath, "db", "", "SQLite file (default: user cache dir)")
	buildCmd.Flags().BoolVar(&describe, "describe", false, "Look up course descriptions in the catalog (default: false)")
	buildCmd.Flags().BoolVar(&dump, "debug", false, "Dump the assembled plan instead of saving it (default: false)")
}
