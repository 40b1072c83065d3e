package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gocolly/colly/v2"
	"github.com/openswoop/fourplan/pkg/app"
	"github.com/openswoop/fourplan/pkg/scrape"
	"github.com/spf13/cobra"
)

var c *colly.Collector

var cacheDir = "/fourplan/web-cache"
var noCache bool
var dataUrl string
var startYear int

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fourplan",
	Short: "Build a four-year course plan from its JSON documents",
	Long: `Loads requirements.json and courses.json, fills the degree
requirements, lays out the weekly schedule of every semester and
exports the result as CSV, SQLite or BigQuery tables.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initColly)

	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "Bypass the web cache (default: false)")
	rootCmd.PersistentFlags().StringVar(&dataUrl, "data", scrape.DefaultDataUrl, "URL or directory holding requirements.json and courses.json")
	rootCmd.PersistentFlags().IntVar(&startYear, "start-year", app.DefaultStartYear, "Calendar year of the first fall semester")
}

func initColly() {
	c = colly.NewCollector()
	c.AllowURLRevisit = true
	if !noCache {
		userCacheDir, _ := os.UserCacheDir()
		c.CacheDir = userCacheDir + cacheDir
	}
}

// loadPlan fetches both documents and builds the plan.
func loadPlan(ctx context.Context) (*app.Plan, error) {
	docs, err := scrape.FetchDocuments(ctx, c, dataUrl)
	if err != nil {
		return nil, err
	}
	log.Println("Loaded", scrape.RequirementsFile, "and", scrape.CoursesFile, "from", dataUrl)

	p, err := app.Build(docs, startYear)
	if err != nil {
		return nil, err
	}
	log.Println("Found", len(p.Courses), "courses")
	return p, nil
}
