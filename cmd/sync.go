package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"cloud.google.com/go/pubsub"
	"github.com/openswoop/fourplan/pkg/database"
	"github.com/spf13/cobra"
)

const (
	projectID = "syllabank-4e5b9"
	datasetID = "fourplan"
	topicID   = "plan-refreshed"
)

var dryRun bool

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the plan to BigQuery",
	Long: `Builds the course plan and merges its courses, requirement slots
and weekly meetings into BigQuery, then announces the refresh on
Pub/Sub.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		p, err := loadPlan(ctx)
		if err != nil {
			return err
		}
		rows := database.NewRows(p)

		// Insert (merge) the courses, assignments and meetings
		if !dryRun {
			bq, err := database.NewBigQuery(ctx, projectID, datasetID)
			if err != nil {
				return fmt.Errorf("failed to connect to bigquery: %w", err)
			}
			defer bq.Close()
			if err := database.SaveRows(bq, rows); err != nil {
				return fmt.Errorf("failed to sync plan: %w", err)
			}
		} else {
			fmt.Println("Dry run: data will not be inserted")
		}

		return publish(ctx, struct {
			Courses int  `json:"courses"`
			Credits int  `json:"credits"`
			DryRun  bool `json:"dryRun"`
		}{p.Requirements.Totals.Grand.Courses, p.Requirements.Totals.Grand.Credits, dryRun})
	},
}

func publish(ctx context.Context, event interface{}) error {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	msg, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	topic := client.Topic(topicID)
	defer topic.Stop()
	res := topic.Publish(ctx, &pubsub.Message{Data: msg})
	if _, err := res.Get(ctx); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	log.Println("Published", topicID)
	return nil
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Run without modifying the database (default: false)")
}
