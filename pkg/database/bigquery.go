package database

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/googleapi"
)

type BigQuery struct {
	ctx     context.Context
	client  *bigquery.Client
	dataset *bigquery.Dataset
}

func NewBigQuery(ctx context.Context, projectID, datasetID string) (BigQuery, error) {
	var bq BigQuery

	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return bq, fmt.Errorf("failed to create client: %w", err)
	}

	dataset := client.Dataset(datasetID)
	if err := dataset.Create(ctx, nil); err != nil {
		if !isDuplicateError(err) {
			return bq, fmt.Errorf("failed to create dataset: %w", err)
		}
	}

	bq = BigQuery{ctx, client, dataset}
	return bq, nil
}

func (bq BigQuery) SaveCourses(courses []CourseRow) error {
	return bq.insert(CourseRow{}, "courses", courses, "t.id = s.id", `
		WHEN MATCHED THEN
		  UPDATE
		    SET catalog_id = s.catalog_id,
		        course = s.course,
		        title = s.title,
		        credits = s.credits,
		        year = s.year,
		        semester = s.semester,
		        season = s.season,
		        requirements = s.requirements,
		        times = s.times`)
}

func (bq BigQuery) SaveAssignments(assignments []AssignmentRow) error {
	return bq.insert(AssignmentRow{}, "assignments", assignments,
		"t.category = s.category AND t.slot_index = s.slot_index", `
		WHEN MATCHED THEN
		  UPDATE SET course_id = s.course_id`)
}

func (bq BigQuery) SaveMeetings(meetings []MeetingRow) error {
	return bq.insert(MeetingRow{}, "meetings", meetings,
		"t.course_id = s.course_id AND t.meeting_index = s.meeting_index", `
		WHEN MATCHED THEN
		  UPDATE
		    SET year = s.year,
		        semester = s.semester,
		        day = s.day,
		        start_time = s.start_time,
		        end_time = s.end_time,
		        grid_column = s.grid_column,
		        start_row = s.start_row,
		        end_row = s.end_row,
		        color = s.color`)
}

func (bq BigQuery) insert(st interface{}, tableName string, data interface{}, onClause, whenClause string) error {
	// Infer the table schema
	schema, err := bigquery.InferSchema(st)
	if err != nil {
		return fmt.Errorf("failed to infer schema: %w", err)
	}

	// Get a reference to the table
	table := bq.dataset.Table(tableName)
	if err := table.Create(bq.ctx, &bigquery.TableMetadata{Schema: schema}); err != nil {
		if !isDuplicateError(err) {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	// Uses a different arrivals table each time so streaming buffers don't collide
	tempName := tableName + "_" + strconv.Itoa(int(time.Now().Unix()))
	newArrivals := bq.dataset.Table(tempName)
	if err := newArrivals.Create(bq.ctx, &bigquery.TableMetadata{
		Schema:         schema,
		ExpirationTime: time.Now().Add(24 * time.Hour),
	}); err != nil {
		if !isDuplicateError(err) {
			return fmt.Errorf("failed to create arrivals table: %w", err)
		}
	}

	// Upload data
	u := newArrivals.Inserter()
	if err := u.Put(bq.ctx, data); err != nil {
		return fmt.Errorf("failed to insert rows: %w", err)
	}

	// Merge data; rows the plan no longer has are removed
	q := bq.client.Query(fmt.Sprintf(`
		MERGE %s.%s t
		USING %s.%s s
		ON %s
		%s
		WHEN NOT MATCHED THEN
		  INSERT ROW
		WHEN NOT MATCHED BY SOURCE THEN
		  DELETE`, bq.dataset.DatasetID, tableName, bq.dataset.DatasetID, tempName, onClause, whenClause))
	job, err := q.Run(bq.ctx)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	status, err := job.Wait(bq.ctx)
	if err != nil {
		return fmt.Errorf("failed to wait for merge: %w", err)
	}
	return status.Err()
}

func (bq BigQuery) Close() error {
	return bq.client.Close()
}

func isDuplicateError(err error) bool {
	var e *googleapi.Error
	if errors.As(err, &e) {
		return e.Code == 409
	}
	return false
}
