// Package db keeps the practice log: one metadata row per saved recording,
// stored in a local DynamoDB table. The recording path itself never depends
// on this; a missing endpoint is a reported error, not a crash.
package db

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Dev4057/NoteFlow/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

const tableName = "noteflow-practice-log"

func getEndpoint() string {
	if ep := os.Getenv("NOTEFLOW_DB_ENDPOINT"); ep != "" {
		return ep
	}
	return "http://localhost:8000"
}

func newClient() (*dynamodb.DynamoDB, error) {
	endpoint := getEndpoint()
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create a DynamoDB session: %w", err)
	}
	return dynamodb.New(sess), nil
}

// PutSession appends one row to the practice log.
func PutSession(s model.PracticeSession) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	item := map[string]*dynamodb.AttributeValue{
		"PK":        {S: aws.String(s.Id)},
		"Device":    {S: aws.String(s.Device)},
		"Date":      {S: aws.String(s.Date)},
		"NoteCount": {N: aws.String(strconv.Itoa(s.NoteCount))},
		"Duration":  {N: aws.String(strconv.FormatFloat(s.Duration, 'f', 3, 64))},
	}
	_, err = client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("could not write practice session: %w", err)
	}
	return nil
}

// ListSessions returns every row in the practice log.
func ListSessions() ([]model.PracticeSession, error) {
	client, err := newClient()
	if err != nil {
		return nil, err
	}

	out, err := client.Scan(&dynamodb.ScanInput{
		TableName: aws.String(tableName),
	})
	if err != nil {
		return nil, fmt.Errorf("could not read the practice log: %w", err)
	}

	var res []model.PracticeSession
	for _, item := range out.Items {
		var s model.PracticeSession
		if v := item["PK"]; v != nil && v.S != nil {
			s.Id = *v.S
		}
		if v := item["Device"]; v != nil && v.S != nil {
			s.Device = *v.S
		}
		if v := item["Date"]; v != nil && v.S != nil {
			s.Date = *v.S
		}
		if v := item["NoteCount"]; v != nil && v.N != nil {
			count, _ := strconv.Atoi(*v.N)
			s.NoteCount = count
		}
		if v := item["Duration"]; v != nil && v.N != nil {
			s.Duration, _ = strconv.ParseFloat(*v.N, 64)
		}
		res = append(res, s)
	}
	return res, nil
}
