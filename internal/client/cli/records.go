package cli

import (
	"context"
	"encoding/json"
	"time"

	"github.com/iudanet/jubeesync/internal/client/data"
	"github.com/iudanet/jubeesync/internal/models"
)

// newRecordID в put просит сгенерировать идентификатор
const newRecordID = "-"

func (c *Cli) runPut(ctx context.Context, collectionName, id string, pairs []string) error {
	collection, err := models.ParseCollection(collectionName)
	if err != nil {
		return err
	}
	patch, err := data.ParsePatch(pairs)
	if err != nil {
		return err
	}
	if id == newRecordID {
		id = ""
	}

	rec, err := c.records.Put(ctx, collection, id, patch)
	if err != nil {
		return err
	}

	c.io.Success("Saved %s (updated %s)", rec.Key(), rec.UpdatedTime().Format(time.DateTime))
	return nil
}

func (c *Cli) runShow(ctx context.Context, collectionName, id string) error {
	collection, err := models.ParseCollection(collectionName)
	if err != nil {
		return err
	}

	rec, err := c.records.Get(ctx, collection, id)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(c.io)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

func (c *Cli) runList(ctx context.Context, collectionName string) error {
	collection, err := models.ParseCollection(collectionName)
	if err != nil {
		return err
	}

	records, err := c.records.List(ctx, collection)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		c.io.Println("No records.")
		return nil
	}

	c.io.Printf("%-38s %-19s %s\n", "ID", "UPDATED", "LABEL")
	for _, rec := range records {
		c.io.Printf("%-38s %-19s %s\n", rec.ID, rec.UpdatedTime().Format(time.DateTime), rec.Label())
	}
	return nil
}
