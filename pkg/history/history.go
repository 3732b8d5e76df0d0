// Package history persists planned rounds so a bench operator can
// review what the robot decided and why.
package history

import (
	"cardbot-server/pkg/db"
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const roundColumns = `
rounds.uuid,
rounds.controller,
rounds.hand,
rounds.mode,
rounds.hand_name,
rounds.discard_slots,
rounds.action_count,
rounds.created`

// Record is a row in the `rounds` table
type Record struct {
	UUID         string    `json:"uuid"`
	Controller   string    `json:"controller"`
	Hand         string    `json:"hand"`
	Mode         string    `json:"mode"`
	HandName     string    `json:"handName"`
	DiscardSlots []int64   `json:"discardSlots"`
	ActionCount  int       `json:"actionCount"`
	Created      time.Time `json:"created"`
}

func getRecordByRow(row db.Scanner) (*Record, error) {
	var record Record
	if err := row.Scan(&record.UUID, &record.Controller, &record.Hand, &record.Mode, &record.HandName, pq.Array(&record.DiscardSlots), &record.ActionCount, &record.Created); err != nil {
		return nil, err
	}

	return &record, nil
}

// Create inserts a new round record
func Create(ctx context.Context, controller, hand, mode, handName string, discardSlots []int, actionCount int) (*Record, error) {
	slots := make([]int64, len(discardSlots))
	for i, slot := range discardSlots {
		slots[i] = int64(slot)
	}

	const query = `
INSERT INTO rounds (uuid, controller, hand, mode, hand_name, discard_slots, action_count)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + roundColumns

	row := db.Instance().QueryRowContext(ctx, query, uuid.New().String(), controller, hand, mode, handName, pq.Array(slots), actionCount)
	return getRecordByRow(row)
}

// GetByUUID returns the round record with the given UUID
func GetByUUID(ctx context.Context, u string) (*Record, error) {
	const query = `
SELECT ` + roundColumns + `
FROM rounds
WHERE uuid = $1`

	row := db.Instance().QueryRowContext(ctx, query, u)
	return getRecordByRow(row)
}

// Get returns round records, most recent first
func Get(ctx context.Context, offset int64, limit int) ([]*Record, error) {
	const query = `
SELECT ` + roundColumns + `
FROM rounds
ORDER BY rounds.id DESC
OFFSET $1
LIMIT $2`

	return getRecords(db.Instance().QueryContext(ctx, query, offset, limit))
}

// GetByController returns the controller's round records, most recent first
func GetByController(ctx context.Context, controller string, offset int64, limit int) ([]*Record, error) {
	const query = `
SELECT ` + roundColumns + `
FROM rounds
WHERE controller = $1
ORDER BY rounds.id DESC
OFFSET $2
LIMIT $3`

	return getRecords(db.Instance().QueryContext(ctx, query, controller, offset, limit))
}

func getRecords(rows *sql.Rows, err error) ([]*Record, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*Record, 0)
	for rows.Next() {
		record, err := getRecordByRow(rows)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, nil
}
