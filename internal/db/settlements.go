package db

import (
	"context"
	"time"

	"github.com/jlyeo/sbiltbot/internal/split"
)

type Settlement struct {
	ID        int64     `json:"id"`
	ChannelID string    `json:"channel_id"`
	Payer     string    `json:"payer"`
	Payee     string    `json:"payee"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordSettlement stores the transfers of one settled bill.
func (db *DB) RecordSettlement(ctx context.Context, channelID string, transfers []split.Transfer) error {
	for _, t := range transfers {
		_, err := db.pool.Exec(ctx,
			"INSERT INTO settlements (channel_id, payer, payee, amount) VALUES ($1, $2, $3, $4)",
			channelID, t.From, t.To, t.Amount,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// ListSettlements returns the most recent recorded transfers for a channel.
func (db *DB) ListSettlements(ctx context.Context, channelID string, limit int) ([]Settlement, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		"SELECT id, channel_id, payer, payee, amount, created_at FROM settlements WHERE channel_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2",
		channelID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settlements []Settlement
	for rows.Next() {
		var s Settlement
		if err := rows.Scan(&s.ID, &s.ChannelID, &s.Payer, &s.Payee, &s.Amount, &s.CreatedAt); err != nil {
			return nil, err
		}
		settlements = append(settlements, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return settlements, nil
}
