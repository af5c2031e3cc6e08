package timelineRepository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	contextPkg "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/context"
	"github.com/sirupsen/logrus"
)

type TimelineEntryDB struct {
	ID         string         `db:"id"`
	Emotion    string         `db:"emotion"`
	Confidence float64        `db:"confidence"`
	DetectedAt string         `db:"detected_at"`
	EntryDate  string         `db:"entry_date"`
	EntryTime  string         `db:"entry_time"`
	Hour       int            `db:"hour"`
	DayOfWeek  string         `db:"day_of_week"`
	Extra      sql.NullString `db:"extra"`
}

type sqlRepository struct {
	db      *sqlx.DB
	backend Backend
	log     *logrus.Logger
}

// NewSQL serves the sqlite and postgres backends; db must already be
// migrated.
func NewSQL(db *sqlx.DB, backend Backend, log *logrus.Logger) Repository {
	return &sqlRepository{db: db, backend: backend, log: log}
}

func (r *sqlRepository) Backend() Backend { return r.backend }

func (r *sqlRepository) Append(ctx context.Context, entry entity.TimelineEntry) error {
	requestID := contextPkg.GetRequestID(ctx)

	extra := sql.NullString{}
	if len(entry.Extra) > 0 {
		raw, err := json.Marshal(entry.Extra)
		if err != nil {
			return fmt.Errorf("encode extra: %w", err)
		}
		extra = sql.NullString{String: string(raw), Valid: true}
	}

	argsKV := map[string]interface{}{
		"id":          entry.ID,
		"emotion":     string(entry.Emotion),
		"confidence":  entry.Confidence,
		"detected_at": entry.Timestamp.Format(time.RFC3339Nano),
		"entry_date":  entry.Date,
		"entry_time":  entry.Time,
		"hour":        entry.Hour,
		"day_of_week": entry.DayOfWeek,
		"extra":       extra,
	}

	query, args, err := sqlx.Named(queryInsertEntry, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Append")
		return err
	}
	query = r.db.Rebind(query)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"backend":    r.backend,
			"error":      err.Error(),
		}).Error("Database error when appending timeline entry")
		return err
	}

	return nil
}

func (r *sqlRepository) ReadAll(ctx context.Context) ([]entity.TimelineEntry, error) {
	var rows []TimelineEntryDB
	if err := r.db.SelectContext(ctx, &rows, querySelectEntries); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"backend":    r.backend,
			"error":      err.Error(),
		}).Error("Database error when reading timeline")
		return nil, err
	}

	entries := make([]entity.TimelineEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *sqlRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, queryDeleteEntries); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"backend":    r.backend,
			"error":      err.Error(),
		}).Error("Database error when clearing timeline")
		return err
	}
	return nil
}

func (row TimelineEntryDB) toEntity() (entity.TimelineEntry, error) {
	ts, err := time.Parse(time.RFC3339Nano, row.DetectedAt)
	if err != nil {
		return entity.TimelineEntry{}, fmt.Errorf("entry %s: parse timestamp: %w", row.ID, err)
	}

	entry := entity.TimelineEntry{
		ID:         row.ID,
		Emotion:    entity.Category(row.Emotion),
		Confidence: row.Confidence,
		Timestamp:  ts,
		Date:       row.EntryDate,
		Time:       row.EntryTime,
		Hour:       row.Hour,
		DayOfWeek:  row.DayOfWeek,
	}
	if row.Extra.Valid && row.Extra.String != "" {
		if err := json.Unmarshal([]byte(row.Extra.String), &entry.Extra); err != nil {
			return entity.TimelineEntry{}, fmt.Errorf("entry %s: decode extra: %w", row.ID, err)
		}
	}
	return entry, nil
}
