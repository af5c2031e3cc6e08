package timelineRepository

const (
	queryInsertEntry = `
		INSERT INTO timeline_entries (
			id,
			emotion,
			confidence,
			detected_at,
			entry_date,
			entry_time,
			hour,
			day_of_week,
			extra
		) VALUES (
			:id,
			:emotion,
			:confidence,
			:detected_at,
			:entry_date,
			:entry_time,
			:hour,
			:day_of_week,
			:extra
		)
	`

	querySelectEntries = `
		SELECT
			id,
			emotion,
			confidence,
			detected_at,
			entry_date,
			entry_time,
			hour,
			day_of_week,
			extra
		FROM timeline_entries
		ORDER BY seq ASC
	`

	queryDeleteEntries = `DELETE FROM timeline_entries`
)
