package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dtnitsch/fake-news-detector/internal/common"
	"github.com/dtnitsch/fake-news-detector/models"
)

// Sample is one labelled article.
type Sample struct {
	SampleID  int64        `json:"sample_id"`
	Text      string       `json:"text"`
	Label     models.Label `json:"label"`
	Source    string       `json:"source,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// InsertSample stores a labelled text, returning the sample_id and whether a
// new row was created. Texts are deduplicated on their trimmed content hash.
func (db *DB) InsertSample(text string, label models.Label, source string) (int64, bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false, errors.New("sample text is empty")
	}
	if label != models.LabelFake && label != models.LabelReal {
		return 0, false, fmt.Errorf("invalid label %d", int(label))
	}
	hash := common.ContentHash([]byte(text))

	var existingID int64
	err := db.QueryRow("SELECT sample_id FROM samples WHERE content_hash = ?", hash).Scan(&existingID)
	if err == nil {
		return existingID, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, false, fmt.Errorf("failed to check existing sample: %w", err)
	}

	result, err := db.Exec(`
		INSERT INTO samples (content_hash, text, label, source)
		VALUES (?, ?, ?, ?)
	`, hash, text, int(label), source)
	if err != nil {
		return 0, false, fmt.Errorf("failed to insert sample: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, false, fmt.Errorf("failed to get sample ID: %w", err)
	}
	return id, true, nil
}

// SampleFilter narrows ListSamples. Zero values mean no restriction.
type SampleFilter struct {
	Label  *models.Label
	Source string
	Limit  int
}

// ListSamples returns samples in insertion order.
func (db *DB) ListSamples(filter SampleFilter) ([]Sample, error) {
	query := "SELECT sample_id, text, label, COALESCE(source, ''), created_at FROM samples WHERE 1=1"
	var args []interface{}
	if filter.Label != nil {
		query += " AND label = ?"
		args = append(args, int(*filter.Label))
	}
	if filter.Source != "" {
		query += " AND source = ?"
		args = append(args, filter.Source)
	}
	query += " ORDER BY sample_id"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list samples: %w", err)
	}
	defer rows.Close()

	var samples []Sample
	for rows.Next() {
		var s Sample
		var label int
		if err := rows.Scan(&s.SampleID, &s.Text, &label, &s.Source, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sample: %w", err)
		}
		s.Label = models.Label(label)
		samples = append(samples, s)
	}
	return samples, rows.Err()
}

// CountByLabel returns how many samples carry each label.
func (db *DB) CountByLabel() (map[models.Label]int, error) {
	rows, err := db.Query("SELECT label, COUNT(*) FROM samples GROUP BY label")
	if err != nil {
		return nil, fmt.Errorf("failed to count samples: %w", err)
	}
	defer rows.Close()

	counts := map[models.Label]int{models.LabelFake: 0, models.LabelReal: 0}
	for rows.Next() {
		var label, n int
		if err := rows.Scan(&label, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[models.Label(label)] = n
	}
	return counts, rows.Err()
}
