package readingRepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/vbautistacode/etheria/internal/domain"
	"github.com/vbautistacode/etheria/internal/ports/persistence"
	ports "github.com/vbautistacode/etheria/internal/ports/repository"
)

type readingColumns struct {
	TableName      string
	ID             string
	PersonName     string
	BirthDate      string
	BirthTime      string
	BirthPlace     string
	Latitude       string
	Longitude      string
	Report         string
	ChartObjectKey string
	Narrative      string
	CreatedAt      string
}

type Repository struct {
	db      persistence.Transactional
	Log     *slog.Logger
	columns readingColumns
}

func New(db persistence.Transactional, log *slog.Logger) ports.ReadingRepo {
	cols := readingColumns{
		TableName:      "readings",
		ID:             "id",
		PersonName:     "person_name",
		BirthDate:      "birth_date",
		BirthTime:      "birth_time",
		BirthPlace:     "birth_place",
		Latitude:       "latitude",
		Longitude:      "longitude",
		Report:         "report",
		ChartObjectKey: "chart_object_key",
		Narrative:      "narrative",
		CreatedAt:      "created_at",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// readingRow mirrors the readings table; the report is stored as jsonb.
type readingRow struct {
	ID             uuid.UUID       `db:"id"`
	PersonName     string          `db:"person_name"`
	BirthDate      time.Time       `db:"birth_date"`
	BirthTime      *time.Time      `db:"birth_time"`
	BirthPlace     *string         `db:"birth_place"`
	Latitude       *float64        `db:"latitude"`
	Longitude      *float64        `db:"longitude"`
	Report         json.RawMessage `db:"report"`
	ChartObjectKey *string         `db:"chart_object_key"`
	Narrative      *string         `db:"narrative"`
	CreatedAt      time.Time       `db:"created_at"`
}

func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		r.columns.ID,
		r.columns.PersonName,
		r.columns.BirthDate,
		r.columns.BirthTime,
		r.columns.BirthPlace,
		r.columns.Latitude,
		r.columns.Longitude,
		r.columns.Report,
		r.columns.ChartObjectKey,
		r.columns.Narrative,
		r.columns.CreatedAt)
}

func (r *Repository) toRow(reading *domain.Reading) (*readingRow, error) {
	row := &readingRow{
		ID:             reading.ID,
		PersonName:     reading.PersonName,
		BirthDate:      reading.BirthDate,
		BirthTime:      reading.BirthTime,
		BirthPlace:     reading.BirthPlace,
		Latitude:       reading.Latitude,
		Longitude:      reading.Longitude,
		ChartObjectKey: reading.ChartObjectKey,
		Narrative:      reading.Narrative,
		CreatedAt:      reading.CreatedAt,
	}
	if reading.Report != nil {
		payload, err := json.Marshal(reading.Report)
		if err != nil {
			return nil, fmt.Errorf("marshal report: %w", err)
		}
		row.Report = payload
	}
	return row, nil
}

func (r *Repository) fromRow(row *readingRow) (*domain.Reading, error) {
	reading := &domain.Reading{
		ID:             row.ID,
		PersonName:     row.PersonName,
		BirthDate:      row.BirthDate,
		BirthTime:      row.BirthTime,
		BirthPlace:     row.BirthPlace,
		Latitude:       row.Latitude,
		Longitude:      row.Longitude,
		ChartObjectKey: row.ChartObjectKey,
		Narrative:      row.Narrative,
		CreatedAt:      row.CreatedAt,
	}
	if len(row.Report) > 0 {
		var report domain.ReadingReport
		if err := json.Unmarshal(row.Report, &report); err != nil {
			return nil, fmt.Errorf("unmarshal report: %w", err)
		}
		reading.Report = &report
	}
	return reading, nil
}

// Create stores a new reading.
func (r *Repository) Create(ctx context.Context, reading *domain.Reading) error {
	return r.create(ctx, r.db, reading, "")
}

func (r *Repository) create(ctx context.Context, db persistence.Persistence, reading *domain.Reading, suffix string) error {
	row, err := r.toRow(reading)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		r.columns.TableName,
		r.allColumns())
	err = db.Exec(ctx, query,
		row.ID, row.PersonName, row.BirthDate, row.BirthTime, row.BirthPlace,
		row.Latitude, row.Longitude, row.Report, row.ChartObjectKey, row.Narrative, row.CreatedAt)
	if err != nil {
		r.Log.Error("failed to create reading"+suffix, "error", err, "reading_id", reading.ID, "person_name", reading.PersonName)
		return fmt.Errorf("failed to create reading: %w", err)
	}
	r.Log.Debug("reading created successfully"+suffix, "reading_id", reading.ID, "person_name", reading.PersonName)
	return nil
}

// GetByID loads one reading by its id.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reading, error) {
	var row readingRow
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.ID)
	err := r.db.Get(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Warn("reading not found", "reading_id", id)
			return nil, domain.ErrReadingNotFound
		}
		r.Log.Error("failed to get reading", "error", err, "reading_id", id)
		return nil, fmt.Errorf("failed to get reading: %w", err)
	}
	return r.fromRow(&row)
}

// ListByName returns the most recent readings for a person, newest first.
func (r *Repository) ListByName(ctx context.Context, name string, limit int) ([]domain.Reading, error) {
	var rows []readingRow
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE LOWER(%s) = LOWER($1) ORDER BY %s DESC LIMIT $2`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.PersonName,
		r.columns.CreatedAt)
	err := r.db.Select(ctx, &rows, query, name, limit)
	if err != nil {
		r.Log.Error("failed to list readings by name", "error", err, "person_name", name)
		return nil, fmt.Errorf("failed to list readings by name: %w", err)
	}
	return r.fromRows(rows)
}

// ListRecent returns the latest readings across all persons.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]domain.Reading, error) {
	var rows []readingRow
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC LIMIT $1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.CreatedAt)
	err := r.db.Select(ctx, &rows, query, limit)
	if err != nil {
		r.Log.Error("failed to list recent readings", "error", err)
		return nil, fmt.Errorf("failed to list recent readings: %w", err)
	}
	return r.fromRows(rows)
}

func (r *Repository) fromRows(rows []readingRow) ([]domain.Reading, error) {
	readings := make([]domain.Reading, 0, len(rows))
	for i := range rows {
		reading, err := r.fromRow(&rows[i])
		if err != nil {
			return nil, err
		}
		readings = append(readings, *reading)
	}
	return readings, nil
}

// SetNarrative attaches the generated narrative to a stored reading.
func (r *Repository) SetNarrative(ctx context.Context, id uuid.UUID, narrative string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE %s = $2`,
		r.columns.TableName,
		r.columns.Narrative,
		r.columns.ID)
	if err := r.db.Exec(ctx, query, narrative, id); err != nil {
		r.Log.Error("failed to set narrative", "error", err, "reading_id", id)
		return fmt.Errorf("failed to set narrative: %w", err)
	}
	return nil
}

// SetChartObjectKey records the stored chart SVG object key.
func (r *Repository) SetChartObjectKey(ctx context.Context, id uuid.UUID, key string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE %s = $2`,
		r.columns.TableName,
		r.columns.ChartObjectKey,
		r.columns.ID)
	if err := r.db.Exec(ctx, query, key, id); err != nil {
		r.Log.Error("failed to set chart object key", "error", err, "reading_id", id)
		return fmt.Errorf("failed to set chart object key: %w", err)
	}
	return nil
}

// BeginTx explicitly opens a transaction.
func (r *Repository) BeginTx(ctx context.Context) (persistence.Tx, error) {
	return r.db.BeginTx(ctx)
}

// WithTransaction runs fn inside a transaction with automatic commit/rollback.
func (r *Repository) WithTransaction(ctx context.Context, fn func(tx persistence.Persistence) error) error {
	return r.db.WithTransaction(ctx, fn)
}

// CreateTx stores a reading inside an open transaction.
func (r *Repository) CreateTx(ctx context.Context, tx persistence.Persistence, reading *domain.Reading) error {
	return r.create(ctx, tx, reading, " in transaction")
}
