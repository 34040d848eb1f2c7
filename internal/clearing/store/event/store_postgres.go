package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"clearview/internal/clearing/models"
	id "clearview/pkg/domain"
	"clearview/pkg/platform/sentinel"
	txcontext "clearview/pkg/platform/tx"
)

// Schema creates the clearing event table. seq is the insertion order and
// doubles as the tie-breaker for equal timestamps.
const Schema = `
CREATE TABLE IF NOT EXISTS clearing_event (
	seq            BIGSERIAL PRIMARY KEY,
	id             UUID        NOT NULL UNIQUE,
	item_id        BIGINT      NOT NULL,
	user_id        BIGINT      NOT NULL,
	user_name      TEXT        NOT NULL DEFAULT '',
	created_at     TIMESTAMPTZ NOT NULL,
	scope          TEXT        NOT NULL,
	decision_type  INTEGER     NOT NULL,
	origin         TEXT        NOT NULL,
	positive_ids   BIGINT[]    NOT NULL DEFAULT '{}',
	positive_names TEXT[]      NOT NULL DEFAULT '{}',
	negative_ids   BIGINT[]    NOT NULL DEFAULT '{}',
	negative_names TEXT[]      NOT NULL DEFAULT '{}'
);
CREATE INDEX IF NOT EXISTS clearing_event_item_idx ON clearing_event (item_id, created_at, seq);
`

const uniqueViolation = "23505"

// PostgresStore persists clearing events in PostgreSQL. Rows are only ever
// inserted; the sequence provides append atomicity across writers.
type PostgresStore struct {
	db    *sql.DB
	clock Clock
}

// PostgresOption configures a PostgresStore.
type PostgresOption func(*PostgresStore)

// WithPostgresClock sets the clock used for events without a timestamp.
func WithPostgresClock(clock Clock) PostgresOption {
	return func(s *PostgresStore) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func NewPostgres(db *sql.DB, opts ...PostgresOption) *PostgresStore {
	s := &PostgresStore{db: db, clock: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Migrate creates the table when missing.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("migrate clearing_event: %w", err)
	}
	return nil
}

type dbExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *PostgresStore) Append(ctx context.Context, e models.ClearingEvent) (models.ClearingEvent, error) {
	e, err := prepare(e, s.clock)
	if err != nil {
		return models.ClearingEvent{}, err
	}
	posIDs, posNames := splitRefs(e.Positive)
	negIDs, negNames := splitRefs(e.Negative)

	query := `
		INSERT INTO clearing_event (
			id, item_id, user_id, user_name, created_at, scope, decision_type, origin,
			positive_ids, positive_names, negative_ids, negative_names
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING seq
	`
	err = s.execer(ctx).QueryRowContext(ctx, query,
		uuid.UUID(e.ID),
		int64(e.ItemID),
		int64(e.UserID),
		e.UserName,
		e.Timestamp,
		string(e.Scope),
		int(e.Type),
		string(e.Origin),
		pq.Array(posIDs),
		pq.Array(posNames),
		pq.Array(negIDs),
		pq.Array(negNames),
	).Scan(&e.Seq)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return models.ClearingEvent{}, sentinel.ErrConflict
		}
		return models.ClearingEvent{}, fmt.Errorf("insert clearing event: %w", err)
	}
	return e, nil
}

func (s *PostgresStore) ListByItems(ctx context.Context, items []id.ItemID) ([]models.ClearingEvent, error) {
	if len(items) == 0 {
		return nil, nil
	}
	ids := make([]int64, len(items))
	for i, item := range items {
		ids[i] = int64(item)
	}

	query := `
		SELECT seq, id, item_id, user_id, user_name, created_at, scope, decision_type, origin,
		       positive_ids, positive_names, negative_ids, negative_names
		FROM clearing_event
		WHERE item_id = ANY($1)
		ORDER BY created_at, seq
	`
	rows, err := s.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("query clearing events: %w", err)
	}
	defer rows.Close()

	var out []models.ClearingEvent
	for rows.Next() {
		var (
			e                  models.ClearingEvent
			eventID            uuid.UUID
			itemID, userID     int64
			scope, origin      string
			decisionType       int
			posIDs, negIDs     pq.Int64Array
			posNames, negNames pq.StringArray
		)
		if err := rows.Scan(&e.Seq, &eventID, &itemID, &userID, &e.UserName, &e.Timestamp,
			&scope, &decisionType, &origin, &posIDs, &posNames, &negIDs, &negNames); err != nil {
			return nil, fmt.Errorf("scan clearing event: %w", err)
		}
		e.ID = id.EventID(eventID)
		e.ItemID = id.ItemID(itemID)
		e.UserID = id.UserID(userID)
		e.Scope = models.Scope(scope)
		e.Type = models.DecisionType(decisionType)
		e.Origin = models.EventOrigin(origin)
		if e.Positive, err = joinRefs(posIDs, posNames); err != nil {
			return nil, err
		}
		if e.Negative, err = joinRefs(negIDs, negNames); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate clearing events: %w", err)
	}
	return out, nil
}

func splitRefs(refs []models.LicenseRef) ([]int64, []string) {
	ids := make([]int64, len(refs))
	names := make([]string, len(refs))
	for i, ref := range refs {
		ids[i] = int64(ref.ID)
		names[i] = ref.ShortName
	}
	return ids, names
}

func joinRefs(ids []int64, names []string) ([]models.LicenseRef, error) {
	if len(ids) != len(names) {
		return nil, fmt.Errorf("license arrays differ in length (%d ids, %d names): %w",
			len(ids), len(names), sentinel.ErrInvalidState)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	refs := make([]models.LicenseRef, len(ids))
	for i := range ids {
		refs[i] = models.LicenseRef{ID: id.LicenseID(ids[i]), ShortName: names[i]}
	}
	return refs, nil
}
