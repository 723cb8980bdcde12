// Package repo contains all database access logic for the Roteiros API.
// No business logic lives here — only SQL and type mapping.
//
// Itineraries and activities are persisted together: an activity row never
// changes hands between itineraries, so every write that touches activities
// runs inside the same transaction as its parent itinerary write.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/rsilveira/roteiros-api/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup. Begin on a pgx.Tx opens a
// savepoint, so the nested transactions used by Create and Replace still work
// under test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// ItineraryRepo defines the persistence operations for itineraries and their
// owned activities. The service layer depends on this interface, not the
// concrete Postgres implementation, which allows the service to be unit-tested
// with a mock.
//
// Every operation that reads or writes a specific itinerary is scoped by
// ownerID in its WHERE clause. A row owned by someone else is therefore
// indistinguishable from a missing row — both yield domain.ErrNotFound.
type ItineraryRepo interface {
	// Create inserts a new itinerary and all its activities in one transaction
	// and returns the persisted aggregate (with DB-generated ids and timestamps).
	Create(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error)

	// ListByOwner returns all itineraries owned by ownerID, activities
	// populated, ordered by created_at descending.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Itinerary, error)

	// Replace overwrites the scalar fields of an existing itinerary and fully
	// replaces its activity collection (delete all, insert the new list), all
	// in one transaction. Returns domain.ErrNotFound if no itinerary with that
	// id exists under that owner.
	Replace(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error)

	// Delete removes an itinerary by id, scoped to ownerID. Activities are
	// removed by the ON DELETE CASCADE constraint. Returns domain.ErrNotFound
	// if no itinerary with that id exists under that owner.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// pgItineraryRepo is the Postgres implementation of ItineraryRepo.
type pgItineraryRepo struct {
	db db
}

// NewItineraryRepo constructs an ItineraryRepo backed by the provided db.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewItineraryRepo(db db) ItineraryRepo {
	return &pgItineraryRepo{db: db}
}

// Create inserts the itinerary row and its activity rows in one transaction.
func (r *pgItineraryRepo) Create(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error) {
	const q = `
		INSERT INTO itineraries (owner_id, destination, start_date, end_date, budget, notes)
		VALUES (@owner_id, @destination, @start_date, @end_date, @budget, @notes)
		RETURNING id, owner_id, destination, start_date, end_date, budget, notes, created_at, updated_at`

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.Create: begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck — no-op after commit

	args := pgx.NamedArgs{
		"owner_id":    it.OwnerID,
		"destination": it.Destination,
		"start_date":  it.StartDate,
		"end_date":    it.EndDate,
		"budget":      it.Budget, // nil becomes NULL
		"notes":       it.Notes,
	}

	created, err := scanItinerary(tx.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.Create: %w", err)
	}

	created.Activities, err = insertActivities(ctx, tx, created.ID, it.Activities)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.Create: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.Create: commit: %w", err)
	}
	return created, nil
}

// ListByOwner returns the owner's itineraries newest-first, with activities
// attached in their stored position order. Activities for all itineraries are
// fetched in a single query to avoid one round-trip per itinerary.
func (r *pgItineraryRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Itinerary, error) {
	const q = `
		SELECT id, owner_id, destination, start_date, end_date, budget, notes, created_at, updated_at
		FROM itineraries
		WHERE owner_id = @owner_id
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListByOwner: %w", err)
	}
	defer rows.Close()

	var itineraries []domain.Itinerary
	var ids []uuid.UUID
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ItineraryRepo.ListByOwner: scan: %w", err)
		}
		it.Activities = []domain.Activity{}
		itineraries = append(itineraries, it)
		ids = append(ids, it.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListByOwner: rows: %w", err)
	}
	if len(itineraries) == 0 {
		return itineraries, nil
	}

	activities, err := r.listActivities(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListByOwner: %w", err)
	}

	byItinerary := make(map[uuid.UUID][]domain.Activity, len(ids))
	for _, a := range activities {
		byItinerary[a.ItineraryID] = append(byItinerary[a.ItineraryID], a)
	}
	for i := range itineraries {
		if acts, ok := byItinerary[itineraries[i].ID]; ok {
			itineraries[i].Activities = acts
		}
	}
	return itineraries, nil
}

// Replace rewrites the itinerary's scalar fields and swaps its whole activity
// collection inside one transaction, so concurrent readers never observe the
// itinerary with a partially replaced activity set.
func (r *pgItineraryRepo) Replace(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error) {
	const updateQ = `
		UPDATE itineraries
		SET destination = @destination,
		    start_date  = @start_date,
		    end_date    = @end_date,
		    budget      = @budget,
		    notes       = @notes,
		    updated_at  = now()
		WHERE id = @id AND owner_id = @owner_id
		RETURNING id, owner_id, destination, start_date, end_date, budget, notes, created_at, updated_at`

	const deleteQ = `DELETE FROM activities WHERE itinerary_id = @itinerary_id`

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.Replace: begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	args := pgx.NamedArgs{
		"id":          it.ID,
		"owner_id":    it.OwnerID,
		"destination": it.Destination,
		"start_date":  it.StartDate,
		"end_date":    it.EndDate,
		"budget":      it.Budget,
		"notes":       it.Notes,
	}

	updated, err := scanItinerary(tx.QueryRow(ctx, updateQ, args))
	if err != nil {
		// Zero rows updated means "no such id under this owner" — the caller
		// cannot tell whether the row is missing or owned by someone else.
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.Replace: %w", err)
	}

	if _, err := tx.Exec(ctx, deleteQ, pgx.NamedArgs{"itinerary_id": updated.ID}); err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.Replace: delete activities: %w", err)
	}

	updated.Activities, err = insertActivities(ctx, tx, updated.ID, it.Activities)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.Replace: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.Replace: commit: %w", err)
	}
	return updated, nil
}

// Delete removes an itinerary scoped to its owner. The activities FK is
// declared ON DELETE CASCADE, so children disappear in the same statement.
func (r *pgItineraryRepo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	const q = `DELETE FROM itineraries WHERE id = @id AND owner_id = @owner_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "owner_id": ownerID})
	if err != nil {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// insertActivities inserts the given activities under itineraryID, preserving
// input order via the position column, and returns the persisted records.
// Always returns a non-nil slice so JSON encoding yields [] rather than null.
func insertActivities(ctx context.Context, tx pgx.Tx, itineraryID uuid.UUID, activities []domain.Activity) ([]domain.Activity, error) {
	const q = `
		INSERT INTO activities (itinerary_id, name, date, position)
		VALUES (@itinerary_id, @name, @date, @position)
		RETURNING id, itinerary_id, name, date`

	out := make([]domain.Activity, 0, len(activities))
	for i, a := range activities {
		args := pgx.NamedArgs{
			"itinerary_id": itineraryID,
			"name":         a.Name,
			"date":         a.Date, // nil becomes NULL
			"position":     i,
		}
		created, err := scanActivity(tx.QueryRow(ctx, q, args))
		if err != nil {
			return nil, fmt.Errorf("insert activity %d: %w", i, err)
		}
		out = append(out, created)
	}
	return out, nil
}

// listActivities fetches the activities for all given itinerary ids in one
// query, ordered by position within each itinerary.
func (r *pgItineraryRepo) listActivities(ctx context.Context, itineraryIDs []uuid.UUID) ([]domain.Activity, error) {
	const q = `
		SELECT id, itinerary_id, name, date
		FROM activities
		WHERE itinerary_id = ANY(@itinerary_ids)
		ORDER BY itinerary_id, position`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"itinerary_ids": itineraryIDs})
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("list activities: scan: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list activities: rows: %w", err)
	}
	return activities, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan helpers
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanItinerary maps a single database row into a domain.Itinerary.
// It handles the UUID, date, and nullable budget conversions.
func scanItinerary(s scanner) (domain.Itinerary, error) {
	var (
		it      domain.Itinerary
		id      pgtype.UUID
		ownerID pgtype.UUID
		start   pgtype.Date
		end     pgtype.Date
		budget  pgtype.Float8
	)

	err := s.Scan(&id, &ownerID, &it.Destination, &start, &end, &budget, &it.Notes, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Itinerary{}, domain.ErrNotFound
		}
		return domain.Itinerary{}, err
	}

	it.ID = uuid.UUID(id.Bytes)
	it.OwnerID = uuid.UUID(ownerID.Bytes)
	it.StartDate = start.Time
	it.EndDate = end.Time
	if budget.Valid {
		b := budget.Float64
		it.Budget = &b
	}
	return it, nil
}

// scanActivity maps a single database row into a domain.Activity.
func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a           domain.Activity
		id          pgtype.UUID
		itineraryID pgtype.UUID
		date        pgtype.Date
	)

	err := s.Scan(&id, &itineraryID, &a.Name, &date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Activity{}, domain.ErrNotFound
		}
		return domain.Activity{}, err
	}

	a.ID = uuid.UUID(id.Bytes)
	a.ItineraryID = uuid.UUID(itineraryID.Bytes)
	if date.Valid {
		d := date.Time
		a.Date = &d
	}
	return a, nil
}
