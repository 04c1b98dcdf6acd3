// Package infrastructure persists documents in PostgreSQL and pushes the
// compatible part of a predicate down to SQL, re-checking every fetched row
// with the in-process evaluator.
package infrastructure

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/krew-solutions/doceval-go/doceval/document"
	"github.com/krew-solutions/doceval-go/doceval/expression"
)

var ErrNotFound = errors.New("document not found")

type Store struct {
	pool  *pgxpool.Pool
	table string
}

func NewStore(pool *pgxpool.Pool, table string) *Store {
	return &Store{pool: pool, table: table}
}

// Init creates the backing table. The table name comes from trusted
// configuration, not user input.
func (s *Store) Init(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s (id uuid PRIMARY KEY, doc jsonb NOT NULL)`, s.table))
	return errors.Wrap(err, "create table")
}

// Put stores the document under a fresh key.
func (s *Store) Put(ctx context.Context, doc document.Document) (uuid.UUID, error) {
	id := uuid.New()
	if err := s.PutWithID(ctx, id, doc); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// PutWithID stores or replaces the document under the given key.
func (s *Store) PutWithID(ctx context.Context, id uuid.UUID, doc document.Document) error {
	encoded, err := EncodeDocument(doc)
	if err != nil {
		return errors.Wrap(err, "encode document")
	}
	_, err = s.pool.Exec(ctx, fmt.Sprintf(
		`INSERT INTO %s (id, doc) VALUES ($1, $2) ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc`, s.table),
		id, string(encoded))
	return errors.Wrap(err, "put document")
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (document.Document, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, fmt.Sprintf(`SELECT doc FROM %s WHERE id = $1`, s.table), id).Scan(&raw)
	if errors.Cause(err) == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get document")
	}
	return DecodeDocument(raw)
}

func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, s.table), id)
	if err != nil {
		return errors.Wrap(err, "delete document")
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Match is one query hit.
type Match struct {
	ID       uuid.UUID
	Document document.Document
}

// Query returns the documents whose predicate evaluates to true. When the
// predicate compiles to SQL the database narrows the candidate set first;
// either way every candidate is re-checked by the evaluator, so results are
// exact. Documents whose evaluation errors are skipped.
func (s *Store) Query(ctx context.Context, predicate expression.BooleanExpression) ([]Match, error) {
	query := fmt.Sprintf(`SELECT id, doc FROM %s`, s.table)
	var params []any
	if where, whereParams, err := Compile("doc", predicate); err == nil {
		query += " WHERE " + where
		params = whereParams
	} else if errors.Cause(err) != ErrUnsupportedPushdown {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, query, params...)
	if err != nil {
		return nil, errors.Wrap(err, "query documents")
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var id uuid.UUID
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, errors.Wrap(err, "scan row")
		}
		doc, err := DecodeDocument(raw)
		if err != nil {
			return nil, err
		}
		res, err := expression.Evaluate(predicate, doc)
		if err != nil {
			return nil, err
		}
		if res.IsTrue() {
			matches = append(matches, Match{ID: id, Document: doc})
		}
	}
	return matches, errors.Wrap(rows.Err(), "iterate rows")
}
