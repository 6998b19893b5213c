package store

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the narrow data-access layer the workflows go through. Every
// write path runs inside WithTransaction, the generic primitives exist for
// idempotent maintenance writes and parameterized reads.
type Store struct {
	db          *gorm.DB
	tablePrefix string
}

// New wraps an open GORM connection. tablePrefix is the schema namespace
// applied to raw-table primitives ("app." in production, empty under the
// sqlite test driver).
func New(db *gorm.DB, tablePrefix string) *Store {
	return &Store{db: db, tablePrefix: tablePrefix}
}

// DB exposes the underlying connection for model-based reads.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Prefix returns the schema namespace for callers that build raw read
// queries against FetchAll / FetchOne.
func (s *Store) Prefix() string {
	return s.tablePrefix
}

func (s *Store) physical(table string) string {
	return s.tablePrefix + table
}

// WithTransaction runs body inside one unit of work: commit on nil return,
// rollback on any error. The borrowed connection is returned to the pool on
// every exit path, including panics, which GORM re-raises after rollback.
func (s *Store) WithTransaction(ctx context.Context, body func(tx *gorm.DB) error) error {
	err := s.db.WithContext(ctx).Transaction(body)
	return Classify(err)
}

// Insert persists one new row and populates generated fields (id, server
// timestamps) on entity.
func (s *Store) Insert(ctx context.Context, entity any) error {
	if err := s.db.WithContext(ctx).Create(entity).Error; err != nil {
		return s.opError(err)
	}
	return nil
}

// Upsert inserts values into table or, when a row conflicts on conflictCols,
// updates every supplied column outside the conflict set. It returns the
// resulting row. Table and column names are checked against the schema
// allow-list before any SQL is built.
func (s *Store) Upsert(ctx context.Context, table string, values map[string]any, conflictCols []string) (map[string]any, error) {
	cols, err := validateTable(table)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(values))
	for n := range values {
		names = append(names, n)
	}
	sort.Strings(names)
	if err := validateColumns(table, cols, names); err != nil {
		return nil, err
	}
	if err := validateColumns(table, cols, conflictCols); err != nil {
		return nil, err
	}
	for _, c := range conflictCols {
		if _, ok := values[c]; !ok {
			return nil, fmt.Errorf("store: conflict column %q missing from values", c)
		}
	}

	conflictSet := make(map[string]bool, len(conflictCols))
	onConflict := make([]clause.Column, 0, len(conflictCols))
	for _, c := range conflictCols {
		conflictSet[c] = true
		onConflict = append(onConflict, clause.Column{Name: c})
	}
	updates := make([]string, 0, len(names))
	for _, n := range names {
		if !conflictSet[n] {
			updates = append(updates, n)
		}
	}

	conflict := clause.OnConflict{Columns: onConflict}
	if len(updates) > 0 {
		conflict.DoUpdates = clause.AssignmentColumns(updates)
	} else {
		conflict.DoNothing = true
	}

	err = s.db.WithContext(ctx).
		Table(s.physical(table)).
		Clauses(conflict).
		Create(values).Error
	if err != nil {
		return nil, s.opError(err)
	}

	where := make(map[string]any, len(conflictCols))
	for _, c := range conflictCols {
		where[c] = values[c]
	}
	var rows []map[string]any
	if err := s.db.WithContext(ctx).Table(s.physical(table)).Where(where).Limit(1).Find(&rows).Error; err != nil {
		return nil, s.opError(err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// DeleteWhere removes the rows of table matching condition and returns them
// for confirmation. Delete and read-back are one statement, RETURNING reports
// exactly the rows the DELETE removed. condition must be a SQL fragment with
// ? placeholders, the table name is allow-list checked.
func (s *Store) DeleteWhere(ctx context.Context, table, condition string, params ...any) ([]map[string]any, error) {
	if _, err := validateTable(table); err != nil {
		return nil, err
	}
	var rows []map[string]any
	err := s.db.WithContext(ctx).
		Raw("DELETE FROM "+s.physical(table)+" WHERE "+condition+" RETURNING *", params...).
		Scan(&rows).Error
	if err != nil {
		return nil, s.opError(err)
	}
	return rows, nil
}

// FetchAll scans every row of a parameterized query into dest.
func (s *Store) FetchAll(ctx context.Context, dest any, query string, params ...any) error {
	if err := s.db.WithContext(ctx).Raw(query, params...).Scan(dest).Error; err != nil {
		return s.opError(err)
	}
	return nil
}

// FetchOne scans at most one row into dest. The second return reports
// whether a row was found.
func (s *Store) FetchOne(ctx context.Context, dest any, query string, params ...any) (bool, error) {
	res := s.db.WithContext(ctx).Raw(query, params...).Scan(dest)
	if res.Error != nil {
		return false, s.opError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// opError classifies err and wraps anything outside the taxonomy as an
// opaque OpError. Only driver errors reach this point.
func (s *Store) opError(err error) error {
	classified := Classify(err)
	if classified == nil {
		return nil
	}
	if classified != err {
		return classified
	}
	return &OpError{Err: err}
}
