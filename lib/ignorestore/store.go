// Package ignorestore persists the per-user set of exam keys that
// should be excluded from grade statistics. Records never expire:
// an exam stays ignored until the user includes it again.
package ignorestore

import (
	"context"
	"database/sql"

	"carnet-backend/lib/ignorestore/db"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

type Store struct {
	db  *sql.DB
	qry *db.Queries
}

func NewStore(database *sql.DB) Store {
	return Store{
		db:  database,
		qry: db.New(database),
	}
}

func (s Store) Add(ctx context.Context, user, key string) error {
	return s.qry.CreateIgnoredExam(ctx, db.CreateIgnoredExamParams{
		User: user,
		Key:  key,
	})
}

func (s Store) Remove(ctx context.Context, user, key string) error {
	return s.qry.DeleteIgnoredExam(ctx, db.DeleteIgnoredExamParams{
		User: user,
		Key:  key,
	})
}

// Keys returns the user's ignored exam keys as a set.
func (s Store) Keys(ctx context.Context, user string) (map[string]struct{}, error) {
	rows, err := s.qry.GetIgnoredExams(ctx, user)
	if err != nil {
		return nil, err
	}
	keys := make(map[string]struct{}, len(rows))
	for _, key := range rows {
		keys[key] = struct{}{}
	}
	return keys, nil
}
