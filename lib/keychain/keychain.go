// Package keychain stores the optional remembered credentials for a
// portal, keyed by namespace. The caller owns whether to remember at
// all; an unchecked remember-me simply deletes the record.
package keychain

import (
	"context"
	"database/sql"

	"carnet-backend/lib/keychain/db"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

type UsernamePasswordKey struct {
	Username string
	Password string
}

type Keychain struct {
	db  *sql.DB
	qry *db.Queries
}

func New(database *sql.DB) Keychain {
	return Keychain{
		db:  database,
		qry: db.New(database),
	}
}

func (k Keychain) SetUsernamePassword(ctx context.Context, namespace string, key UsernamePasswordKey) error {
	return k.qry.CreateUsernamePassword(ctx, db.CreateUsernamePasswordParams{
		Namespace: namespace,
		Username:  key.Username,
		Password:  key.Password,
	})
}

// GetUsernamePassword returns the zero key, not an error, when no
// credentials are remembered for the namespace.
func (k Keychain) GetUsernamePassword(ctx context.Context, namespace string) (UsernamePasswordKey, error) {
	row, err := k.qry.GetUsernamePassword(ctx, namespace)
	if err == sql.ErrNoRows {
		return UsernamePasswordKey{}, nil
	}
	if err != nil {
		return UsernamePasswordKey{}, err
	}
	return UsernamePasswordKey{
		Username: row.Username,
		Password: row.Password,
	}, nil
}

func (k Keychain) DeleteUsernamePassword(ctx context.Context, namespace string) error {
	return k.qry.DeleteUsernamePassword(ctx, namespace)
}
