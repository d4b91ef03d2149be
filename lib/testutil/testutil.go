package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	"carnet-backend/lib/telemetry"

	_ "modernc.org/sqlite"
)

type ServiceParams struct {
	Name string
	// schemas applied in order, leave empty to skip setting up a db
	DbSchemas []string
	// if unspecified, it will use `:memory:`
	DbPath string
}

type ServiceResult struct {
	DB *sql.DB
}

// SetupService wires the telemetry and sqlite boilerplate a service
// test needs. The returned cleanup must be deferred.
func SetupService(t testing.TB, params ServiceParams) (ServiceResult, func()) {
	cleanup := telemetry.SetupForTesting(t, fmt.Sprintf("test:%s", params.Name))

	result := ServiceResult{}
	if len(params.DbSchemas) > 0 {
		dbpath := params.DbPath
		if dbpath == "" {
			dbpath = ":memory:"
		}
		sqlite, err := sql.Open("sqlite", dbpath)
		if err != nil {
			t.Fatal(err)
		}
		for _, schema := range params.DbSchemas {
			_, err = sqlite.Exec(schema)
			if err != nil {
				t.Fatal(err)
			}
		}
		result.DB = sqlite
	}

	return result, func() {
		if result.DB != nil {
			result.DB.Close()
		}
		cleanup()
	}
}
