package database

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStatements(t *testing.T) {
	script := `-- interviews
CREATE TABLE a (
    id NUMBER
);

CREATE INDEX idx_a ON a (id);
`
	got := SplitStatements(script)
	require.Len(t, got, 2)
	assert.Equal(t, "CREATE TABLE a (\n    id NUMBER\n)", got[0])
	assert.Equal(t, "CREATE INDEX idx_a ON a (id)", got[1])
}

func TestLoadMigrations_Order(t *testing.T) {
	fsys := fstest.MapFS{
		"m/0002_b.up.sql":   {Data: []byte("CREATE TABLE b (id NUMBER);")},
		"m/0001_a.up.sql":   {Data: []byte("CREATE TABLE a (id NUMBER);")},
		"m/0001_a.down.sql": {Data: []byte("DROP TABLE a;")},
	}

	got, err := loadMigrations(fsys, "m")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "0001_a.up.sql", got[0].Name)
	assert.Equal(t, []string{"CREATE TABLE b (id NUMBER)"}, got[1].Statements)
}

func TestLoadMigrations_Embedded(t *testing.T) {
	got, err := LoadMigrations()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Len(t, got[0].Statements, 2)
	assert.Len(t, got[1].Statements, 2)
}

func TestRunMigrations(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE interviews")).WillReturnError(errors.New("ORA-00955: name is already used by an existing object"))
	mock.ExpectExec(regexp.QuoteMeta("CREATE INDEX idx_interviews_user_id")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE interview_responses")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE INDEX idx_responses_interview")).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, RunMigrations(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_Failure(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE interviews")).WillReturnError(errors.New("ORA-01031: insufficient privileges"))

	err = RunMigrations(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0001_create_interviews.up.sql")
	assert.NoError(t, mock.ExpectationsWereMet())
}
