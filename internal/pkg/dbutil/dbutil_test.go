package dbutil

import (
	"testing"

	"github.com/didi/gendry/builder"
	"github.com/stretchr/testify/require"
)

func TestFinalizeRewritesLimitForPostgres(t *testing.T) {
	where := map[string]interface{}{"id": "s1", "_limit": []uint{0, 1}}
	sqlStr, args, err := builder.BuildSelect("verified_sessions", where, []string{"id", "email", "payload", "ctime", "expires_at"})
	require.NoError(t, err)

	sqlStr, args = Finalize(sqlStr, args)
	require.Equal(t, "SELECT id,email,payload,ctime,expires_at FROM verified_sessions WHERE (id=$1) LIMIT $2 OFFSET $3", sqlStr)
	require.Len(t, args, 3)
	require.Equal(t, "s1", args[0])
	require.EqualValues(t, 1, args[1])
	require.EqualValues(t, 0, args[2])
}

func TestFinalizeWithoutLimit(t *testing.T) {
	sqlStr, args, err := builder.BuildUpdate("verified_sessions",
		map[string]interface{}{"id": "s1"},
		map[string]interface{}{"email": "foo@bar.com"})
	require.NoError(t, err)

	sqlStr, args = Finalize(sqlStr, args)
	require.Equal(t, "UPDATE verified_sessions SET email=$1 WHERE (id=$2)", sqlStr)
	require.Equal(t, []interface{}{"foo@bar.com", "s1"}, args)
}

func TestFinalizeOperatorConditions(t *testing.T) {
	where := map[string]interface{}{"expires_at <=": int64(100), "expires_at >": 0}
	sqlStr, args, err := builder.BuildDelete("verified_sessions", where)
	require.NoError(t, err)

	sqlStr, args = Finalize(sqlStr, args)
	require.NotContains(t, sqlStr, "?")
	require.Contains(t, sqlStr, "$1")
	require.Contains(t, sqlStr, "$2")
	require.Len(t, args, 2)
}
