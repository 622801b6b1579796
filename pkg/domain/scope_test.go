package domain_test

import (
	"os"
	"strings"
	"testing"

	"github.com/grizzlydata/csa2grizzly/pkg/consts"
	. "github.com/grizzlydata/csa2grizzly/pkg/domain"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func TestNewScope(t *testing.T) {
	s := NewScope("0 4 * * *")
	require.Equal(t, "0 4 * * *", s.ScheduleInterval)
	require.Equal(t, consts.ExecutionTimeoutPerTable, s.ExecutionTimeoutPerTable)
	require.Empty(t, s.ETLScope)
	require.NotNil(t, s.ETLScope)
}

func TestScopeAppend(t *testing.T) {
	s := NewScope("@daily")
	s.Append("bas_csa.failed_logins")
	s.Append("bas_csa.login_anomaly")
	// Duplicates are retained; the scope mirrors traversal order exactly.
	s.Append("bas_csa.failed_logins")

	require.Equal(t, []string{
		"bas_csa.failed_logins",
		"bas_csa.login_anomaly",
		"bas_csa.failed_logins",
	}, s.ETLScope)
}

func TestWriteScope(t *testing.T) {
	repo := t.TempDir()
	d := New(repo, "bas_csa")
	require.NoError(t, d.Reset())

	s := NewScope("0 4 * * *")
	s.Append("bas_csa.failed_logins")
	s.Append("bas_csa.login_anomaly")
	require.NoError(t, d.WriteScope(s))

	data, err := os.ReadFile(d.ScopePath())
	require.NoError(t, err)
	golden.Assert(t, string(data), "scope.yml")
}

func TestLoadScope(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s, err := LoadScope(strings.NewReader(string(golden.Get(t, "scope.yml"))))
		require.NoError(t, err)
		require.Equal(t, "0 4 * * *", s.ScheduleInterval)
		require.Equal(t, 1200, s.ExecutionTimeoutPerTable)
		require.Equal(t, []string{"bas_csa.failed_logins", "bas_csa.login_anomaly"}, s.ETLScope)
	})

	t.Run("error", func(t *testing.T) {
		s, err := LoadScope(strings.NewReader("invalid: yaml: ["))
		require.Error(t, err)
		require.Nil(t, s)
		require.Contains(t, err.Error(), "failed to unmarshal scope")
	})
}

func TestLoadScopeFile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s, err := LoadScopeFile("testdata/scope.yml")
		require.NoError(t, err)
		require.Len(t, s.ETLScope, 2)
	})

	t.Run("error", func(t *testing.T) {
		s, err := LoadScopeFile("testdata/nonexistent.yml")
		require.Error(t, err)
		require.Nil(t, s)
		require.Contains(t, err.Error(), "failed to open file")
	})
}
