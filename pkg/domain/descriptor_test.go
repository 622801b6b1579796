package domain_test

import (
	"os"
	"strings"
	"testing"

	. "github.com/grizzlydata/csa2grizzly/pkg/domain"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func TestNewDescriptor(t *testing.T) {
	desc := NewDescriptor("bas_csa.failed_logins")

	require.Equal(t, "bas_csa.failed_logins", desc.TargetTableName)
	require.Equal(t, "WRITE_TRUNCATE", desc.JobWriteMode)
	require.Equal(t, "queries/bas_csa.failed_logins.sql", desc.StageLoadingQuery)
}

func TestWriteDescriptor(t *testing.T) {
	repo := t.TempDir()
	d := New(repo, "bas_csa")
	require.NoError(t, d.Reset())

	require.NoError(t, d.WriteDescriptor(NewDescriptor("bas_csa.failed_logins")))

	data, err := os.ReadFile(d.DescriptorPath("bas_csa.failed_logins"))
	require.NoError(t, err)
	golden.Assert(t, string(data), "descriptor.yml")
}

func TestLoadDescriptor(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		desc, err := LoadDescriptor(strings.NewReader(string(golden.Get(t, "descriptor.yml"))))
		require.NoError(t, err)
		require.Equal(t, "bas_csa.failed_logins", desc.TargetTableName)
		require.Equal(t, "WRITE_TRUNCATE", desc.JobWriteMode)
		require.Equal(t, "queries/bas_csa.failed_logins.sql", desc.StageLoadingQuery)
	})

	t.Run("error", func(t *testing.T) {
		desc, err := LoadDescriptor(strings.NewReader("invalid: yaml: ["))
		require.Error(t, err)
		require.Nil(t, desc)
		require.Contains(t, err.Error(), "failed to unmarshal descriptor")
	})
}

func TestLoadDescriptorFile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		desc, err := LoadDescriptorFile("testdata/descriptor.yml")
		require.NoError(t, err)
		require.Equal(t, "bas_csa.failed_logins", desc.TargetTableName)
	})

	t.Run("error", func(t *testing.T) {
		desc, err := LoadDescriptorFile("testdata/nonexistent.yml")
		require.Error(t, err)
		require.Nil(t, desc)
		require.Contains(t, err.Error(), "failed to open file")
	})
}
