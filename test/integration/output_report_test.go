package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/homepath/deposit-forecast/internal/calculation"
	"github.com/homepath/deposit-forecast/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputGeneration(t *testing.T) {
	h := loadHousehold(t)
	res, err := calculation.NewProjectionEngine().Project(h, nil)
	require.NoError(t, err)
	res.Assumptions = output.GenerateAssumptions(h)

	dir := t.TempDir()
	paths, err := output.GenerateReport(res, "all", dir)
	require.NoError(t, err)
	require.Len(t, paths, len(output.AvailableFormatterNames()))

	for _, p := range paths {
		fi, err := os.Stat(p)
		require.NoError(t, err)
		assert.Greater(t, fi.Size(), int64(0), "empty report %s", filepath.Base(p))
	}
}

func TestConsoleReportMentionsHousehold(t *testing.T) {
	h := loadHousehold(t)
	res, err := calculation.NewProjectionEngine().Project(h, nil)
	require.NoError(t, err)

	out, err := output.GetFormatterByName("text").Format(res)
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "Integration household")
	assert.Contains(t, content, "MONTHLY DETAIL")
	assert.Contains(t, content, "Sep 2025")
	assert.Contains(t, content, "Jun 2027")
}
