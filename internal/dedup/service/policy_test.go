package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPolicyMatchesPublicContract(t *testing.T) {
	p := DefaultPolicy()
	require.NoError(t, p.Validate())

	assert.Equal(t, 30, p.ReportThreshold)
	assert.Equal(t, 70, p.DuplicateThreshold)
	assert.Equal(t, 70, p.NameMatchThreshold)
	assert.Equal(t, 60, p.ContentMatchThreshold)
	assert.Equal(t, 0.8, p.VersionBaseThreshold)
	assert.Equal(t, 3, p.MaxMatches)
	assert.Equal(t, 0.7, p.JaccardWeight)
	assert.Equal(t, 0.3, p.LevenshteinWeight)
}

func TestLoadPolicyEmptyPath(t *testing.T) {
	p, err := LoadPolicy("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPolicy(), p)
}

func TestLoadPolicyOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
version: "2024-2"
report_threshold: 40
max_matches: 5
recommend:
  keep_both_above: 75
`), 0o644))

	p, err := LoadPolicy(path)
	require.NoError(t, err)
	assert.Equal(t, "2024-2", p.Version)
	assert.Equal(t, 40, p.ReportThreshold)
	assert.Equal(t, 5, p.MaxMatches)
	assert.Equal(t, 75, p.Recommend.KeepBothAbove)
	// не заданные в файле значения остаются по умолчанию
	assert.Equal(t, 70, p.DuplicateThreshold)
	assert.Equal(t, 90, p.Recommend.OverwriteExactAbove)
}

func TestLoadPolicyRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"weights.yaml":   "jaccard_weight: 0.9\n",
		"threshold.yaml": "report_threshold: 130\n",
		"matches.yaml":   "max_matches: 0\n",
		"syntax.yaml":    "report_threshold: [\n",
		"typo.yaml":      "report_treshold: 60\n",
		"bonus.yaml":     "name_bonus: -500\n",
		"title.yaml":     "title_min_length: -1\n",
		"content.yaml":   "content_max_chars: 1000000\n",
		"recommend.yaml": "recommend:\n  keep_both_above: 150\n",
		"nested.yaml":    "recommend:\n  keep_all: 10\n",
	}
	for name, body := range cases {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		_, err := LoadPolicy(path)
		assert.Error(t, err, name)
	}

	_, err := LoadPolicy(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadPolicyEmptyFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	p, err := LoadPolicy(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultPolicy(), p)
}

func TestLoadPolicyMarksTunedTableWithoutVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuned.yaml")
	require.NoError(t, os.WriteFile(path, []byte("duplicate_threshold: 75\n"), 0o644))

	p, err := LoadPolicy(path)
	require.NoError(t, err)
	assert.Equal(t, 75, p.DuplicateThreshold)
	assert.Equal(t, DefaultPolicy().Version+"+tuned.yaml", p.Version)
}
