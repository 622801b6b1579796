// Package transform converts the CSA BigQuery script export into Grizzly
// domain entries. Every *.sql file under the export's scripts directory
// becomes one SQL body under queries/ plus one descriptor at the domain root,
// and its derived name is appended to the scope.
package transform

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/grizzlydata/csa2grizzly/pkg/consts"
	"github.com/grizzlydata/csa2grizzly/pkg/domain"
	"github.com/pkg/errors"
)

// DerivedName computes the descriptor base name for a source script stem.
// The stem is lowercased, its first two underscore-delimited tokens are
// dropped, and the dataset name is prefixed with a dot.
//
// Examples:
//   - ("bas_csa", "csa_1_failed_logins") -> "bas_csa.failed_logins"
//   - ("bas_csa", "csa_2_01_login_anomaly") -> "bas_csa.01_login_anomaly"
//   - ("bas_csa", "single") -> "bas_csa.single" (nothing to drop)
func DerivedName(dataset, stem string) string {
	parts := strings.SplitN(strings.ToLower(stem), "_", 3)

	return dataset + "." + parts[len(parts)-1]
}

// Substitute replaces every literal occurrence of the placeholder token pair
// with the caller-supplied dataset identifier. Plain substring replacement,
// case-sensitive; bodies without the placeholder pass through unchanged.
func Substitute(body, sourceDataset string) string {
	return strings.ReplaceAll(body, consts.Placeholder, sourceDataset)
}

// Transformer emits domain entries for every script it visits, recording
// each derived name in the scope as it goes.
type Transformer struct {
	domain        *domain.Domain
	scope         *domain.Scope
	sourceDataset string
}

// New creates a Transformer writing into the given domain. The domain must
// already be reset; the scope accumulates derived names across Run.
func New(d *domain.Domain, scope *domain.Scope, sourceDataset string) *Transformer {
	return &Transformer{
		domain:        d,
		scope:         scope,
		sourceDataset: sourceDataset,
	}
}

// Run walks cloneRoot/backends/bigquery/sql recursively and transforms every
// *.sql file in traversal order. Two source files mapping to the same derived
// name overwrite each other's outputs and both names land in the scope; the
// collision is logged but not treated as an error.
func (t *Transformer) Run(cloneRoot string) error {
	root := filepath.Join(cloneRoot, consts.ScriptsSubpath)
	seen := make(map[string]string)

	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() || filepath.Ext(entry.Name()) != ".sql" {
			return nil
		}

		stem := strings.TrimSuffix(entry.Name(), ".sql")
		name := DerivedName(t.domain.Dataset(), stem)

		if prev, ok := seen[name]; ok {
			slog.Warn("Duplicate derived name, overwriting earlier output",
				"name", name,
				"source", path,
				"previous", prev)
		}
		seen[name] = path

		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "failed to read file %s", path)
		}

		if err := t.domain.WriteQuery(name, Substitute(string(data), t.sourceDataset)); err != nil {
			return err
		}

		if err := t.domain.WriteDescriptor(domain.NewDescriptor(name)); err != nil {
			return err
		}

		t.scope.Append(name)
		return nil
	})
}
