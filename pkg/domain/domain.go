// Package domain models a Grizzly configuration domain: a named directory
// holding a SCOPE.yml manifest, one YAML descriptor per target table, and a
// queries/ directory of SQL bodies. A domain is rebuilt from scratch on every
// run; there is no incremental update.
package domain

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/grizzlydata/csa2grizzly/pkg/consts"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Domain locates a configuration domain inside a Grizzly repository.
type Domain struct {
	root    string
	dataset string
}

// New creates a Domain rooted at repoPath/name. The dataset name is the last
// '/'-delimited segment of name, lowercased; it prefixes every derived table
// name in the domain.
//
// Example:
//
//	d := domain.New("~/gh/grizzly", "team/bas_csa")
//	d.Dataset() // "bas_csa"
func New(repoPath, name string) *Domain {
	segments := strings.Split(strings.ToLower(name), "/")

	return &Domain{
		root:    filepath.Join(repoPath, name),
		dataset: segments[len(segments)-1],
	}
}

// Root returns the domain's root directory.
func (d *Domain) Root() string { return d.root }

// Dataset returns the lowercased dataset name derived from the domain name.
func (d *Domain) Dataset() string { return d.dataset }

// ScopePath returns the path of the SCOPE.yml manifest.
func (d *Domain) ScopePath() string {
	return filepath.Join(d.root, consts.ScopeFileName)
}

// DescriptorPath returns the path of the descriptor file for a table name.
func (d *Domain) DescriptorPath(name string) string {
	return filepath.Join(d.root, name+".yml")
}

// QueryPath returns the path of the SQL body for a table name.
func (d *Domain) QueryPath(name string) string {
	return filepath.Join(d.root, consts.QueriesDirName, name+".sql")
}

// QueryRelPath returns the SQL body path relative to the domain root, as
// recorded in descriptors. Always slash-separated.
func QueryRelPath(name string) string {
	return path.Join(consts.QueriesDirName, name+".sql")
}

// Reset removes any prior content at the domain root and recreates the
// directory layout, including the queries directory. Destructive by design;
// a missing domain is not an error.
func (d *Domain) Reset() error {
	if _, err := os.Stat(d.root); err == nil {
		if err := os.RemoveAll(d.root); err != nil {
			return errors.Wrapf(err, "failed to remove %s", d.root)
		}
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to stat %s", d.root)
	}

	queries := filepath.Join(d.root, consts.QueriesDirName)
	if err := os.MkdirAll(queries, consts.ModeDir); err != nil {
		return errors.Wrapf(err, "failed to create %s", queries)
	}

	return nil
}

// WriteQuery writes a transformed SQL body for a table name.
func (d *Domain) WriteQuery(name, body string) error {
	target := d.QueryPath(name)
	if err := os.WriteFile(target, []byte(body), consts.ModeFile); err != nil {
		return errors.Wrapf(err, "failed to write file %s", target)
	}

	return nil
}

func writeYAML(target string, v any) error {
	f, err := os.Create(target)
	if err != nil {
		return errors.Wrapf(err, "failed to create file: %s", target)
	}
	defer func() { _ = f.Close() }()

	encoder := yaml.NewEncoder(f)
	if err := encoder.Encode(v); err != nil {
		return errors.Wrapf(err, "failed to encode %s", target)
	}

	return errors.Wrap(encoder.Close(), "failed to close yaml encoder")
}
