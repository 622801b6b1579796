package domain

import (
	"io"
	"os"

	"github.com/grizzlydata/csa2grizzly/pkg/consts"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Scope is the domain-wide manifest serialized to SCOPE.yml. ETLScope lists
// descriptor base names in the order their source scripts were visited; it is
// not sorted and not deduplicated.
type Scope struct {
	ScheduleInterval         string   `yaml:"schedule_interval"`
	ExecutionTimeoutPerTable int      `yaml:"execution_timeout_per_table"`
	ETLScope                 []string `yaml:"etl_scope"`
}

// NewScope creates a Scope with the fixed per-table timeout and an empty
// etl_scope list.
func NewScope(scheduleInterval string) *Scope {
	return &Scope{
		ScheduleInterval:         scheduleInterval,
		ExecutionTimeoutPerTable: consts.ExecutionTimeoutPerTable,
		ETLScope:                 []string{},
	}
}

// Append records a descriptor base name in the scope.
func (s *Scope) Append(name string) {
	s.ETLScope = append(s.ETLScope, name)
}

// WriteScope serializes the scope to SCOPE.yml at the domain root. One write,
// no merging; the domain was already wiped by Reset.
func (d *Domain) WriteScope(s *Scope) error {
	return writeYAML(d.ScopePath(), s)
}

// LoadScope parses a scope manifest from the provided io.Reader.
func LoadScope(r io.Reader) (*Scope, error) {
	var s Scope
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal scope")
	}

	return &s, nil
}

// LoadScopeFile loads a scope manifest from the specified file path. This is
// a convenience function that opens the file and calls LoadScope.
func LoadScopeFile(path string) (*Scope, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadScope(f)
}
