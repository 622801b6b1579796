package domain

import (
	"io"
	"os"

	"github.com/grizzlydata/csa2grizzly/pkg/consts"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Descriptor is the per-table YAML file telling the orchestrator how to load
// a script's output into its destination table.
type Descriptor struct {
	TargetTableName   string `yaml:"target_table_name"`
	JobWriteMode      string `yaml:"job_write_mode"`
	StageLoadingQuery string `yaml:"stage_loading_query"`
}

// NewDescriptor builds the descriptor for a derived table name. The write
// mode is always WRITE_TRUNCATE and the query path always points into the
// domain's queries directory.
func NewDescriptor(name string) *Descriptor {
	return &Descriptor{
		TargetTableName:   name,
		JobWriteMode:      consts.WriteMode,
		StageLoadingQuery: QueryRelPath(name),
	}
}

// WriteDescriptor serializes a descriptor to <target_table_name>.yml at the
// domain root.
func (d *Domain) WriteDescriptor(desc *Descriptor) error {
	return writeYAML(d.DescriptorPath(desc.TargetTableName), desc)
}

// LoadDescriptor parses a descriptor from the provided io.Reader.
func LoadDescriptor(r io.Reader) (*Descriptor, error) {
	var desc Descriptor
	if err := yaml.NewDecoder(r).Decode(&desc); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal descriptor")
	}

	return &desc, nil
}

// LoadDescriptorFile loads a descriptor from the specified file path.
func LoadDescriptorFile(path string) (*Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadDescriptor(f)
}
