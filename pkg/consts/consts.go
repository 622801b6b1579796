package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// UpstreamRepo is the GitHub repository holding the CSA script export
	UpstreamRepo = "GoogleCloudPlatform/security-analytics"

	// ScriptsSubpath is the path under the clone root that holds the BigQuery scripts
	ScriptsSubpath = "backends/bigquery/sql"

	// Placeholder is the literal token pair substituted with the source dataset
	Placeholder = "[MY_PROJECT_ID].[MY_DATASET_ID]"

	// WriteMode is the load disposition written into every descriptor
	WriteMode = "WRITE_TRUNCATE"

	// ExecutionTimeoutPerTable is the per-table timeout (seconds) written into every scope
	ExecutionTimeoutPerTable = 1200

	// TempDirPrefix is the prefix used for the temporary clone directory
	TempDirPrefix = "csa."

	// ScopeFileName is the name of the domain manifest file
	ScopeFileName = "SCOPE.yml"

	// QueriesDirName is the name of the SQL body directory under the domain root
	QueriesDirName = "queries"
)
