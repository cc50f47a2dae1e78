package catalog

// Config holds the locations of persisted records.
type Config struct {
	// OutputDir is the directory holding every record.
	OutputDir string `mapstructure:"output_dir" default:"."`
	// LocalFile is the file name of the local catalog.
	LocalFile string `mapstructure:"local_file" default:"local.json"`
	// RemoteFile is the file name of the unscoped remote catalog.
	RemoteFile string `mapstructure:"remote_file" default:"remote.json"`
	// DiffFile is the file name of the unscoped diff report.
	DiffFile string `mapstructure:"diff_file" default:"diff.json"`
}
