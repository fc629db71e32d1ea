package domain

// ConfigLoader loads project configuration from a directory.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// SourceLoader produces source units from the outside world.
type SourceLoader interface {
	LoadFile(path string) (SourceUnit, error)
	LoadTree(root string, include, exclude []string) ([]SourceUnit, error)
}

// GitInfo exposes repository metadata for report stamping.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}

// ScoreHistory persists score entries per project.
type ScoreHistory interface {
	Save(projectPath string, entry ScoreEntry) error
	Load(projectPath string) ([]ScoreEntry, error)
}
