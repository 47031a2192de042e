package ports

// ConfigFileFinder defines the contract for locating a project configuration
// file when none was given explicitly.
type ConfigFileFinder interface {
	Find(startDir string) (string, error)
}
