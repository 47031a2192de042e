package ports

// FileChecker is the filesystem existence probe.
type FileChecker interface {
	Exists(path string) bool
}
