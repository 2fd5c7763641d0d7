package media

import "errors"

var (
	// ErrEnvironment is returned when the application data directory cannot be determined.
	ErrEnvironment = errors.New("cannot determine application data directory")
	// ErrInvalidCategory is returned when an import names a category outside the closed set.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrInvalidFilename is returned when no filename can be taken from a source path.
	ErrInvalidFilename = errors.New("invalid filename")
	// ErrSourceNotFound is returned when the file to import does not exist.
	ErrSourceNotFound = errors.New("source file does not exist")
	// ErrFileNotFound is returned when a managed file does not exist.
	ErrFileNotFound = errors.New("file does not exist")
	// ErrStorageIO wraps failures of the underlying filesystem.
	ErrStorageIO = errors.New("storage error")
)

var errorKinds = []struct {
	err  error
	kind string
}{
	{ErrEnvironment, "EnvironmentError"},
	{ErrInvalidCategory, "InvalidCategoryError"},
	{ErrInvalidFilename, "InvalidFilenameError"},
	{ErrSourceNotFound, "SourceNotFoundError"},
	{ErrFileNotFound, "FileNotFoundError"},
	{ErrStorageIO, "StorageIOError"},
}

// ErrorKind returns the name of the error class err belongs to, or
// "UnknownError" when it matches none of the package sentinels.
func ErrorKind(err error) string {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return "UnknownError"
}
