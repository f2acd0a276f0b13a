package luryerrors

// FileError attributes err to the script at Path.
type FileError struct {
	Path string
	err  error
}

func NewFileError(path string, err error) error {
	if err == nil {
		return nil
	}
	return &FileError{Path: path, err: err}
}

// Error implements error.
func (f *FileError) Error() string {
	return f.Path + ": " + f.err.Error()
}

func (f *FileError) Unwrap() error {
	return f.err
}

var _ error = (*FileError)(nil)
var _ wrapper = (*FileError)(nil)
