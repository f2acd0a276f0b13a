package luryerrors

type wrapper interface {
	Unwrap() error
}

type multiWrapper interface {
	Unwrap() []error
}

// Split flattens errors.Join results into their leaf errors, in order.
// Any other error is returned as the only element.
func Split(err error) []error {
	if err == nil {
		return nil
	}
	joined, ok := err.(multiWrapper)
	if !ok {
		return []error{err}
	}
	var errs []error
	for _, err := range joined.Unwrap() {
		errs = append(errs, Split(err)...)
	}
	return errs
}
