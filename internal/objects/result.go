package objects

// Result is the outcome of one object file, sent to the printer goroutine.
type Result struct {
	Input      string
	Output     string
	OutputSize int64
	Error      error
}

func (r Result) ok() bool {
	return r.Error == nil
}
