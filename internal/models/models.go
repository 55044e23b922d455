package models

// Result is the outcome of checking a single URL. A nil Err marks a response
// from the server; anything else is a failed request.
type Result struct {
	URL            string
	StatusCode     int
	ContentType    string
	HasContentType bool
	Err            error
}

// OK reports whether the server answered, whatever the status code.
func (r Result) OK() bool {
	return r.Err == nil
}
