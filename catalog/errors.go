package catalog

import "errors"

// ErrProductNotFound is returned by single-record lookups when no record
// matches the identifier. It is distinct from a store failure.
var ErrProductNotFound = errors.New("product not found")

// StoreQueryError reports a failed count or data query against the product
// store. The engine never returns a partial page alongside one of these.
type StoreQueryError struct {
	Op  string // "count", "select" or "get"
	Err error
}

func (e *StoreQueryError) Error() string {
	return "store query failed (" + e.Op + "): " + e.Err.Error()
}

func (e *StoreQueryError) Unwrap() error {
	return e.Err
}
