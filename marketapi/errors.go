package marketapi

import (
	"errors"
	"fmt"
)

// ErrFetchFailed is matched by every FetchError via errors.Is.
var ErrFetchFailed = errors.New("fetch auctions failed")

// FetchError reports an auctions request that did not return 200.
// StatusCode is 0 when the request never got a response.
type FetchError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch auctions: %v", e.Err)
	}
	return fmt.Sprintf("fetch auctions: status %d - %s", e.StatusCode, e.Body)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == ErrFetchFailed }
