// SPDX-License-Identifier: EPL-2.0

package manifest

import "errors"

var (
	ErrHashMismatch      = errors.New("manifest hash does not match its entries")
	ErrUnknownFormat     = errors.New("unknown manifest format")
	ErrEmptyHashBuf      = errors.New("hash buffer must not be empty")
	ErrMalformedEntry    = errors.New("manifest entry has no path")
	ErrEmptyDocument     = errors.New("manifest document is empty")
	// ErrMalformedDocument means a required manifest field is missing.
	ErrMalformedDocument = errors.New("manifest document is missing required fields")
)
