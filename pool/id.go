// SPDX-License-Identifier: EPL-2.0

package pool

import (
	"fmt"

	"github.com/google/uuid"
)

// SampleID identifies a pooled sample. IDs are random and never reused.
type SampleID uuid.UUID

// NewSampleID returns a fresh random (version 4) ID.
func NewSampleID() SampleID {
	return SampleID(uuid.New())
}

// ParseSampleID parses the canonical textual form returned by String.
func ParseSampleID(s string) (SampleID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return SampleID{}, fmt.Errorf("parsing sample id %q: %w", s, err)
	}

	return SampleID(u), nil
}

func (id SampleID) String() string {
	return uuid.UUID(id).String()
}

// IsZero reports whether id is the zero value, which no sample ever has.
func (id SampleID) IsZero() bool {
	return id == SampleID{}
}
