package pta

import "fmt"

// ConflictingSample reports that two inserted samples prescribe different
// labels for the same word.
type ConflictingSample struct {
	Message string
}

func (e *ConflictingSample) Error() string {
	return fmt.Sprintf("pta: conflicting sample: %s", e.Message)
}
