// Package paniclog turns panics into errors and logs them with a stack
// trace.
package paniclog

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/abhinav/huffpack/internal/log"
)

// Handle logs a panic value to the given logger at error level
// and returns it as an error. It returns nil if pval is nil.
func Handle(pval interface{}, logger *log.Logger) error {
	if pval == nil {
		return nil
	}

	var err error
	switch pval := pval.(type) {
	case string:
		err = errors.New(pval)
	case error:
		err = pval
	default:
		err = fmt.Errorf("panic: %v", pval)
	}

	log.OrDiscard(logger).Error("panic: "+err.Error(), "stack", string(debug.Stack()))
	return err
}

// Recover recovers a panic and stores it into the given error pointer.
// It must be called directly with defer.
func Recover(err *error, logger *log.Logger) {
	if pval := recover(); pval != nil {
		*err = Handle(pval, logger)
	}
}
