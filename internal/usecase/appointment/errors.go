package appointment

import (
	"errors"
	"fmt"

	domain "github.com/BruksfildServices01/haircut-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/haircut-scheduler/internal/httperr"
)

// lookupErr turns a missing row into NotFound(code), passes business
// errors through and wraps anything else.
func lookupErr(err error, code, what string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.NotFound(code)
	}
	if httperr.KindOf(err) != "" {
		return err
	}
	return fmt.Errorf("load %s: %w", what, err)
}
