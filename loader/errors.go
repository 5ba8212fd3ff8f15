package loader

import (
	"errors"

	dynerrors "github.com/wippyai/dynbind/errors"
)

func batchError(library string, missing []string, first error) error {
	if len(missing) == 1 {
		var e *dynerrors.Error
		if errors.As(first, &e) {
			return first
		}
	}
	return dynerrors.SymbolNotFound(library, missing, first)
}
