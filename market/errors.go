package market

import (
	"fmt"

	"github.com/weyoume/wenode-sub002/kernelerr"
)

// ErrFillOrKill is returned when a fill_or_kill taker cannot be fully
// filled against the current book.
var ErrFillOrKill = fmt.Errorf("%w: fill_or_kill order could not be fully filled", kernelerr.ErrPrecondition)
