package items

import "errors"

// ErrUnknownRecordKind is returned for item files whose root element is
// neither an equipment nor a liquid prototype.
var ErrUnknownRecordKind = errors.New("unrecognized record kind")
