package xmltree

import "errors"

// ErrNoRoot is returned for documents without a root element.
var ErrNoRoot = errors.New("xml document has no root element")
