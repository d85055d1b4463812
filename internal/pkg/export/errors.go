package export

import "errors"

// ErrUnknownFormat is returned for export formats other than csv, xlsx, txt or pdf.
var ErrUnknownFormat = errors.New("unknown export format")
