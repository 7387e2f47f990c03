package keep

import "errors"

var ErrMalformedNote = errors.New("malformed keep note")
