package doctor

import "errors"

var ErrInvalidID = errors.New("doctor id is not a valid object id")
