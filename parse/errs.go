package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse      = errors.New("parse error")
	ErrBadContext = fmt.Errorf("%w: bad fragment context", ErrParse)
)
