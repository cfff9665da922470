package forwardlist

import "errors"

var ErrPopEmpty = errors.New("pop front called on empty list")
var ErrIteratorEnd = errors.New("iterator is past the end")
