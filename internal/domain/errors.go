package domain

import "errors"

// ErrNotFound id 对应的行不存在
var ErrNotFound = errors.New("record not found")
