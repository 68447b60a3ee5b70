package interfaces

import "errors"

// ErrAlreadyExists is returned by repository Create methods when the id is taken.
var ErrAlreadyExists = errors.New("record already exists")

// ErrLockNotObtained is returned by IOrderLocker when another request keeps the order locked.
var ErrLockNotObtained = errors.New("order is locked by another request")
