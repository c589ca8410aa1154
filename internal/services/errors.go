package services

import "errors"

var (
	ErrUnknownShip          = errors.New("unknown ship")
	ErrUnknownContainerType = errors.New("unknown container type")
)
