package characterservice

import "errors"

var (
	ErrCharacterNotFound = errors.New("character not found")
	ErrLockNotToggleable = errors.New("lock cannot be changed")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)
