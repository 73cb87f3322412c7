package rosterdomain

import "errors"

var (
	ErrInvalidPayload  = errors.New("invalid drag payload")
	ErrRoleNotAllowed  = errors.New("character cannot fill role")
	ErrAlreadyAssigned = errors.New("character already on roster")
	ErrSlotOutOfRange  = errors.New("slot out of range")
	ErrSlotOccupied    = errors.New("slot occupied")
	ErrRoleFull        = errors.New("no free slot for role")
	ErrCharacterLocked = errors.New("character locked for difficulty")
	ErrRunCompleted    = errors.New("run already completed")
	ErrNotAssigned     = errors.New("character not on roster")
)
