package characterdomain

import "errors"

var (
	ErrItemLevel     = errors.New("item level must be a 3-digit number")
	ErrClassRequired = errors.New("class is required")
	ErrUnknownClass  = errors.New("unknown class")
	ErrRoleRequired  = errors.New("at least one role is required")
)

var formMessages = map[error]string{
	ErrItemLevel:     "iLevel must be a 3-digit number.",
	ErrClassRequired: "Class is required.",
	ErrUnknownClass:  "Pick a class from the list.",
	ErrRoleRequired:  "Select at least one role.",
}

// FormMessage returns the toast copy for a validation error, or "" for other errors.
func FormMessage(err error) string {
	for target, msg := range formMessages {
		if errors.Is(err, target) {
			return msg
		}
	}
	return ""
}
