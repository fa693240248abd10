package shelf

import "fmt"

type (
	UserNotFound struct {
		Login string
		ID    int64
	}

	TodoNotFound struct{}
)

func (u UserNotFound) Error() string {
	if u.Login != "" {
		return fmt.Sprintf("user %v not found", u.Login)
	}
	return fmt.Sprintf("user #%v not found", u.ID)
}

func (TodoNotFound) Error() string {
	return "no todos on the shelf"
}
