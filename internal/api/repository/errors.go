package repository

import "fmt"

// NotFoundError reports that the addressed row does not exist. Repositories
// derive it from an empty result set; callers detect it with errors.As.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Resource, e.ID)
}
