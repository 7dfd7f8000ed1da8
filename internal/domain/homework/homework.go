package homework

import "fmt"

// Status is a review verdict reported by the Practicum API.
// The set of recognized verdicts is closed; anything else is an error
// condition, not a new variant.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusReviewing Status = "reviewing"
)

// Homework is a single submission as reported by the API.
type Homework struct {
	ID     int64  `json:"id"`
	Name   string `json:"homework_name"`
	Status Status `json:"status"`
}

// verdicts maps each recognized verdict to its human-readable sentence.
var verdicts = map[Status]string{
	StatusApproved:  "Work checked: the reviewer liked everything. Hooray!",
	StatusRejected:  "Work checked: the reviewer has remarks.",
	StatusReviewing: "Work has been taken up for review.",
}

// UnknownStatusError reports a verdict code outside the recognized set.
type UnknownStatusError struct {
	Status Status
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unexpected homework status: %q", string(e.Status))
}

// Describe builds the notification text for a homework record.
// It fails with *UnknownStatusError if the verdict code is not recognized.
func Describe(hw Homework) (string, error) {
	verdict, ok := verdicts[hw.Status]
	if !ok {
		return "", &UnknownStatusError{Status: hw.Status}
	}
	return fmt.Sprintf("Status changed for %q. %s", hw.Name, verdict), nil
}
