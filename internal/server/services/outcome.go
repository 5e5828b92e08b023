package services

// Outcome is the result of an account operation that reached a decision.
// Storage or crypto failures are reported as errors instead.
//
// The value doubles as the machine-readable code sent to clients.
type Outcome string

const (
	OutcomeCreated            Outcome = "USER_REGISTERED"
	OutcomeAuthenticated      Outcome = "USER_LOGIN"
	OutcomeAccepted           Outcome = "USER_UPDATED"
	OutcomeDeleted            Outcome = "USER_DELETED"
	OutcomeNoChangeRequested  Outcome = "NO_DATA_TO_UPDATE"
	OutcomeNotFound           Outcome = "USER_NOT_FOUND"
	OutcomeEditForbidden      Outcome = "NOT_ALLOWED_TO_EDIT"
	OutcomeDeleteForbidden    Outcome = "NOT_ALLOWED_TO_DELETE"
	OutcomeConflict           Outcome = "EMAIL_ALREADY_REGISTERED"
	OutcomeInvalidCredentials Outcome = "INCORRECT_PASSWORD"
)

var outcomeMessages = map[Outcome]string{
	OutcomeCreated:            "User Registered Successfully",
	OutcomeAuthenticated:      "User loggedIn Successfully",
	OutcomeAccepted:           "User updated",
	OutcomeDeleted:            "User Deleted",
	OutcomeNoChangeRequested:  "No Data To Update",
	OutcomeNotFound:           "User Not Found",
	OutcomeEditForbidden:      "Update not possible",
	OutcomeDeleteForbidden:    "Not allowed to delete",
	OutcomeConflict:           "Email Already registered",
	OutcomeInvalidCredentials: "Incorrect Password",
}

// Code returns the machine-readable code.
func (o Outcome) Code() string { return string(o) }

// Message returns the fixed human-readable text for o.
func (o Outcome) Message() string { return outcomeMessages[o] }

// Success reports whether o means the operation was carried out.
func (o Outcome) Success() bool {
	switch o {
	case OutcomeCreated, OutcomeAuthenticated, OutcomeAccepted, OutcomeDeleted:
		return true
	}
	return false
}

// Outcomes lists every outcome in a stable order.
func Outcomes() []Outcome {
	return []Outcome{
		OutcomeCreated, OutcomeAuthenticated, OutcomeAccepted, OutcomeDeleted,
		OutcomeNoChangeRequested, OutcomeNotFound, OutcomeEditForbidden,
		OutcomeDeleteForbidden, OutcomeConflict, OutcomeInvalidCredentials,
	}
}
