package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcome_MessagesAndCodes(t *testing.T) {
	want := map[Outcome]string{
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

	assert.Len(t, Outcomes(), len(want))
	for _, o := range Outcomes() {
		assert.Equal(t, want[o], o.Message(), o.Code())
		assert.Equal(t, string(o), o.Code())
	}
	assert.Empty(t, Outcome("SOMETHING_ELSE").Message())
}

func TestOutcome_Success(t *testing.T) {
	for _, o := range Outcomes() {
		switch o {
		case OutcomeCreated, OutcomeAuthenticated, OutcomeAccepted, OutcomeDeleted:
			assert.True(t, o.Success(), o)
		default:
			assert.False(t, o.Success(), o)
		}
	}
}
