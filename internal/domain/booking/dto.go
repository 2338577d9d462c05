package booking

import (
	"github.com/flosclinic/attendance-bot/internal/pkg/validator"
)

// ConfirmationRequest is the flat booking description posted by the external
// dashboard. Doctor and Notes are optional; empty means absent.
type ConfirmationRequest struct {
	ChannelID       string `json:"channelId"`
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	Treatment       string `json:"treatment"`
	Doctor          string `json:"doctor,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

func (r *ConfirmationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ChannelID) {
		errs = append(errs, validator.ValidationError{
			Field:   "channelId",
			Message: "channelId is required",
		})
	}

	if validator.IsEmpty(r.CustomerName) {
		errs = append(errs, validator.ValidationError{
			Field:   "customerName",
			Message: "customerName is required",
		})
	}

	if validator.IsEmpty(r.AppointmentDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "appointmentDate",
			Message: "appointmentDate is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
