package client

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9]{10}$`)
)

// Form is the lead form as the user fills it in, serialized as the flat
// field map the create endpoint expects.
type Form struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	AltPhone      string `json:"altPhone,omitempty"`
	Email         string `json:"email"`
	AltEmail      string `json:"altEmail,omitempty"`
	Status        string `json:"status"`
	Qualification string `json:"qualification"`
	InterestField string `json:"interestField"`
	Source        string `json:"source"`
	AssignedTo    string `json:"assignedTo"`
	JobInterest   string `json:"jobInterest,omitempty"`
	State         string `json:"state,omitempty"`
	City          string `json:"city,omitempty"`
	PassoutYear   string `json:"passoutYear,omitempty"`
	HeardFrom     string `json:"heardFrom,omitempty"`
}

// FormError maps field names to user-facing messages, like the form library
// the original UI used.
type FormError map[string]string

func (e FormError) Error() string {
	msgs := make([]string, 0, len(e))
	for _, m := range e {
		msgs = append(msgs, m)
	}
	return "form: " + strings.Join(msgs, "; ")
}

// Validate runs the pre-submission checks. These are advisory UX checks: the
// server only re-checks presence, not format. Returns nil when the form is
// submittable.
func (f *Form) Validate() FormError {
	errs := FormError{}

	if f.Name == "" {
		errs["name"] = "Name is required"
	}
	switch {
	case f.Email == "":
		errs["email"] = "Email is required"
	case !emailRe.MatchString(f.Email):
		errs["email"] = "Invalid email"
	}
	switch {
	case f.Phone == "":
		errs["phone"] = "Phone is required"
	case !phoneRe.MatchString(f.Phone):
		errs["phone"] = "Phone must be 10 digits"
	}
	if f.AltEmail != "" && !emailRe.MatchString(f.AltEmail) {
		errs["altEmail"] = "Invalid email"
	}
	if f.Status == "" {
		errs["status"] = "Status is required"
	}
	if f.Qualification == "" {
		errs["qualification"] = "Qualification is required"
	}
	if f.InterestField == "" {
		errs["interestField"] = "Interest field is required"
	}
	if f.Source == "" {
		errs["source"] = "Source is required"
	}
	if f.AssignedTo == "" {
		errs["assignedTo"] = "Assigned To is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
