package client

import "testing"

func validForm() Form {
	return Form{
		Name:          "Ann",
		Phone:         "1234567890",
		Email:         "a@x.com",
		Status:        "New",
		Qualification: "Bachelors",
		InterestField: "Web Development",
		Source:        "Website",
		AssignedTo:    "John Doe",
	}
}

func TestFormValidate_ValidForm(t *testing.T) {
	f := validForm()
	if errs := f.Validate(); errs != nil {
		t.Errorf("expected valid form, got %v", errs)
	}
}

func TestFormValidate_Messages(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Form)
		field   string
		message string
	}{
		{"missing name", func(f *Form) { f.Name = "" }, "name", "Name is required"},
		{"missing email", func(f *Form) { f.Email = "" }, "email", "Email is required"},
		{"bad email", func(f *Form) { f.Email = "not-an-email" }, "email", "Invalid email"},
		{"missing phone", func(f *Form) { f.Phone = "" }, "phone", "Phone is required"},
		{"short phone", func(f *Form) { f.Phone = "12345" }, "phone", "Phone must be 10 digits"},
		{"alpha phone", func(f *Form) { f.Phone = "12345abcde" }, "phone", "Phone must be 10 digits"},
		{"bad alt email", func(f *Form) { f.AltEmail = "nope" }, "altEmail", "Invalid email"},
		{"missing status", func(f *Form) { f.Status = "" }, "status", "Status is required"},
		{"missing qualification", func(f *Form) { f.Qualification = "" }, "qualification", "Qualification is required"},
		{"missing interest", func(f *Form) { f.InterestField = "" }, "interestField", "Interest field is required"},
		{"missing source", func(f *Form) { f.Source = "" }, "source", "Source is required"},
		{"missing assignee", func(f *Form) { f.AssignedTo = "" }, "assignedTo", "Assigned To is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)
			errs := f.Validate()
			if errs == nil {
				t.Fatal("expected validation error, got nil")
			}
			if errs[tt.field] != tt.message {
				t.Errorf("expected %q for %s, got %q", tt.message, tt.field, errs[tt.field])
			}
		})
	}
}

func TestFormValidate_OptionalFieldsSkipped(t *testing.T) {
	f := validForm()
	f.AltPhone = ""
	f.AltEmail = ""
	if errs := f.Validate(); errs != nil {
		t.Errorf("empty optional fields must pass, got %v", errs)
	}

	f.AltEmail = "alt@x.com"
	if errs := f.Validate(); errs != nil {
		t.Errorf("valid altEmail must pass, got %v", errs)
	}
}

func TestFormValidate_CollectsAllViolations(t *testing.T) {
	// Unlike the server, the form reports every broken field at once.
	f := Form{}
	errs := f.Validate()
	if len(errs) != 8 {
		t.Errorf("expected 8 field errors on an empty form, got %d: %v", len(errs), errs)
	}
}
