package model

import (
	"time"

	"gorm.io/gorm"
)

// Lead status values offered by the client UI. The server stores status as
// free text and does not enforce this set.
const (
	StatusNew       = "New"
	StatusFollowUp  = "Follow-Up"
	StatusQualified = "Qualified"
	StatusConverted = "Converted"
)

// Option lists shown by the client form. Informational only, like the status
// values above.
var (
	StatusOptions        = []string{StatusFollowUp, StatusQualified, StatusConverted, StatusNew}
	QualificationOptions = []string{"High School", "Bachelors", "Masters", "PhD", "Other"}
	InterestOptions      = []string{"Web Development", "Mobile Development", "Data Science", "UI/UX Design", "Digital Marketing"}
	SourceOptions        = []string{"Website", "Social Media", "Email Campaign", "Cold Call", "Referral"}
	AssignedToOptions    = []string{"John Doe", "Jane Smith", "Emily Davis", "Robert Johnson"}
	JobInterestOptions   = []string{"Full-time", "Part-time", "Contract", "Internship"}
)

// Lead represents the lead record stored in the database
type Lead struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"type:varchar(100);index"`
	Phone         string         `json:"phone" gorm:"type:varchar(20)"`
	AltPhone      string         `json:"altPhone" gorm:"type:varchar(20)"`
	Email         string         `json:"email" gorm:"type:varchar(100);index"`
	AltEmail      string         `json:"altEmail" gorm:"type:varchar(100)"`
	Status        string         `json:"status" gorm:"type:varchar(50);index"`
	Qualification string         `json:"qualification" gorm:"type:varchar(100)"`
	InterestField string         `json:"interestField" gorm:"type:varchar(100)"`
	Source        string         `json:"source" gorm:"type:varchar(100)"`
	AssignedTo    string         `json:"assignedTo" gorm:"type:varchar(100)"`
	JobInterest   string         `json:"jobInterest" gorm:"type:varchar(100)"`
	State         string         `json:"state" gorm:"type:varchar(100)"`
	City          string         `json:"city" gorm:"type:varchar(100)"`
	PassoutYear   string         `json:"passoutYear" gorm:"type:varchar(10)"`
	HeardFrom     string         `json:"heardFrom" gorm:"type:varchar(100)"`
	CreatedAt     time.Time      `json:"createdAt" gorm:"index"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// RequiredField pairs a wire-level field name with a typed accessor, so
// validation never reads struct fields by runtime string key.
type RequiredField struct {
	Name string
	Get  func(*Lead) string
}

// RequiredFields lists the fields a lead must carry to be persisted, in the
// order they are checked.
var RequiredFields = []RequiredField{
	{"name", func(l *Lead) string { return l.Name }},
	{"phone", func(l *Lead) string { return l.Phone }},
	{"email", func(l *Lead) string { return l.Email }},
	{"status", func(l *Lead) string { return l.Status }},
	{"qualification", func(l *Lead) string { return l.Qualification }},
	{"interestField", func(l *Lead) string { return l.InterestField }},
	{"source", func(l *Lead) string { return l.Source }},
	{"assignedTo", func(l *Lead) string { return l.AssignedTo }},
}

// ValidationError reports the first required field found empty on create.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}

// Validate checks the required fields in order and returns a
// *ValidationError for the first empty one. Checks stop at the first
// violation; the create contract names exactly one missing field.
func (l *Lead) Validate() error {
	for _, f := range RequiredFields {
		if f.Get(l) == "" {
			return &ValidationError{Field: f.Name}
		}
	}
	return nil
}
