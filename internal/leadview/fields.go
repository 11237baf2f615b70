package leadview

import (
	"time"

	"lead-service/internal/model"
)

// Field identifies a sortable lead column.
type Field string

const (
	FieldName          Field = "name"
	FieldPhone         Field = "phone"
	FieldEmail         Field = "email"
	FieldStatus        Field = "status"
	FieldQualification Field = "qualification"
	FieldInterestField Field = "interestField"
	FieldSource        Field = "source"
	FieldAssignedTo    Field = "assignedTo"
	FieldCreatedAt     Field = "createdAt"
	FieldUpdatedAt     Field = "updatedAt"
)

// fieldAccessors maps each sortable field to a typed accessor, so sorting
// never reads struct fields by runtime string key. Timestamps compare by
// their RFC 3339 rendering, which orders chronologically.
var fieldAccessors = map[Field]func(*model.Lead) string{
	FieldName:          func(l *model.Lead) string { return l.Name },
	FieldPhone:         func(l *model.Lead) string { return l.Phone },
	FieldEmail:         func(l *model.Lead) string { return l.Email },
	FieldStatus:        func(l *model.Lead) string { return l.Status },
	FieldQualification: func(l *model.Lead) string { return l.Qualification },
	FieldInterestField: func(l *model.Lead) string { return l.InterestField },
	FieldSource:        func(l *model.Lead) string { return l.Source },
	FieldAssignedTo:    func(l *model.Lead) string { return l.AssignedTo },
	FieldCreatedAt:     func(l *model.Lead) string { return l.CreatedAt.UTC().Format(time.RFC3339Nano) },
	FieldUpdatedAt:     func(l *model.Lead) string { return l.UpdatedAt.UTC().Format(time.RFC3339Nano) },
}

// value returns the field's value for a lead, or "" when the field is not a
// known sortable column.
func (f Field) value(l *model.Lead) string {
	if get, ok := fieldAccessors[f]; ok {
		return get(l)
	}
	return ""
}
