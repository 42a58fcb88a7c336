package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Field names a single survey question
type Field string

const (
	FieldCity      Field = "city"
	FieldAge       Field = "age"
	FieldWorkHours Field = "workHours"
	FieldHasCard   Field = "hasCard"
	FieldGender    Field = "gender"
	FieldName      Field = "name"
)

// Enum values for choice questions
const (
	HasCardYes   = "yes"
	HasCardNo    = "no"
	GenderMale   = "male"
	GenderFemale = "female"
)

// StepCount is the number of questions in the survey
const StepCount = 6

// stepFields defines both question order and validation target
var stepFields = [StepCount]Field{
	FieldCity,
	FieldAge,
	FieldWorkHours,
	FieldHasCard,
	FieldGender,
	FieldName,
}

// FieldForStep returns the field bound to a 1-based step
func FieldForStep(step int) (Field, bool) {
	if step < 1 || step > StepCount {
		return "", false
	}
	return stepFields[step-1], true
}

// SurveyRecord holds the answers of one respondent
type SurveyRecord struct {
	City      string `json:"city"`
	Age       string `json:"age"`
	WorkHours string `json:"workHours"`
	HasCard   string `json:"hasCard"`
	Gender    string `json:"gender"`
	Name      string `json:"name"`
}

// Get returns the value of a field
func (r SurveyRecord) Get(f Field) string {
	switch f {
	case FieldCity:
		return r.City
	case FieldAge:
		return r.Age
	case FieldWorkHours:
		return r.WorkHours
	case FieldHasCard:
		return r.HasCard
	case FieldGender:
		return r.Gender
	case FieldName:
		return r.Name
	}
	return ""
}

// Set overwrites a field. Unknown fields are ignored.
func (r *SurveyRecord) Set(f Field, value string) {
	switch f {
	case FieldCity:
		r.City = value
	case FieldAge:
		r.Age = value
	case FieldWorkHours:
		r.WorkHours = value
	case FieldHasCard:
		r.HasCard = value
	case FieldGender:
		r.Gender = value
	case FieldName:
		r.Name = value
	}
}

// Answered reports whether a field is non-empty. Values are not trimmed.
func (r SurveyRecord) Answered(f Field) bool {
	return r.Get(f) != ""
}

// Missing returns the first unanswered field in step order
func (r SurveyRecord) Missing() (Field, bool) {
	for _, f := range stepFields {
		if !r.Answered(f) {
			return f, true
		}
	}
	return "", false
}

// Response is a stored record as returned by the listing endpoint
type Response struct {
	SurveyRecord
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// timestampLayouts are tried in order. Zone-less values are taken as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// ParseTimestamp parses RFC 3339 and zone-less ISO 8601 timestamps
func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// UnmarshalJSON decodes a response. An unreadable created_at is dropped
// instead of failing the whole record.
func (r *Response) UnmarshalJSON(data []byte) error {
	var raw struct {
		SurveyRecord
		CreatedAt json.RawMessage `json:"created_at"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.SurveyRecord = raw.SurveyRecord
	r.CreatedAt = nil

	var value string
	if json.Unmarshal(raw.CreatedAt, &value) != nil {
		return nil
	}
	if t, ok := ParseTimestamp(value); ok {
		r.CreatedAt = &t
	}
	return nil
}
