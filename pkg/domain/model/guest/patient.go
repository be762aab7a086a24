package guest

import (
	"encoding/json"
	"strconv"
	"strings"
)

// PatientInfo holds the normalized patient attributes of a guest session.
type PatientInfo struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Language string `json:"language"`
	Phone    string `json:"phone"`
}

// DefaultPatientInfo returns the attributes of a freshly created session.
func DefaultPatientInfo() PatientInfo {
	return PatientInfo{
		Name:     DefaultPatientName,
		Age:      0,
		Gender:   DefaultPatientGender,
		Language: DefaultPatientLanguage,
		Phone:    "",
	}
}

// Age accepts both JSON numbers and numeric strings. Non-convertible input
// normalizes to zero instead of failing the request, and negative values are
// clamped to zero.
type Age int

func (a *Age) UnmarshalJSON(data []byte) error {
	*a = 0

	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		if n > 0 {
			*a = Age(n)
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && n > 0 {
			*a = Age(n)
		}
		return nil
	}

	// Anything else (object, array, bool, null) coerces to zero.
	return nil
}

// PatientUpdate is a partial patient-attribute payload. Nil fields were not
// supplied by the caller and must not overwrite stored values. Unknown keys
// are dropped by the JSON decoder.
type PatientUpdate struct {
	Name     *string `json:"name"`
	Age      *Age    `json:"age"`
	Gender   *string `json:"gender"`
	Language *string `json:"language"`
	Phone    *string `json:"phone"`
}

// ApplyTo merges the supplied fields into info and returns the result.
func (u PatientUpdate) ApplyTo(info PatientInfo) PatientInfo {
	if u.Name != nil {
		info.Name = *u.Name
	}
	if u.Age != nil {
		info.Age = int(*u.Age)
	}
	if u.Gender != nil {
		info.Gender = *u.Gender
	}
	if u.Language != nil {
		info.Language = *u.Language
	}
	if u.Phone != nil {
		info.Phone = *u.Phone
	}
	return info
}

// Materialize builds the attributes for a first-time creation: defaults for
// omitted fields, supplied values for the rest.
func (u PatientUpdate) Materialize() PatientInfo {
	return u.ApplyTo(DefaultPatientInfo())
}
