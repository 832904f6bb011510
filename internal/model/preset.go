package model

// PasswordPreset stores a named set of generation parameters, equivalent to an
// explicit generation request.
type PasswordPreset struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Length         int    `json:"length"`
	IncludeLower   bool   `json:"include_lower"`
	IncludeUpper   bool   `json:"include_upper"`
	IncludeDigits  bool   `json:"include_digits"`
	IncludeSpecial bool   `json:"include_special"`
}
