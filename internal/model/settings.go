package model

// Backend types accepted in DbConnectionConfig.Type.
const (
	BackendSupabase = "supabase"
	BackendFirebase = "firebase"
	BackendCustom   = "custom"
)

// DbConnectionConfig describes the remote backend used to mirror records.
// Owned by Settings; passed read-only into the storage layer.
type DbConnectionConfig struct {
	URL     string `json:"url"`
	APIKey  string `json:"api_key,omitempty"`
	Enabled bool   `json:"enabled"`
	Type    string `json:"type"`
}

// CustomCharacters overrides the built-in character classes used for
// generation. Empty fields fall back to the defaults.
type CustomCharacters struct {
	Lowercase string `json:"lowercase,omitempty"`
	Uppercase string `json:"uppercase,omitempty"`
	Digits    string `json:"digits,omitempty"`
	Special   string `json:"special,omitempty"`
}

// DefaultPasswordConfig is the generation shape applied when the user has not
// picked explicit flags.
type DefaultPasswordConfig struct {
	Length         int  `json:"length"`
	IncludeLower   bool `json:"include_lower"`
	IncludeUpper   bool `json:"include_upper"`
	IncludeDigits  bool `json:"include_digits"`
	IncludeSpecial bool `json:"include_special"`
}

// Settings is the persisted user settings value stored under KeySettings.
type Settings struct {
	DbConnection    DbConnectionConfig    `json:"db_connection"`
	CustomChars     CustomCharacters      `json:"custom_chars"`
	DefaultPassword DefaultPasswordConfig `json:"default_password"`
}

// DefaultSettings returns the settings value used when nothing has been saved yet.
func DefaultSettings() Settings {
	return Settings{
		DefaultPassword: DefaultPasswordConfig{
			Length:         16,
			IncludeLower:   true,
			IncludeUpper:   true,
			IncludeDigits:  true,
			IncludeSpecial: false,
		},
	}
}
