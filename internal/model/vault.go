package model

// VaultEntry - a single stored credential.
type VaultEntry struct {
	ID        string `json:"id"`
	Service   string `json:"service"`
	Username  string `json:"username,omitempty"`
	Password  string `json:"password"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

// Activity is one entry of the append-only generation log. Content holds a
// reference to previously generated material.
type Activity struct {
	Date    int64  `json:"date"`
	Content string `json:"content"`
}
