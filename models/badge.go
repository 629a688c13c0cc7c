package models

// Badge is a catalog entry; earned badge ids live in UserStats.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"` // emoji
	Color       string `json:"color"`
	Requirement string `json:"requirement"`
}
