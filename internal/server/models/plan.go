package models

// ============================================================
// Plan Model
// ============================================================

type Plan struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	Capture   []byte `json:"-"`
}
