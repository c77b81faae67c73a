package model

import "time"

// SheetCache is one cached worksheet grid. SheetKey identifies the
// worksheet (spreadsheet ID plus gid); the grid is stored as fetched,
// before any parsing.
type SheetCache struct {
	ID        string     `json:"id"`
	SheetKey  string     `json:"sheetKey"`
	Grid      [][]string `json:"grid"`
	FetchedAt time.Time  `json:"fetchedAt"`
	ExpiresAt time.Time  `json:"expiresAt"`
}
