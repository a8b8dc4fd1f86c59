package models

// Player is a room member. Balance is held in minor currency units and is
// never negative. A Player belongs to exactly one Room and dies with its
// membership.
type Player struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar"`
	Balance int64  `json:"balance"`
	Color   string `json:"color"`
}
