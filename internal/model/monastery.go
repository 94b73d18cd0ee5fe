package model

// Monastery is a single entry of the monastery catalog.  Records are
// created once from seed data at startup and never change afterwards.
//
// Fields:
//
//	ID       – unique, stable identifier.
//	Name     – display name, e.g. "Rumtek Monastery".
//	Location – town or district the monastery is in.
//	Century  – free-text period label such as "16th Century".
//	Rating   – visitor rating, expected between 0.0 and 5.0 (not enforced).
type Monastery struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Century  string  `json:"century"`
	Rating   float64 `json:"rating"`
}
