package model

// Event is a cultural event held at a monastery.  Monastery is a plain
// label; it is not checked against the monastery catalog.
//
// Fields:
//
//	ID          – unique, stable identifier.
//	Name        – event name, e.g. "Losoong Festival".
//	Monastery   – name of the hosting monastery.
//	Date        – calendar day of the event.
//	Description – short free-text description.
type Event struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Monastery   string `json:"monastery"`
	Date        Date   `json:"date"`
	Description string `json:"description"`
}
