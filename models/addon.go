package models

// Addon is a fixed catalog entry for an extra service a user can attach
// to a booking (album, drone coverage, second shooter, ...).
type Addon struct {
	ID          int    `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	UnitPrice   Money  `bson:"unit_price" json:"unitPrice"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// AddonSelection maps addon id to a quantity in [1,10]. Quantity zero means
// "not selected" and is never stored.
type AddonSelection map[int]int

// AddonLine is one priced addon row on a confirmed booking.
type AddonLine struct {
	AddonID   int    `bson:"addon_id" json:"addonId"`
	Name      string `bson:"name" json:"name"`
	Quantity  int    `bson:"quantity" json:"quantity"`
	UnitPrice Money  `bson:"unit_price" json:"unitPrice"`
	LineTotal Money  `bson:"line_total" json:"lineTotal"`
}
