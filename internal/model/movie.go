package model

// Movie represents a single entry in a user's catalog or favorites list.
// It is a plain value object: equality and copy are structural, which is
// what the edit flow relies on when it changes one field and keeps the rest
// (copy the value, overwrite the field, send the whole record back).
//
// Fields:
//  ID            – opaque identifier assigned by the store on insert.
//                  Empty on client-constructed movies that have not been
//                  persisted yet.
//  Title         – movie title shown in list rows.
//  Studio        – producing studio shown in list rows.
//  Description   – free-form synopsis shown on the detail screen.
//  ImageURL      – poster URL resolved through the image loader.
//  CriticsRating – critics score shown in list rows.
//  OwnerID       – id of the authenticated user the record belongs to.
//                  Stamped by the gateway on create; never trusted from input.
type Movie struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Studio        string  `json:"studio"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"image_url"`
	CriticsRating float64 `json:"critics_rating"`
	OwnerID       string  `json:"owner_id"`
}

// Persisted reports whether the movie has been assigned an id by the store.
func (m Movie) Persisted() bool { return m.ID != "" }
