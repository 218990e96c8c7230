package models

// SupplyUpdate is the set of fields the update route overwrites. Values are
// written as sent; a field missing from the request is set to null.
type SupplyUpdate struct {
	Title    interface{} `bson:"title" json:"title"`
	Category interface{} `bson:"category" json:"category"`
	Amount   interface{} `bson:"amount" json:"amount"`
}
