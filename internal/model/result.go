package model

// InsertResult mirrors the acknowledgement returned after creating a record
type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

// DeleteResult reports how many records a delete removed
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// UpdateResult reports how many records matched and changed
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}
