// Package model defines the data structures used throughout the application.
package model

// The web client was originally written against a document database driver
// and parses that driver's raw acknowledgment objects (result.insertedId,
// result.deletedCount, ...). These structs reproduce those wire shapes so
// the client keeps working unchanged.

// InsertResult acknowledges a successful insert and carries the
// store-assigned identifier of the new record.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult acknowledges an update or upsert.
//
// MatchedCount is how many records the filter matched (0 or 1 here, since
// every update targets a single id). UpsertedID is set only when an upsert
// created a new record instead of updating an existing one; omitempty keeps
// it out of plain-update responses, matching the original driver.
type UpdateResult struct {
	Acknowledged  bool   `json:"acknowledged"`
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

// DeleteResult acknowledges a delete. Deleting an id that doesn't exist is
// not an error — DeletedCount is simply 0.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
