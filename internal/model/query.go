// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — similar to classes in other languages,
// but without inheritance. Go favours composition over inheritance.
package model

import "time"

// Query represents a boycott report submitted by a user: "here is a product,
// here is why I'm boycotting it, recommend me an alternative".
//
// The `json:"..."` struct tags control how encoding/json serializes the
// struct. Field names match what the web client already sends and expects,
// so changing a tag here is a breaking API change.
//
// RecommendationCount is mutated only through the dedicated counter
// endpoints (PATCH /queries/{id} and PATCH /queries/desRecom/{id}).
// It is intended to track the number of live Recommendation records
// pointing at this query, but nothing enforces that — the client drives
// the counter with a separate call after creating or deleting a
// recommendation, so the two can drift.
type Query struct {
	ID                  string    `json:"_id"`
	ProductName         string    `json:"productName"`
	ProductBrand        string    `json:"productBrand"`
	QueryTitle          string    `json:"queryTitle"`
	BoycottingDetails   string    `json:"boycottingDetails"`
	ImageURL            string    `json:"imageURL"`
	Email               string    `json:"email"` // owner's email
	RecommendationCount int       `json:"recommendationCount"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
