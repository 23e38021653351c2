// Package model defines the data structures used throughout the application.
package model

import "time"

// Recommendation represents one user endorsing an alternative product for
// somebody else's query.
//
// The record denormalizes a snapshot of the parent query (title, product
// name, image) so the client can render lists without a join. QueriesID
// references the parent Query; Email is the query owner's address and
// RecommendationEmail is the endorser's. The guarded listing routes filter
// on those two email fields ("recommendations for me" vs "my
// recommendations").
//
// Deleting a recommendation does NOT decrement the parent query's
// recommendationCount — the client calls the decrement endpoint itself.
type Recommendation struct {
	ID                     string    `json:"_id"`
	QueriesID              string    `json:"queriesId"`
	QueryTitle             string    `json:"queryTitle"`
	ProductName            string    `json:"productName"`
	ProductImage           string    `json:"productImage"`
	RecommendationTitle    string    `json:"recommendationTitle"`
	RecommendedProductName string    `json:"recommendedProductName"`
	RecommendedImage       string    `json:"recommendedImage"`
	RecommendationReason   string    `json:"recommendationReason"`
	RecommendationEmail    string    `json:"recommendationEmail"` // endorser
	Email                  string    `json:"email"`               // query owner
	CreatedAt              time.Time `json:"createdAt"`
}
