package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Project holds the metadata the report layer needs about a programme under
// assessment.
type Project struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Gate      string             `bson:"gate" json:"gate"` // e.g. "gate-3"
	GateName  string             `bson:"gateName,omitempty" json:"gateName,omitempty"`
	CreatedAt int64              `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
