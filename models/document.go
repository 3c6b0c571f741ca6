package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ProjectDocument is the metadata of an uploaded document. Storage mechanics
// live elsewhere; the engine only ever sees these fields.
type ProjectDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ProjectID    string             `bson:"projectId" json:"projectId"`
	Name         string             `bson:"name" json:"name"`
	FileName     string             `bson:"fileName" json:"file_name"`
	DocumentType string             `bson:"documentType,omitempty" json:"document_type,omitempty"`
	FileSize     int64              `bson:"fileSize,omitempty" json:"file_size,omitempty"`
	UploadedAt   int64              `bson:"uploadedAt,omitempty" json:"uploadedAt,omitempty"`
}

// RecommendedDocument is a static per-gate catalog entry. Uploaded documents
// are matched against it by name heuristics, never by a stored foreign key.
type RecommendedDocument struct {
	ID          string `bson:"id" json:"id" yaml:"id"`
	Name        string `bson:"name" json:"name" yaml:"name"`
	Description string `bson:"description" json:"description" yaml:"description"`
}

// GateCatalog is the recommended-document checklist for one gateway review.
type GateCatalog struct {
	Gate      string                `bson:"gate" json:"gate" yaml:"gate"`
	GateName  string                `bson:"gateName" json:"gateName" yaml:"gateName"`
	Documents []RecommendedDocument `bson:"documents" json:"documents" yaml:"documents"`
}
