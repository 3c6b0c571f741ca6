package db

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"gatehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var MongoClient *mongo.Client
var MongoDatabase *mongo.Database

// GetCollection returns a collection by name
func GetCollection(collectionName string) *mongo.Collection {
	return MongoDatabase.Collection(collectionName)
}

// extractDBName parses the database name from the URI, defaulting to "gatehub"
func extractDBName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "gatehub"
	}
	if u.Path != "" && u.Path != "/" {
		return u.Path[1:] // Trim leading '/'
	}
	return "gatehub"
}

// ConnectMongoDB establishes a connection to MongoDB using the provided URI
func ConnectMongoDB(uri string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Verify connection with a ping
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	MongoClient = client
	dbName := extractDBName(uri)
	log.Printf("Using database: %s", dbName)

	MongoDatabase = client.Database(dbName)
	return nil
}

// GetProject fetches one project by its hex id
func GetProject(ctx context.Context, projectID string) (*models.Project, error) {
	oid, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return nil, fmt.Errorf("invalid project id: %w", err)
	}

	var project models.Project
	err = GetCollection("projects").FindOne(ctx, bson.M{"_id": oid}).Decode(&project)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}
	return &project, nil
}

// GetProjectAssessments fetches a project's criterion assessments. The sort
// is fixed so repeated reads hand the scoring engine an identical snapshot.
func GetProjectAssessments(ctx context.Context, projectID string) ([]models.CriterionAssessment, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "criterionCode", Value: 1},
		{Key: "_id", Value: 1},
	})
	cursor, err := GetCollection("assessments").Find(ctx, bson.M{"projectId": projectID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assessments: %w", err)
	}
	defer cursor.Close(ctx)

	var assessments []models.CriterionAssessment
	if err := cursor.All(ctx, &assessments); err != nil {
		return nil, fmt.Errorf("failed to decode assessments: %w", err)
	}
	return assessments, nil
}

// GetEvidenceRequirements fetches the static evidence-requirement catalog for
// one criterion, in display order.
func GetEvidenceRequirements(ctx context.Context, criterionID int) ([]models.EvidenceRequirement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "displayOrder", Value: 1}})
	cursor, err := GetCollection("evidence_requirements").Find(ctx, bson.M{"criterionId": criterionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch evidence requirements: %w", err)
	}
	defer cursor.Close(ctx)

	var reqs []models.EvidenceRequirement
	if err := cursor.All(ctx, &reqs); err != nil {
		return nil, fmt.Errorf("failed to decode evidence requirements: %w", err)
	}
	return reqs, nil
}

// GetProjectDocuments fetches a project's uploaded-document metadata
func GetProjectDocuments(ctx context.Context, projectID string) ([]models.ProjectDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: -1}})
	cursor, err := GetCollection("documents").Find(ctx, bson.M{"projectId": projectID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch documents: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []models.ProjectDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}
	return docs, nil
}
