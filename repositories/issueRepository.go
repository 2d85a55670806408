package repositories

import (
	"context"
	"regexp"
	"time"

	"civicconnect-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IssueFilter narrows an issue listing. Zero-valued (or "all") fields are
// ignored; active fields combine conjunctively.
type IssueFilter struct {
	Status     string
	Category   string
	Urgency    string
	Search     string
	ReportedBy string
}

// IssueRepository provides indexed access to the civicIssues collection.
type IssueRepository interface {
	List(ctx context.Context, filter IssueFilter) ([]models.Issue, error)
	GetByID(ctx context.Context, id int64) (models.Issue, error)
	Create(ctx context.Context, issue models.Issue) (models.Issue, error)
	UpdateStatus(ctx context.Context, id int64, status models.IssueStatus, notes string) error
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context, reportedBy string) (map[models.IssueStatus]int64, error)
}

type mongoIssueRepository struct {
	collection *mongo.Collection
}

// NewIssueRepository returns an IssueRepository backed by the civicIssues collection
func NewIssueRepository(db *mongo.Database) IssueRepository {
	return &mongoIssueRepository{collection: db.Collection("civicIssues")}
}

// buildIssueFilter translates an IssueFilter into a Mongo query document.
func buildIssueFilter(f IssueFilter) bson.M {
	filter := bson.M{}

	if f.Status != "" && f.Status != "all" {
		filter["status"] = f.Status
	}
	if f.Category != "" && f.Category != "all" {
		filter["category"] = f.Category
	}
	if f.Urgency != "" && f.Urgency != "all" {
		filter["urgency"] = f.Urgency
	}
	if f.ReportedBy != "" {
		filter["reportedBy"] = f.ReportedBy
	}
	if f.Search != "" {
		pattern := regexp.QuoteMeta(f.Search)
		filter["$or"] = []bson.M{
			{"title": bson.M{"$regex": pattern, "$options": "i"}},
			{"description": bson.M{"$regex": pattern, "$options": "i"}},
			{"reportedBy": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}

	return filter
}

func (r *mongoIssueRepository) List(ctx context.Context, filter IssueFilter) ([]models.Issue, error) {
	// Newest first: ids are creation-time derived, so _id descending
	// is creation order descending.
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})

	cursor, err := r.collection.Find(ctx, buildIssueFilter(filter), findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	issues := make([]models.Issue, 0)
	if err := cursor.All(ctx, &issues); err != nil {
		return nil, err
	}

	return issues, nil
}

func (r *mongoIssueRepository) GetByID(ctx context.Context, id int64) (models.Issue, error) {
	var issue models.Issue
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&issue)
	if err == mongo.ErrNoDocuments {
		return models.Issue{}, models.ErrNotFound
	}
	if err != nil {
		return models.Issue{}, err
	}
	return issue, nil
}

func (r *mongoIssueRepository) Create(ctx context.Context, issue models.Issue) (models.Issue, error) {
	issue.Timestamp = time.Now()
	issue.Status = models.Reported
	issue.ID = issue.Timestamp.UnixMilli()

	for {
		_, err := r.collection.InsertOne(ctx, issue)
		if err == nil {
			return issue, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return models.Issue{}, err
		}
		// Two reports in the same millisecond: bump until the id is free.
		issue.ID++
	}
}

func (r *mongoIssueRepository) UpdateStatus(ctx context.Context, id int64, status models.IssueStatus, notes string) error {
	update := bson.M{"$set": bson.M{"status": status, "notes": notes}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *mongoIssueRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *mongoIssueRepository) CountByStatus(ctx context.Context, reportedBy string) (map[models.IssueStatus]int64, error) {
	match := bson.M{}
	if reportedBy != "" {
		match["reportedBy"] = reportedBy
	}

	pipeline := []bson.M{
		{"$match": match},
		{"$group": bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status models.IssueStatus `bson:"_id"`
		Count  int64              `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[models.IssueStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	return counts, nil
}
