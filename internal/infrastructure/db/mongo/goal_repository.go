package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/goaltracker/goal-tracker-api/internal/core/domain"
)

const goalsCollection = "goals"

// GoalRepository is the MongoDB-backed goal store.
type GoalRepository struct {
	coll *mongo.Collection
}

func NewGoalRepository(db *mongo.Database) *GoalRepository {
	return &GoalRepository{coll: db.Collection(goalsCollection)}
}

type mongoGoal struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user"`
	Text      string             `bson:"text"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (mg *mongoGoal) toDomain() *domain.Goal {
	return &domain.Goal{
		ID:        mg.ID.Hex(),
		UserID:    mg.UserID.Hex(),
		Text:      mg.Text,
		CreatedAt: mg.CreatedAt,
		UpdatedAt: mg.UpdatedAt,
	}
}

func (r *GoalRepository) Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	owner, err := primitive.ObjectIDFromHex(goal.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, mongoGoal{
		UserID:    owner,
		Text:      goal.Text,
		CreatedAt: goal.CreatedAt,
		UpdatedAt: goal.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("insert goal: %w", err)
	}

	created := *goal
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// FindByID loads a goal by hex object id. A malformed id fails fast with
// ErrGoalNotFound; the store is never queried.
func (r *GoalRepository) FindByID(ctx context.Context, id string) (*domain.Goal, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrGoalNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mg mongoGoal
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, fmt.Errorf("find goal: %w", err)
	}
	return mg.toDomain(), nil
}

func (r *GoalRepository) ListByOwner(ctx context.Context, userID string) ([]*domain.Goal, error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"user": owner})
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer cur.Close(ctx)

	goals := []*domain.Goal{}
	for cur.Next(ctx) {
		var mg mongoGoal
		if err := cur.Decode(&mg); err != nil {
			return nil, fmt.Errorf("decode goal: %w", err)
		}
		goals = append(goals, mg.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}

func (r *GoalRepository) UpdateText(ctx context.Context, id, text string) (*domain.Goal, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrGoalNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"text": text, "updated_at": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mg mongoGoal
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&mg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, fmt.Errorf("update goal: %w", err)
	}
	return mg.toDomain(), nil
}

func (r *GoalRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrGoalNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}

// EnsureIndexes creates the owner index used by ListByOwner.
func (r *GoalRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user", Value: 1}},
	})
	return err
}
