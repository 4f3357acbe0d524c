package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fintrack/operations-api/internal/core/domain"
)

const operationsCollection = "operations"

type OperationRepository struct {
	coll *mongo.Collection
}

func NewOperationRepository(db *mongo.Database) *OperationRepository {
	return &OperationRepository{coll: db.Collection(operationsCollection)}
}

// Amounts are stored as fixed-point decimal strings so no binary-float
// rounding drift can accumulate at rest.
type mongoOperation struct {
	ID        string    `bson:"_id"`
	Type      string    `bson:"type"`
	Amount    string    `bson:"amount"`
	Currency  string    `bson:"currency"`
	UserID    string    `bson:"user_id"`
	CreatedAt time.Time `bson:"created_at"`
}

// Insert writes a single operation document. A single-document insert is the
// atomic boundary: the record is either entirely visible or entirely absent.
func (r *OperationRepository) Insert(ctx context.Context, op *domain.Operation) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoOperation{
		ID:        op.ID,
		Type:      string(op.Type),
		Amount:    op.Amount.StringFixed(domain.AmountScale),
		Currency:  op.Currency,
		UserID:    op.UserID,
		CreatedAt: op.CreatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert operation: %w", err)
	}
	return nil
}

// FindByUser returns all operations owned by userID ordered by creation time
// descending, with _id as a stable tiebreak for equal timestamps.
func (r *OperationRepository) FindByUser(ctx context.Context, userID string) ([]domain.Operation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	sort := bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("find operations: %w", err)
	}
	defer cur.Close(ctx)

	ops := []domain.Operation{}
	for cur.Next(ctx) {
		var doc mongoOperation
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode operation: %w", err)
		}
		op, err := toDomainOperation(doc)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate operations: %w", err)
	}
	return ops, nil
}

func toDomainOperation(doc mongoOperation) (domain.Operation, error) {
	amount, err := decimal.NewFromString(doc.Amount)
	if err != nil {
		return domain.Operation{}, fmt.Errorf("operation %s has malformed amount %q: %w", doc.ID, doc.Amount, err)
	}
	return domain.Operation{
		ID:        doc.ID,
		Type:      domain.OperationType(doc.Type),
		Amount:    amount,
		Currency:  doc.Currency,
		UserID:    doc.UserID,
		CreatedAt: doc.CreatedAt.UTC(),
	}, nil
}

// EnsureIndexes creates the owner/creation-time index backing FindByUser.
func (r *OperationRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
