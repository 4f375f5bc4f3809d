package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hamstery/hamstery-api/internal/core/domain"
)

const hamstersCollection = "hamsters"

type HamsterRepository struct {
	coll *mongo.Collection
}

func NewHamsterRepository(db *mongo.Database) *HamsterRepository {
	return &HamsterRepository{coll: db.Collection(hamstersCollection)}
}

type mongoHamster struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID primitive.ObjectID `bson:"owner_id"`
	Name    string             `bson:"name"`
	Genre   string             `bson:"genre"`
	Age     int                `bson:"age"`
	Hunger  int                `bson:"hunger"`
	Active  bool               `bson:"active"`
}

func (mh *mongoHamster) toDomain() *domain.Hamster {
	return &domain.Hamster{
		ID:      mh.ID.Hex(),
		OwnerID: mh.OwnerID.Hex(),
		Name:    mh.Name,
		Genre:   mh.Genre,
		Age:     mh.Age,
		Hunger:  mh.Hunger,
		Active:  mh.Active,
	}
}

func (r *HamsterRepository) Create(ctx context.Context, h *domain.Hamster) (*domain.Hamster, error) {
	ownerOID, err := primitive.ObjectIDFromHex(h.OwnerID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoHamster{
		OwnerID: ownerOID,
		Name:    h.Name,
		Genre:   h.Genre,
		Age:     h.Age,
		Hunger:  h.Hunger,
		Active:  h.Active,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert hamster: %w", err)
	}

	created := *h
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *HamsterRepository) FindByID(ctx context.Context, id string) (*domain.Hamster, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrHamsterNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mh mongoHamster
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mh); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHamsterNotFound
		}
		return nil, fmt.Errorf("find hamster: %w", err)
	}
	return mh.toDomain(), nil
}

func (r *HamsterRepository) FindByOwner(ctx context.Context, ownerID string) ([]*domain.Hamster, error) {
	ownerOID, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"owner_id": ownerOID})
	if err != nil {
		return nil, fmt.Errorf("find hamsters by owner: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Hamster
	for cursor.Next(ctx) {
		var mh mongoHamster
		if err := cursor.Decode(&mh); err != nil {
			return nil, fmt.Errorf("decode hamster: %w", err)
		}
		out = append(out, mh.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate hamsters: %w", err)
	}
	return out, nil
}

func (r *HamsterRepository) Update(ctx context.Context, h *domain.Hamster) error {
	oid, err := primitive.ObjectIDFromHex(h.ID)
	if err != nil {
		return domain.ErrHamsterNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":   h.Name,
		"age":    h.Age,
		"hunger": h.Hunger,
		"active": h.Active,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update hamster: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrHamsterNotFound
	}
	return nil
}

func (r *HamsterRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrHamsterNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete hamster: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrHamsterNotFound
	}
	return nil
}

func (r *HamsterRepository) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	ownerOID, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return 0, domain.ErrUserNotFound
	}

	res, err := r.coll.DeleteMany(ctx, bson.M{"owner_id": ownerOID})
	if err != nil {
		return 0, fmt.Errorf("delete hamsters by owner: %w", err)
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the owner index on the hamsters collection.
func (r *HamsterRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}},
	})
	return err
}
