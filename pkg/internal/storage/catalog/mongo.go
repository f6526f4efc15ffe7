package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/greengivers/nursery/pkg/internal/model"
	nlog "github.com/greengivers/nursery/pkg/log"
)

// MongoStore persists products in a MongoDB collection.
type MongoStore struct {
	coll *mongo.Collection
}

// productDoc mirrors model.Product with a native ObjectID so documents decode
// cleanly; the public id stays an opaque hex string.
type productDoc struct {
	ID            bson.ObjectID          `bson:"_id,omitempty"`
	Name          string                 `bson:"name"`
	Category      string                 `bson:"category"`
	Price         float64                `bson:"price"`
	OriginalPrice float64                `bson:"originalPrice,omitempty"`
	Image         string                 `bson:"image,omitempty"`
	Description   string                 `bson:"description,omitempty"`
	Features      []string               `bson:"features,omitempty"`
	Care          model.CareInstructions `bson:"care,omitempty"`
	Traits        model.Traits           `bson:"traits"`
	InStock       bool                   `bson:"inStock"`
	StockQuantity int                    `bson:"stockQuantity"`
	IsActive      bool                   `bson:"isActive"`
	Badge         string                 `bson:"badge,omitempty"`
	CreatedAt     time.Time              `bson:"createdAt"`
	UpdatedAt     time.Time              `bson:"updatedAt"`
}

func docFromModel(p *model.Product) (productDoc, error) {
	doc := productDoc{
		Name:          p.Name,
		Category:      p.Category,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Description:   p.Description,
		Features:      p.Features,
		Care:          p.Care,
		Traits:        p.Traits,
		InStock:       p.InStock,
		StockQuantity: p.StockQuantity,
		IsActive:      p.IsActive,
		Badge:         p.Badge,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}

	if p.ID != "" {
		oid, err := bson.ObjectIDFromHex(p.ID)
		if err != nil {
			return doc, ErrNotFound
		}

		doc.ID = oid
	}

	return doc, nil
}

func (d *productDoc) toModel() model.Product {
	return model.Product{
		ID:            d.ID.Hex(),
		Name:          d.Name,
		Category:      d.Category,
		Price:         d.Price,
		OriginalPrice: d.OriginalPrice,
		Image:         d.Image,
		Description:   d.Description,
		Features:      d.Features,
		Care:          d.Care,
		Traits:        d.Traits,
		InStock:       d.InStock,
		StockQuantity: d.StockQuantity,
		IsActive:      d.IsActive,
		Badge:         d.Badge,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// NewMongo opens the products collection and ensures its indexes: a text
// index over name/description for search, plus category and isActive.
func NewMongo(ctx context.Context, db *mongo.Database, collection string) (*MongoStore, error) {
	coll := db.Collection(collection)

	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: "text"}, {Key: "description", Value: "text"}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "isActive", Value: 1}}},
	})
	if err != nil {
		return nil, fmt.Errorf("ensure product indexes: %w", err)
	}

	nlog.Logger().Info().Str("collection", collection).Msg("mongo catalog ready")

	return &MongoStore{coll: coll}, nil
}

func (s *MongoStore) List(ctx context.Context, f Filter) ([]model.Product, error) {
	filter := bson.D{{Key: "isActive", Value: f.Active()}}

	if f.Category != "" {
		filter = append(filter, bson.E{Key: "category", Value: f.Category})
	}

	if f.Search != "" {
		filter = append(filter, bson.E{Key: "$text", Value: bson.D{{Key: "$search", Value: f.Search}}})
	}

	cursor, err := s.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	out := make([]model.Product, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toModel())
	}

	return out, nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (*model.Product, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var doc productDoc
	if err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("get product %s: %w", id, err)
	}

	p := doc.toModel()

	return &p, nil
}

func (s *MongoStore) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p.ID = ""
	p.CreatedAt = now
	p.UpdatedAt = now

	doc, err := docFromModel(p)
	if err != nil {
		return nil, err
	}

	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return nil, fmt.Errorf("create product: unexpected inserted id %v", res.InsertedID)
	}

	created := *p
	created.ID = oid.Hex()

	return &created, nil
}

// Update replaces the whole record, re-validated like create. The stored
// createdAt survives; updatedAt is stamped. No version check: last write
// wins.
func (s *MongoStore) Update(ctx context.Context, id string, p *model.Product) (*model.Product, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	p.ID = id
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()

	doc, err := docFromModel(p)
	if err != nil {
		return nil, err
	}

	var replaced productDoc

	err = s.coll.FindOneAndReplace(ctx, bson.D{{Key: "_id", Value: doc.ID}}, doc,
		options.FindOneAndReplace().SetReturnDocument(options.After)).Decode(&replaced)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("update product %s: %w", id, err)
	}

	out := replaced.toModel()

	return &out, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) (*model.Product, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var doc productDoc
	if err := s.coll.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("delete product %s: %w", id, err)
	}

	p := doc.toModel()

	return &p, nil
}

func (s *MongoStore) Stats(ctx context.Context) (*Stats, error) {
	total, err := s.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	active, err := s.coll.CountDocuments(ctx, bson.D{{Key: "isActive", Value: true}})
	if err != nil {
		return nil, fmt.Errorf("count active products: %w", err)
	}

	categoryStats, err := s.aggregateCounts(ctx, bson.D{{Key: "isActive", Value: true}}, "$category")
	if err != nil {
		return nil, err
	}

	badgeStats, err := s.aggregateCounts(ctx, bson.D{
		{Key: "isActive", Value: true},
		{Key: "badge", Value: bson.D{{Key: "$nin", Value: bson.A{"", nil}}}},
	}, "$badge")
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalProducts:    int(total),
		ActiveProducts:   int(active),
		InactiveProducts: int(total - active),
		CategoryStats:    categoryStats,
		BadgeStats:       badgeStats,
	}, nil
}

func (s *MongoStore) aggregateCounts(ctx context.Context, match bson.D, groupKey string) ([]GroupCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: groupKey},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate %s: %w", groupKey, err)
	}
	defer cursor.Close(ctx)

	out := []GroupCount{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s aggregation: %w", groupKey, err)
	}

	return out, nil
}

// Close is a no-op; the client is owned by the storage manager.
func (s *MongoStore) Close() error { return nil }
