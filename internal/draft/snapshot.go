package draft

import (
	"context"
	"time"

	"shilpgroup-io/backoffice/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// snapshotDoc is the persisted projection of a draft. The bson mapping
// on the draft excludes staged files and preview URLs, so only scalar
// and collection metadata round-trips.
type snapshotDoc struct {
	Key       string              `bson:"_id"`
	Draft     models.ProjectDraft `bson:"draft"`
	UpdatedAt time.Time           `bson:"updated_at"`
}

// MongoPersister stores draft snapshots in a MongoDB collection, one
// document per admin session key.
type MongoPersister struct {
	col *mongo.Collection
}

func NewMongoPersister(col *mongo.Collection) *MongoPersister {
	return &MongoPersister{col: col}
}

func (p *MongoPersister) Save(ctx context.Context, key string, d *models.ProjectDraft) error {
	doc := snapshotDoc{Key: key, Draft: *d, UpdatedAt: time.Now()}
	opts := options.Replace().SetUpsert(true)
	_, err := p.col.ReplaceOne(ctx, bson.M{"_id": key}, doc, opts)
	return err
}

func (p *MongoPersister) Load(ctx context.Context, key string, d *models.ProjectDraft) (bool, error) {
	var doc snapshotDoc
	err := p.col.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	*d = doc.Draft
	return true, nil
}

func (p *MongoPersister) Delete(ctx context.Context, key string) error {
	_, err := p.col.DeleteOne(ctx, bson.M{"_id": key})
	return err
}
