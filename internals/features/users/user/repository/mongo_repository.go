package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	database "finakihub_backend/internals/databases"
	"finakihub_backend/internals/features/users/user/model"
)

type userDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Username       string             `bson:"username"`
	Age            int                `bson:"age"`
	AvatarConfig   map[string]any     `bson:"avatar_config"`
	Coins          int64              `bson:"coins"`
	XP             int64              `bson:"xp"`
	Badges         []string           `bson:"badges"`
	PurchasedItems []string           `bson:"purchased_items"`
	EquippedItems  map[string]string  `bson:"equipped_items"`
	SelectedLevel  string             `bson:"selected_level"`
	CreatedAt      time.Time          `bson:"created_at"`
}

func (d *userDocument) toModel() *model.UserModel {
	return &model.UserModel{
		ID:             d.ID.Hex(),
		Username:       d.Username,
		Age:            d.Age,
		AvatarConfig:   d.AvatarConfig,
		Coins:          d.Coins,
		XP:             d.XP,
		Badges:         d.Badges,
		PurchasedItems: d.PurchasedItems,
		EquippedItems:  d.EquippedItems,
		SelectedLevel:  d.SelectedLevel,
		CreatedAt:      d.CreatedAt,
	}
}

type MongoRepository struct {
	users *mongo.Collection
}

func NewMongoRepository(users *mongo.Collection) *MongoRepository {
	return &MongoRepository{users: users}
}

func ensureMongoIndexes(ctx context.Context, users *mongo.Collection) error {
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_username"),
	})
	return err
}

/* ====================== filters & updates ====================== */

func byID(oid primitive.ObjectID) bson.M {
	return bson.M{"_id": oid}
}

// purchaseFilter only matches a user that can afford the item and does not own it yet.
func purchaseFilter(oid primitive.ObjectID, itemID string, price int64) bson.M {
	return bson.M{
		"_id":             oid,
		"coins":           bson.M{"$gte": price},
		"purchased_items": bson.M{"$ne": itemID},
	}
}

func purchaseUpdate(itemID string, price int64) bson.M {
	return bson.M{
		"$inc":      bson.M{"coins": -price},
		"$addToSet": bson.M{"purchased_items": itemID},
	}
}

func equipUpdate(keys []string, itemID string) bson.M {
	set := bson.M{}
	for _, k := range keys {
		set["equipped_items."+k] = itemID
	}
	return bson.M{"$set": set}
}

func unequipUpdate(keys []string) bson.M {
	unset := bson.M{}
	for _, k := range keys {
		unset["equipped_items."+k] = ""
	}
	return bson.M{"$unset": unset}
}

func (r *MongoRepository) ValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}

func (r *MongoRepository) objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// unparsable ids cannot match any document
		return oid, database.ErrNotFound
	}
	return oid, nil
}

func translate(err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return database.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return database.ErrDuplicate
	default:
		return err
	}
}

/* ====================== reads ====================== */

func (r *MongoRepository) Create(ctx context.Context, u *model.UserModel) error {
	doc := userDocument{
		Username:       u.Username,
		Age:            u.Age,
		AvatarConfig:   u.AvatarConfig,
		Coins:          u.Coins,
		XP:             u.XP,
		Badges:         nonNil(u.Badges),
		PurchasedItems: nonNil(u.PurchasedItems),
		EquippedItems:  nonNilMap(u.EquippedItems),
		SelectedLevel:  u.SelectedLevel,
		CreatedAt:      u.CreatedAt,
	}
	res, err := r.users.InsertOne(ctx, doc)
	if err != nil {
		return translate(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid.Hex()
	}
	return nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (*model.UserModel, error) {
	oid, err := r.objectID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, byID(oid))
}

func (r *MongoRepository) FindByUsername(ctx context.Context, username string) (*model.UserModel, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*model.UserModel, error) {
	var doc userDocument
	if err := r.users.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translate(err)
	}
	return doc.toModel(), nil
}

func (r *MongoRepository) Count(ctx context.Context) (int64, error) {
	return r.users.CountDocuments(ctx, bson.M{})
}

func (r *MongoRepository) exists(ctx context.Context, oid primitive.ObjectID) (bool, error) {
	n, err := r.users.CountDocuments(ctx, byID(oid), options.Count().SetLimit(1))
	return n > 0, err
}

/* ====================== mutations ====================== */

func (r *MongoRepository) setFields(ctx context.Context, id string, fields bson.M) error {
	oid, err := r.objectID(id)
	if err != nil {
		return err
	}
	res, err := r.users.UpdateOne(ctx, byID(oid), bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return database.ErrNotFound
	}
	return nil
}

func (r *MongoRepository) SetAvatar(ctx context.Context, id string, avatar map[string]any) error {
	return r.setFields(ctx, id, bson.M{"avatar_config": avatar})
}

func (r *MongoRepository) SetSelectedLevel(ctx context.Context, id, tier string) error {
	return r.setFields(ctx, id, bson.M{"selected_level": tier})
}

func (r *MongoRepository) IncrementCoins(ctx context.Context, id string, delta int64) (int64, error) {
	oid, err := r.objectID(id)
	if err != nil {
		return 0, err
	}
	opts := options.FindOneAndUpdate().
		SetProjection(bson.M{"coins": 1}).
		SetReturnDocument(options.After)

	var doc userDocument
	err = r.users.FindOneAndUpdate(ctx, byID(oid), bson.M{"$inc": bson.M{"coins": delta}}, opts).Decode(&doc)
	if err != nil {
		return 0, translate(err)
	}
	return doc.Coins, nil
}

func (r *MongoRepository) IncrementXP(ctx context.Context, id string, amount int64) (*model.XPSnapshot, error) {
	oid, err := r.objectID(id)
	if err != nil {
		return nil, err
	}
	opts := options.FindOneAndUpdate().
		SetProjection(bson.M{"xp": 1, "coins": 1}).
		SetReturnDocument(options.Before)

	var doc userDocument
	err = r.users.FindOneAndUpdate(ctx, byID(oid), bson.M{"$inc": bson.M{"xp": amount}}, opts).Decode(&doc)
	if err != nil {
		return nil, translate(err)
	}
	return &model.XPSnapshot{ID: doc.ID.Hex(), XP: doc.XP, Coins: doc.Coins}, nil
}

func (r *MongoRepository) AddBadge(ctx context.Context, id, badgeID string) (bool, error) {
	oid, err := r.objectID(id)
	if err != nil {
		return false, err
	}
	res, err := r.users.UpdateOne(ctx, byID(oid), bson.M{"$addToSet": bson.M{"badges": badgeID}})
	if err != nil {
		return false, err
	}
	if res.MatchedCount == 0 {
		return false, database.ErrNotFound
	}
	return res.ModifiedCount > 0, nil
}

func (r *MongoRepository) Purchase(ctx context.Context, id, itemID string, price int64) (int64, bool, error) {
	oid, err := r.objectID(id)
	if err != nil {
		return 0, false, nil
	}
	opts := options.FindOneAndUpdate().
		SetProjection(bson.M{"coins": 1}).
		SetReturnDocument(options.After)

	var doc userDocument
	err = r.users.FindOneAndUpdate(ctx, purchaseFilter(oid, itemID, price), purchaseUpdate(itemID, price), opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return doc.Coins, true, nil
}

func (r *MongoRepository) OwnsItem(ctx context.Context, id, itemID string) (bool, error) {
	oid, err := r.objectID(id)
	if err != nil {
		return false, err
	}
	filter := bson.M{"_id": oid, "purchased_items": itemID}
	err = r.users.FindOne(ctx, filter, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return false, err
	}
	found, err := r.exists(ctx, oid)
	if err != nil {
		return false, err
	}
	if !found {
		return false, database.ErrNotFound
	}
	return false, nil
}

func (r *MongoRepository) SetEquipped(ctx context.Context, id string, keys []string, itemID string) (map[string]string, error) {
	return r.updateEquipped(ctx, id, equipUpdate(keys, itemID))
}

func (r *MongoRepository) ClearEquipped(ctx context.Context, id string, keys []string) (map[string]string, error) {
	return r.updateEquipped(ctx, id, unequipUpdate(keys))
}

func (r *MongoRepository) updateEquipped(ctx context.Context, id string, update bson.M) (map[string]string, error) {
	oid, err := r.objectID(id)
	if err != nil {
		return nil, err
	}
	opts := options.FindOneAndUpdate().
		SetProjection(bson.M{"equipped_items": 1}).
		SetReturnDocument(options.After)

	var doc userDocument
	if err := r.users.FindOneAndUpdate(ctx, byID(oid), update, opts).Decode(&doc); err != nil {
		return nil, translate(err)
	}
	return nonNilMap(doc.EquippedItems), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilMap(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
