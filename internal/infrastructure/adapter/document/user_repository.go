package document

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	errs "github.com/amirhossein-jamali/adspark/internal/domain/error"
	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/persistence"
)

// UserRepository stores accounts in the users collection keyed by user id
type UserRepository struct {
	col    *mongo.Collection
	logger coreport.Logger
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *mongo.Database, logger coreport.Logger) *UserRepository {
	return &UserRepository{col: db.Collection(colUsers), logger: logger}
}

var _ persistence.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(ctx context.Context, user *entity.UserAccount) error {
	if _, err := r.col.InsertOne(ctx, toUserDoc(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			r.logger.Warn("Duplicate user operation", map[string]any{
				"userId":    user.ID,
				"operation": "create user",
			})
			return errs.ErrConstraintViolation
		}
		return r.failure("create user", user.ID, err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.UserAccount, error) {
	var doc userDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, errs.ErrUserNotFound
		}
		return nil, r.failure("get user", id, err)
	}
	return fromUserDoc(&doc), nil
}

// Update writes everything except the balance
func (r *UserRepository) Update(ctx context.Context, user *entity.UserAccount) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": updatableFields(user)})
	if err != nil {
		return r.failure("update user", user.ID, err)
	}
	if res.MatchedCount == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) GetTokens(ctx context.Context, id string) (int64, error) {
	var doc struct {
		Tokens int64 `bson:"tokens"`
	}
	opts := options.FindOne().SetProjection(bson.M{"tokens": 1})
	if err := r.col.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return 0, errs.ErrUserNotFound
		}
		return 0, r.failure("get tokens", id, err)
	}
	return doc.Tokens, nil
}

// ApplyTokenDelta runs the floored update server side and reads back the value it replaced
func (r *UserRepository) ApplyTokenDelta(ctx context.Context, id string, delta int64, at time.Time) (persistence.TokenDelta, error) {
	var before struct {
		Tokens int64 `bson:"tokens"`
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.Before).
		SetProjection(bson.M{"tokens": 1})

	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, applyDeltaPipeline(delta, at), opts).Decode(&before)
	if err != nil {
		if isNoDocuments(err) {
			return persistence.TokenDelta{}, errs.ErrUserNotFound
		}
		return persistence.TokenDelta{}, r.failure("apply token delta", id, err)
	}

	return persistence.TokenDelta{
		Previous: before.Tokens,
		Current:  max(before.Tokens+delta, 0),
	}, nil
}

// UpgradeAccountType flips account_type with a filter on the free value so a concurrent
// profile write cannot undo it
func (r *UserRepository) UpgradeAccountType(ctx context.Context, id string, at time.Time) (bool, error) {
	filter := bson.M{"_id": id, "account_type": string(entity.AccountFree)}
	update := bson.M{"$set": bson.M{"account_type": string(entity.AccountPaid), "updated_at": at}}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, r.failure("upgrade account type", id, err)
	}
	if res.ModifiedCount > 0 {
		return true, nil
	}

	count, err := r.col.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, r.failure("upgrade account type", id, err)
	}
	if count == 0 {
		return false, errs.ErrUserNotFound
	}
	return false, nil
}

func (r *UserRepository) failure(operation, userID string, err error) error {
	r.logger.Error("Database error on users", map[string]any{
		"operation": operation,
		"userId":    userID,
		"error":     err.Error(),
	})
	return errs.NewPersistenceError(operation, err)
}

// applyDeltaPipeline sets tokens to max(0, tokens+delta) in an update pipeline
func applyDeltaPipeline(delta int64, at time.Time) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "tokens", Value: bson.D{{Key: "$max", Value: bson.A{
				int64(0),
				bson.D{{Key: "$add", Value: bson.A{"$tokens", delta}}},
			}}}},
			{Key: "last_token_update", Value: at},
			{Key: "updated_at", Value: at},
		}}},
	}
}

func updatableFields(u *entity.UserAccount) bson.M {
	return bson.M{
		"display_name":     u.DisplayName,
		"email":            u.Email,
		"photo_url":        u.PhotoURL,
		"bio":              u.Bio,
		"location":         u.Location,
		"marketing_opt_in": u.MarketingOptIn,
		"social_links":     u.SocialLinks,
		"last_login":       u.LastLogin,
		"updated_at":       u.UpdatedAt,
	}
}
