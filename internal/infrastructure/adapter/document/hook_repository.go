package document

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	errs "github.com/amirhossein-jamali/adspark/internal/domain/error"
	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/persistence"
)

// HookRepository stores generated hooks in the generated_hooks collection
type HookRepository struct {
	col    *mongo.Collection
	logger coreport.Logger
}

func NewHookRepository(db *mongo.Database, logger coreport.Logger) *HookRepository {
	return &HookRepository{col: db.Collection(colHooks), logger: logger}
}

var _ persistence.HookRepository = (*HookRepository)(nil)

func (r *HookRepository) Create(ctx context.Context, hook *entity.GeneratedHook) error {
	if _, err := r.col.InsertOne(ctx, toHookDoc(hook)); err != nil {
		r.logger.Error("Failed to store generated hook", map[string]any{
			"hookId": hook.ID,
			"userId": hook.UserID,
			"error":  err.Error(),
		})
		return errs.NewPersistenceError("create hook", err)
	}
	return nil
}

func (r *HookRepository) GetByID(ctx context.Context, id string) (*entity.GeneratedHook, error) {
	var doc hookDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, errs.ErrHookNotFound
		}
		return nil, errs.NewPersistenceError("get hook", err)
	}
	return fromHookDoc(&doc), nil
}

func (r *HookRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.GeneratedHook, error) {
	cursor, err := r.col.Find(ctx, bson.M{"user_id": userID}, limitOf(limit))
	if err != nil {
		return nil, errs.NewPersistenceError("list hooks", err)
	}
	var docs []hookDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errs.NewPersistenceError("list hooks", err)
	}

	hooks := make([]*entity.GeneratedHook, 0, len(docs))
	for i := range docs {
		hooks = append(hooks, fromHookDoc(&docs[i]))
	}
	return hooks, nil
}

// SearchRepository stores generation requests in the user_searches collection
type SearchRepository struct {
	col    *mongo.Collection
	logger coreport.Logger
}

func NewSearchRepository(db *mongo.Database, logger coreport.Logger) *SearchRepository {
	return &SearchRepository{col: db.Collection(colSearches), logger: logger}
}

var _ persistence.SearchRepository = (*SearchRepository)(nil)

func (r *SearchRepository) Create(ctx context.Context, search *entity.SearchRecord) error {
	if _, err := r.col.InsertOne(ctx, toSearchDoc(search)); err != nil {
		r.logger.Error("Failed to store search", map[string]any{
			"userId": search.UserID,
			"error":  err.Error(),
		})
		return errs.NewPersistenceError("create search", err)
	}
	return nil
}

func (r *SearchRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.SearchRecord, error) {
	cursor, err := r.col.Find(ctx, bson.M{"user_id": userID}, limitOf(limit))
	if err != nil {
		return nil, errs.NewPersistenceError("list searches", err)
	}
	var docs []searchDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errs.NewPersistenceError("list searches", err)
	}

	searches := make([]*entity.SearchRecord, 0, len(docs))
	for i := range docs {
		searches = append(searches, fromSearchDoc(&docs[i]))
	}
	return searches, nil
}
