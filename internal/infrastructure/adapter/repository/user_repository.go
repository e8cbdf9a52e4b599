package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	errs "github.com/amirhossein-jamali/adspark/internal/domain/error"
	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/model"
)

// applyDeltaSQL floors the balance at zero and reports the value it replaced, in one statement.
// The subquery row lock orders concurrent deltas on the same user.
const applyDeltaSQL = `UPDATE users AS u
SET tokens = GREATEST(u.tokens + ?, 0), last_token_update = ?, updated_at = ?
FROM (SELECT id, tokens AS previous FROM users WHERE id = ? FOR UPDATE) AS p
WHERE u.id = p.id
RETURNING u.tokens AS current, p.previous AS previous`

// updatableUserColumns are written by Update; tokens are only changed by ApplyTokenDelta and
// account_type only by UpgradeAccountType
var updatableUserColumns = []string{
	"display_name", "email", "photo_url", "bio", "location",
	"marketing_opt_in", "social_links", "last_login", "updated_at",
}

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

var _ persistence.UserRepository = (*UserRepository)(nil)

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate user operation", map[string]any{
			"userId":    userID,
			"operation": operation,
		})
		return errs.ErrConstraintViolation
	}

	r.logger.Error("Database error on users", map[string]any{
		"operation": operation,
		"userId":    userID,
		"errorType": string(r.errorClassifier.Classify(err)),
		"error":     err.Error(),
	})
	return errs.NewPersistenceError(operation, err)
}

// Create creates a new user account
func (r *UserRepository) Create(ctx context.Context, user *entity.UserAccount) error {
	if err := conn(ctx, r.db).Create(userToModel(user)).Error; err != nil {
		return r.handleDatabaseError("create user", err, user.ID)
	}

	r.logger.Debug("User created", map[string]any{
		"userId": user.ID,
		"tokens": user.Tokens,
	})
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.UserAccount, error) {
	var userModel model.User
	if err := conn(ctx, r.db).Where("id = ?", id).Take(&userModel).Error; err != nil {
		return nil, r.handleDatabaseError("get user", err, id)
	}
	return userToEntity(&userModel), nil
}

// Update writes every field except the balance
func (r *UserRepository) Update(ctx context.Context, user *entity.UserAccount) error {
	userModel := userToModel(user)

	result := conn(ctx, r.db).Model(userModel).Select(updatableUserColumns).Updates(userModel)
	if result.Error != nil {
		return r.handleDatabaseError("update user", result.Error, user.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// GetTokens reads only the balance column
func (r *UserRepository) GetTokens(ctx context.Context, id string) (int64, error) {
	var userModel model.User
	err := conn(ctx, r.db).Select("tokens").Where("id = ?", id).Take(&userModel).Error
	if err != nil {
		return 0, r.handleDatabaseError("get tokens", err, id)
	}
	return userModel.Tokens, nil
}

type tokenDeltaRow struct {
	Current  int64
	Previous int64
}

// ApplyTokenDelta changes the balance with a single UPDATE ... RETURNING
func (r *UserRepository) ApplyTokenDelta(ctx context.Context, id string, delta int64, at time.Time) (persistence.TokenDelta, error) {
	var rows []tokenDeltaRow
	if err := conn(ctx, r.db).Raw(applyDeltaSQL, delta, at, at, id).Scan(&rows).Error; err != nil {
		return persistence.TokenDelta{}, r.handleDatabaseError("apply token delta", err, id)
	}
	if len(rows) == 0 {
		return persistence.TokenDelta{}, errs.ErrUserNotFound
	}

	return persistence.TokenDelta{Previous: rows[0].Previous, Current: rows[0].Current}, nil
}

// UpgradeAccountType sets account_type to paid only while the row is still free
func (r *UserRepository) UpgradeAccountType(ctx context.Context, id string, at time.Time) (bool, error) {
	result := conn(ctx, r.db).Model(&model.User{}).
		Where("id = ? AND account_type = ?", id, string(entity.AccountFree)).
		Updates(map[string]any{"account_type": string(entity.AccountPaid), "updated_at": at})
	if result.Error != nil {
		return false, r.handleDatabaseError("upgrade account type", result.Error, id)
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	var count int64
	if err := conn(ctx, r.db).Model(&model.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, r.handleDatabaseError("upgrade account type", err, id)
	}
	if count == 0 {
		return false, errs.ErrUserNotFound
	}
	return false, nil
}
