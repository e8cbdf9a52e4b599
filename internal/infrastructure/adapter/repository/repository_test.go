package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	errs "github.com/amirhossein-jamali/adspark/internal/domain/error"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)
	return db, mock
}

func TestUserRepository_ApplyTokenDelta(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("UPDATE users AS u")

	t.Run("returns previous and current balance", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())
		mock.ExpectQuery(query).
			WithArgs(int64(-10), sqlmock.AnyArg(), sqlmock.AnyArg(), "u1").
			WillReturnRows(sqlmock.NewRows([]string{"current", "previous"}).AddRow(40, 50))

		delta, err := repo.ApplyTokenDelta(ctx, "u1", -10, at)

		require.NoError(t, err)
		assert.Equal(t, int64(50), delta.Previous)
		assert.Equal(t, int64(40), delta.Current)
		assert.False(t, delta.Clamped(-10))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports the clamp", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())
		mock.ExpectQuery(query).
			WillReturnRows(sqlmock.NewRows([]string{"current", "previous"}).AddRow(0, 4))

		delta, err := repo.ApplyTokenDelta(ctx, "u1", -10, at)

		require.NoError(t, err)
		assert.Equal(t, int64(0), delta.Current)
		assert.True(t, delta.Clamped(-10))
	})

	t.Run("missing user", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())
		mock.ExpectQuery(query).
			WillReturnRows(sqlmock.NewRows([]string{"current", "previous"}))

		_, err := repo.ApplyTokenDelta(ctx, "ghost", 100, at)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())
		mock.ExpectQuery(query).WillReturnError(errors.New("connection refused"))

		_, err := repo.ApplyTokenDelta(ctx, "u1", 100, at)

		assert.ErrorIs(t, err, errs.ErrPersistence)
	})
}

func TestUserRepository_Reads(t *testing.T) {
	ctx := context.Background()

	t.Run("GetTokens maps a missing row to ErrUserNotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT "tokens" FROM "users"`)).
			WillReturnRows(sqlmock.NewRows([]string{"tokens"}))

		_, err := repo.GetTokens(ctx, "ghost")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("GetTokens returns the balance", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT "tokens" FROM "users"`)).
			WillReturnRows(sqlmock.NewRows([]string{"tokens"}).AddRow(30))

		tokens, err := repo.GetTokens(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, int64(30), tokens)
	})

	t.Run("GetByID decodes social links", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())
		rows := sqlmock.NewRows([]string{"id", "display_name", "tokens", "account_type", "social_links"}).
			AddRow("u1", "Ada", 50, "free", `{"twitter":"https://twitter.com/ada"}`)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).WillReturnRows(rows)

		user, err := repo.GetByID(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, "Ada", user.DisplayName)
		assert.Equal(t, entity.AccountFree, user.AccountType)
		assert.Equal(t, "https://twitter.com/ada", user.SocialLinks["twitter"])
	})
}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	user := &entity.UserAccount{ID: "u1", Tokens: 50, AccountType: entity.AccountFree, SocialLinks: map[string]string{}}

	t.Run("inserts the account", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "users"`)).WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Create(ctx, user))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate id is a constraint violation", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "users"`)).
			WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "users_pkey" (SQLSTATE 23505)`))

		err := repo.Create(ctx, user)

		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
	})
}

func TestPurchaseRepository(t *testing.T) {
	ctx := context.Background()
	purchase := &entity.Purchase{ID: "p1", UserID: "u1", PackageID: "basic", Tokens: 100, Price: 9.99,
		Status: entity.PurchaseCompleted, SessionID: "cs_1"}

	t.Run("duplicate session is reported", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPurchaseRepository(db, logger.NewNoopLogger())
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "user_purchases"`)).
			WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_user_purchases_session_id" (SQLSTATE 23505)`))

		err := repo.Create(ctx, purchase)

		assert.ErrorIs(t, err, errs.ErrDuplicatePurchase)
	})

	t.Run("unknown session returns nil", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPurchaseRepository(db, logger.NewNoopLogger())
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "user_purchases" WHERE session_id = $1`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		got, err := repo.GetBySessionID(ctx, "cs_missing")

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("known session returns the purchase", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPurchaseRepository(db, logger.NewNoopLogger())
		rows := sqlmock.NewRows([]string{"id", "user_id", "tokens", "price", "status", "session_id"}).
			AddRow("p1", "u1", 100, 9.99, "completed", "cs_1")
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "user_purchases" WHERE session_id = $1`)).WillReturnRows(rows)

		got, err := repo.GetBySessionID(ctx, "cs_1")

		require.NoError(t, err)
		assert.Equal(t, int64(100), got.Tokens)
		assert.Equal(t, entity.PurchaseCompleted, got.Status)
	})
}

func TestHookRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("missing hook", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewHookRepository(db, logger.NewNoopLogger())
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "generated_hooks" WHERE id = $1`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, "h-missing")

		assert.ErrorIs(t, err, errs.ErrHookNotFound)
	})

	t.Run("lists newest first", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewHookRepository(db, logger.NewNoopLogger())
		rows := sqlmock.NewRows([]string{"id", "user_id", "content", "original_hook_id"}).
			AddRow("h2", "u1", "second", "h1").
			AddRow("h1", "u1", "first", nil)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "generated_hooks" WHERE user_id = $1 ORDER BY created_at DESC`)).
			WillReturnRows(rows)

		hooks, err := repo.ListByUser(ctx, "u1", 10)

		require.NoError(t, err)
		require.Len(t, hooks, 2)
		assert.Equal(t, "h1", hooks[0].OriginalHookID)
		assert.True(t, hooks[0].IsContinuation())
		assert.False(t, hooks[1].IsContinuation())
	})

	t.Run("write failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewHookRepository(db, logger.NewNoopLogger())
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "generated_hooks"`)).WillReturnError(errors.New("disk full"))

		err := repo.Create(ctx, &entity.GeneratedHook{ID: "h1", UserID: "u1", Content: "x"})

		assert.ErrorIs(t, err, errs.ErrPersistence)
	})
}

func TestSearchRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSearchRepository(db, logger.NewNoopLogger())
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "user_searches"`)).WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &entity.SearchRecord{ID: "s1", UserID: "u1", Product: "Mug"})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxContext(t *testing.T) {
	db, _ := newMockDB(t)

	_, ok := TxFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithTx(context.Background(), db)
	tx, ok := TxFromContext(ctx)
	assert.True(t, ok)
	assert.Same(t, db, tx)
}

func TestErrorClassifier(t *testing.T) {
	c := NewErrorClassifier()

	assert.Equal(t, DuplicateKeyError, c.Classify(gorm.ErrDuplicatedKey))
	assert.Equal(t, LockError, c.Classify(errors.New("ERROR: deadlock detected")))
	assert.Equal(t, TransientError, c.Classify(errors.New("read: connection reset by peer")))
	assert.Equal(t, ConstraintError, c.Classify(errors.New(`new row violates check constraint "chk_users_tokens_non_negative"`)))
	assert.Equal(t, ErrorType(""), c.Classify(nil))
}

func newRecordingDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *[]string) {
	t.Helper()
	var statements []string
	matcher := sqlmock.QueryMatcherFunc(func(expectedSQL, actualSQL string) error {
		statements = append(statements, actualSQL)
		return sqlmock.QueryMatcherRegexp.Match(expectedSQL, actualSQL)
	})
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(matcher))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)
	return db, mock, &statements
}

func TestUserRepository_UpdateLeavesAccountType(t *testing.T) {
	ctx := context.Background()
	db, mock, statements := newRecordingDB(t)
	repo := NewUserRepository(db, logger.NewNoopLogger())
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET`)).WillReturnResult(sqlmock.NewResult(0, 1))

	// loaded before a concurrent purchase upgraded the row
	stale := &entity.UserAccount{ID: "u1", DisplayName: "Ada", Tokens: 50, AccountType: entity.AccountFree}
	require.NoError(t, repo.Update(ctx, stale))

	require.Len(t, *statements, 1)
	assert.Contains(t, (*statements)[0], "display_name")
	assert.NotContains(t, (*statements)[0], "account_type")
	assert.NotContains(t, (*statements)[0], "tokens")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpgradeAccountType(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	upgrade := `UPDATE "users" SET .*"account_type"=.* WHERE id = \$\d+ AND account_type = \$\d+`
	count := regexp.QuoteMeta(`SELECT count(*) FROM "users" WHERE id = $1`)

	t.Run("upgrades a free account", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())
		mock.ExpectExec(upgrade).
			WithArgs("paid", at, "u1", "free").
			WillReturnResult(sqlmock.NewResult(0, 1))

		upgraded, err := repo.UpgradeAccountType(ctx, "u1", at)

		require.NoError(t, err)
		assert.True(t, upgraded)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already paid is a no-op", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())
		mock.ExpectExec(upgrade).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(count).WithArgs("u1").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		upgraded, err := repo.UpgradeAccountType(ctx, "u1", at)

		require.NoError(t, err)
		assert.False(t, upgraded)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())
		mock.ExpectExec(upgrade).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(count).WithArgs("ghost").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		_, err := repo.UpgradeAccountType(ctx, "ghost", at)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}
