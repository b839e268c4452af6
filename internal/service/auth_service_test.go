// internal/service/auth_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"algobloom/internal/config"
	"algobloom/internal/model"
	"algobloom/internal/repository/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBAuth() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for auth service testing: " + err.Error())
	}
	return db
}

// テスト用の送信記録付きメーラー
type recordingMailer struct {
	sent []string
	err  error
}

func (m *recordingMailer) Send(_ context.Context, to, _, _ string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to)
	return nil
}

func Test_authService_Register(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBAuth()
	testConfig := config.Config{
		JWT: config.JWTConfig{SecretKey: "test-secret", ExpiryHours: 168},
		App: config.AppConfig{DefaultDailyGoal: 3},
	}

	anyDB := mock.AnythingOfType("*gorm.DB")
	req := &model.RegisterRequest{Username: "tester", Email: "tester@example.com", Password: "password123"}

	t.Run("正常系: 登録成功でトークンとユーザーが返り、ウェルカムメールが送られる", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mailer := &recordingMailer{}

		mockUserRepo.On("FindByEmail", ctx, anyDB, req.Email).Return(nil, model.ErrNotFound).Once()
		mockUserRepo.On("Create", ctx, anyDB, mock.MatchedBy(func(u *model.User) bool {
			// パスワードは平文で保存されないこと、デフォルト設定が入ること
			return u.Email == req.Email &&
				u.PasswordHash != req.Password &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) == nil &&
				u.DailyGoal == 3 && u.Timezone == "UTC" && u.AutoSyncLeetCode
		})).Return(nil).Once()

		svc := NewAuthService(db, mockUserRepo, mailer, &testConfig)
		resp, err := svc.Register(ctx, req)

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, req.Email, resp.User.Email)
		assert.Equal(t, []string{req.Email}, mailer.sent)

		// トークンはHS256で自分の秘密鍵で検証でき、subがuser_idであること
		parsed, err := jwt.ParseWithClaims(resp.Token, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte(testConfig.JWT.SecretKey), nil
		})
		require.NoError(t, err)
		claims := parsed.Claims.(*jwt.RegisteredClaims)
		assert.Equal(t, resp.User.UserID.String(), claims.Subject)
		assert.Equal(t, config.AppName, claims.Issuer)

		mockUserRepo.AssertExpectations(t)
	})

	t.Run("正常系: メール送信に失敗しても登録は成功する", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mailer := &recordingMailer{err: errors.New("ses unavailable")}

		mockUserRepo.On("FindByEmail", ctx, anyDB, req.Email).Return(nil, model.ErrNotFound).Once()
		mockUserRepo.On("Create", ctx, anyDB, mock.AnythingOfType("*model.User")).Return(nil).Once()

		svc := NewAuthService(db, mockUserRepo, mailer, &testConfig)
		resp, err := svc.Register(ctx, req)

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("異常系: メールアドレス重複", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mailer := &recordingMailer{}

		existing := &model.User{UserID: uuid.New(), Email: req.Email}
		mockUserRepo.On("FindByEmail", ctx, anyDB, req.Email).Return(existing, nil).Once()

		svc := NewAuthService(db, mockUserRepo, mailer, &testConfig)
		resp, err := svc.Register(ctx, req)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrConflict)
		assert.Nil(t, resp)
		assert.Empty(t, mailer.sent)
		mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 同時登録のレースでCreateが重複エラー", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mailer := &recordingMailer{}

		mockUserRepo.On("FindByEmail", ctx, anyDB, req.Email).Return(nil, model.ErrNotFound).Once()
		mockUserRepo.On("Create", ctx, anyDB, mock.AnythingOfType("*model.User")).Return(model.ErrConflict).Once()

		svc := NewAuthService(db, mockUserRepo, mailer, &testConfig)
		resp, err := svc.Register(ctx, req)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrConflict)
		assert.Nil(t, resp)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "DUPLICATE_EMAIL", appErr.Detail.Code)
	})
}

func Test_authService_Login(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBAuth()
	testConfig := config.Config{
		JWT: config.JWTConfig{SecretKey: "test-secret", ExpiryHours: 168},
	}

	password := "password123"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &model.User{
		UserID:       uuid.New(),
		Username:     "tester",
		Email:        "tester@example.com",
		PasswordHash: string(hashed),
	}

	t.Run("正常系: 認証成功", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockUserRepo.On("FindByEmail", ctx, db, user.Email).Return(user, nil).Once()

		svc := NewAuthService(db, mockUserRepo, &recordingMailer{}, &testConfig)
		resp, err := svc.Login(ctx, &model.LoginRequest{Email: user.Email, Password: password})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, user.UserID, resp.User.UserID)
	})

	t.Run("異常系: パスワード不一致", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockUserRepo.On("FindByEmail", ctx, db, user.Email).Return(user, nil).Once()

		svc := NewAuthService(db, mockUserRepo, &recordingMailer{}, &testConfig)
		resp, err := svc.Login(ctx, &model.LoginRequest{Email: user.Email, Password: "wrong-password"})

		require.Error(t, err)
		assert.Nil(t, resp)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "AUTHENTICATION_FAILED", appErr.Detail.Code)
	})

	t.Run("異常系: 存在しないユーザーでも同じエラーを返す", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockUserRepo.On("FindByEmail", ctx, db, "nobody@example.com").Return(nil, model.ErrNotFound).Once()

		svc := NewAuthService(db, mockUserRepo, &recordingMailer{}, &testConfig)
		resp, err := svc.Login(ctx, &model.LoginRequest{Email: "nobody@example.com", Password: password})

		require.Error(t, err)
		assert.Nil(t, resp)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		// ユーザーの存在有無を漏らさない
		assert.Equal(t, "AUTHENTICATION_FAILED", appErr.Detail.Code)
	})
}
