// internal/service/question_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"algobloom/internal/config"
	"algobloom/internal/model"
	"algobloom/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBQuestion() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for question service testing: " + err.Error())
	}
	return db
}

func Test_questionService_ToggleSolved(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBQuestion()
	testConfig := config.Config{App: config.AppConfig{SearchLimit: 80}}

	userID := uuid.New()
	questionID := uuid.New()
	question := &model.Question{QuestionID: questionID, Title: "Two Sum", Difficulty: model.DifficultyEasy}

	// トランザクション内の tx は外側の db と別インスタンスになる
	anyDB := mock.AnythingOfType("*gorm.DB")

	t.Run("正常系: 進捗行がなければ作成してONにする", func(t *testing.T) {
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockTopicRepo := new(mocks.TopicRepository)
		mockProgRepo := new(mocks.ProgressRepository)

		mockQuestionRepo.On("FindByID", ctx, db, questionID).Return(question, nil).Once()
		mockProgRepo.On("Find", ctx, anyDB, userID, questionID).Return(nil, model.ErrNotFound).Once()
		mockProgRepo.On("Create", ctx, anyDB, mock.MatchedBy(func(p *model.Progress) bool {
			return p.UserID == userID && p.QuestionID == questionID &&
				p.IsSolved && p.SolvedAt != nil && !p.IsRevisit && p.RevisitAt == nil
		})).Return(nil).Once()

		svc := NewQuestionService(db, mockQuestionRepo, mockTopicRepo, mockProgRepo, &testConfig)
		resp, err := svc.ToggleSolved(ctx, userID, questionID)

		require.NoError(t, err)
		assert.True(t, resp.IsSolved)
		assert.False(t, resp.IsRevisit)
		mockProgRepo.AssertExpectations(t)
		mockQuestionRepo.AssertExpectations(t)
	})

	t.Run("正常系: ONの行を再トグルするとOFFになり solved_at がクリアされる", func(t *testing.T) {
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockTopicRepo := new(mocks.TopicRepository)
		mockProgRepo := new(mocks.ProgressRepository)

		solvedAt := time.Now().Add(-time.Hour)
		existing := &model.Progress{
			ProgressID: uuid.New(),
			UserID:     userID,
			QuestionID: questionID,
			IsSolved:   true,
			SolvedAt:   &solvedAt,
		}
		mockQuestionRepo.On("FindByID", ctx, db, questionID).Return(question, nil).Once()
		mockProgRepo.On("Find", ctx, anyDB, userID, questionID).Return(existing, nil).Once()
		mockProgRepo.On("Update", ctx, anyDB, mock.MatchedBy(func(p *model.Progress) bool {
			return !p.IsSolved && p.SolvedAt == nil
		})).Return(nil).Once()

		svc := NewQuestionService(db, mockQuestionRepo, mockTopicRepo, mockProgRepo, &testConfig)
		resp, err := svc.ToggleSolved(ctx, userID, questionID)

		require.NoError(t, err)
		assert.False(t, resp.IsSolved)
		mockProgRepo.AssertExpectations(t)
	})

	t.Run("正常系: revisit は solved と独立に保たれる", func(t *testing.T) {
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockTopicRepo := new(mocks.TopicRepository)
		mockProgRepo := new(mocks.ProgressRepository)

		revisitAt := time.Now().Add(-time.Hour)
		existing := &model.Progress{
			ProgressID: uuid.New(),
			UserID:     userID,
			QuestionID: questionID,
			IsRevisit:  true,
			RevisitAt:  &revisitAt,
		}
		mockQuestionRepo.On("FindByID", ctx, db, questionID).Return(question, nil).Once()
		mockProgRepo.On("Find", ctx, anyDB, userID, questionID).Return(existing, nil).Once()
		mockProgRepo.On("Update", ctx, anyDB, mock.MatchedBy(func(p *model.Progress) bool {
			return p.IsSolved && p.SolvedAt != nil && p.IsRevisit && p.RevisitAt != nil
		})).Return(nil).Once()

		svc := NewQuestionService(db, mockQuestionRepo, mockTopicRepo, mockProgRepo, &testConfig)
		resp, err := svc.ToggleSolved(ctx, userID, questionID)

		require.NoError(t, err)
		assert.True(t, resp.IsSolved)
		assert.True(t, resp.IsRevisit)
	})

	t.Run("正常系: 同時作成に負けたら既存行を読み直して反転する", func(t *testing.T) {
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockTopicRepo := new(mocks.TopicRepository)
		mockProgRepo := new(mocks.ProgressRepository)

		// 勝者が revisit=true で作成済みの行
		revisitAt := time.Now()
		winner := &model.Progress{
			ProgressID: uuid.New(),
			UserID:     userID,
			QuestionID: questionID,
			IsRevisit:  true,
			RevisitAt:  &revisitAt,
		}
		mockQuestionRepo.On("FindByID", ctx, db, questionID).Return(question, nil).Once()
		mockProgRepo.On("Find", ctx, anyDB, userID, questionID).Return(nil, model.ErrNotFound).Once()
		mockProgRepo.On("Create", ctx, anyDB, mock.AnythingOfType("*model.Progress")).Return(model.ErrConflict).Once()
		mockProgRepo.On("Find", ctx, anyDB, userID, questionID).Return(winner, nil).Once()
		mockProgRepo.On("Update", ctx, anyDB, mock.MatchedBy(func(p *model.Progress) bool {
			// 勝者の行の上に solved の反転だけが適用され、revisit は壊れない
			return p.ProgressID == winner.ProgressID && p.IsSolved && p.IsRevisit
		})).Return(nil).Once()

		svc := NewQuestionService(db, mockQuestionRepo, mockTopicRepo, mockProgRepo, &testConfig)
		resp, err := svc.ToggleSolved(ctx, userID, questionID)

		require.NoError(t, err)
		assert.True(t, resp.IsSolved)
		assert.True(t, resp.IsRevisit)
		mockProgRepo.AssertExpectations(t)
	})

	t.Run("異常系: 問題が存在しない", func(t *testing.T) {
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockTopicRepo := new(mocks.TopicRepository)
		mockProgRepo := new(mocks.ProgressRepository)

		mockQuestionRepo.On("FindByID", ctx, db, questionID).Return(nil, model.ErrNotFound).Once()

		svc := NewQuestionService(db, mockQuestionRepo, mockTopicRepo, mockProgRepo, &testConfig)
		resp, err := svc.ToggleSolved(ctx, userID, questionID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, resp)
		mockProgRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 更新失敗は内部エラーに包まれる", func(t *testing.T) {
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockTopicRepo := new(mocks.TopicRepository)
		mockProgRepo := new(mocks.ProgressRepository)

		existing := &model.Progress{ProgressID: uuid.New(), UserID: userID, QuestionID: questionID}
		mockQuestionRepo.On("FindByID", ctx, db, questionID).Return(question, nil).Once()
		mockProgRepo.On("Find", ctx, anyDB, userID, questionID).Return(existing, nil).Once()
		mockProgRepo.On("Update", ctx, anyDB, mock.AnythingOfType("*model.Progress")).Return(errors.New("db error")).Once()

		svc := NewQuestionService(db, mockQuestionRepo, mockTopicRepo, mockProgRepo, &testConfig)
		resp, err := svc.ToggleSolved(ctx, userID, questionID)

		require.Error(t, err)
		assert.Nil(t, resp)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", appErr.Detail.Code)
	})
}

func Test_questionService_GetRevisitQuestions(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBQuestion()
	testConfig := config.Config{App: config.AppConfig{SearchLimit: 80}}
	userID := uuid.New()

	t.Run("正常系: タイトル昇順 (大文字小文字無視) で返り、孤児行は落ちる", func(t *testing.T) {
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockTopicRepo := new(mocks.TopicRepository)
		mockProgRepo := new(mocks.ProgressRepository)

		progresses := []*model.Progress{
			{QuestionID: uuid.New(), IsRevisit: true, Question: &model.Question{Title: "binary Search"}},
			{QuestionID: uuid.New(), IsRevisit: true, Question: nil}, // 孤児
			{QuestionID: uuid.New(), IsRevisit: true, Question: &model.Question{Title: "Add Two Numbers"}},
		}
		mockProgRepo.On("FindRevisit", ctx, db, userID).Return(progresses, nil).Once()

		svc := NewQuestionService(db, mockQuestionRepo, mockTopicRepo, mockProgRepo, &testConfig)
		got, err := svc.GetRevisitQuestions(ctx, userID)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Add Two Numbers", got[0].Title)
		assert.Equal(t, "binary Search", got[1].Title)
	})

	t.Run("正常系: 復習マークなしなら空スライス", func(t *testing.T) {
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockTopicRepo := new(mocks.TopicRepository)
		mockProgRepo := new(mocks.ProgressRepository)

		mockProgRepo.On("FindRevisit", ctx, db, userID).Return([]*model.Progress{}, nil).Once()

		svc := NewQuestionService(db, mockQuestionRepo, mockTopicRepo, mockProgRepo, &testConfig)
		got, err := svc.GetRevisitQuestions(ctx, userID)

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func Test_questionService_Search(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBQuestion()
	testConfig := config.Config{App: config.AppConfig{SearchLimit: 80}}
	userID := uuid.New()

	t.Run("正常系: トピックと問題がヒットし進捗がマージされる", func(t *testing.T) {
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockTopicRepo := new(mocks.TopicRepository)
		mockProgRepo := new(mocks.ProgressRepository)

		topicID := uuid.New()
		q1 := &model.Question{QuestionID: uuid.New(), Title: "Binary Search", Difficulty: model.DifficultyEasy}
		q2 := &model.Question{QuestionID: uuid.New(), Title: "Binary Tree Paths", Difficulty: model.DifficultyMedium}

		mockTopicRepo.On("Search", ctx, db, "binary", 80).
			Return([]*model.Topic{{TopicID: topicID, Name: "Binary Search", Category: "Algorithms"}}, nil).Once()
		mockQuestionRepo.On("Search", ctx, db, "binary", 80).
			Return([]*model.Question{q1, q2}, nil).Once()
		mockProgRepo.On("FindByQuestionIDs", ctx, db, userID, []uuid.UUID{q1.QuestionID, q2.QuestionID}).
			Return([]*model.Progress{{QuestionID: q1.QuestionID, IsSolved: true}}, nil).Once()

		svc := NewQuestionService(db, mockQuestionRepo, mockTopicRepo, mockProgRepo, &testConfig)
		resp, err := svc.Search(ctx, userID, "  binary  ")

		require.NoError(t, err)
		require.Len(t, resp.Topics, 1)
		assert.Equal(t, topicID, resp.Topics[0].TopicID)
		require.Len(t, resp.Questions, 2)
		assert.True(t, resp.Questions[0].IsSolved)
		assert.False(t, resp.Questions[1].IsSolved)
	})

	t.Run("正常系: 空クエリは検索せず空の結果を返す", func(t *testing.T) {
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockTopicRepo := new(mocks.TopicRepository)
		mockProgRepo := new(mocks.ProgressRepository)

		svc := NewQuestionService(db, mockQuestionRepo, mockTopicRepo, mockProgRepo, &testConfig)
		resp, err := svc.Search(ctx, userID, "   ")

		require.NoError(t, err)
		assert.Empty(t, resp.Topics)
		assert.Empty(t, resp.Questions)
		mockTopicRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockQuestionRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 問題検索が失敗したらエラー", func(t *testing.T) {
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockTopicRepo := new(mocks.TopicRepository)
		mockProgRepo := new(mocks.ProgressRepository)

		mockTopicRepo.On("Search", ctx, db, "graph", 80).Return([]*model.Topic{}, nil).Once()
		mockQuestionRepo.On("Search", ctx, db, "graph", 80).Return(nil, errors.New("db error")).Once()

		svc := NewQuestionService(db, mockQuestionRepo, mockTopicRepo, mockProgRepo, &testConfig)
		resp, err := svc.Search(ctx, userID, "graph")

		require.Error(t, err)
		assert.Nil(t, resp)
	})
}
