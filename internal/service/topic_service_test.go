// internal/service/topic_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

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

func setupTestDBTopic() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for topic service testing: " + err.Error())
	}
	return db
}

func Test_topicService_GetTopics(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBTopic()
	userID := uuid.New()

	t.Run("正常系: 進捗のないトピックも件数0で含まれる", func(t *testing.T) {
		mockTopicRepo := new(mocks.TopicRepository)
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockProgRepo := new(mocks.ProgressRepository)

		arrays := &model.Topic{TopicID: uuid.New(), Name: "Arrays & Hashing", Slug: "arrays-hashing", Category: "Topic", QuestionCount: 9}
		graphs := &model.Topic{TopicID: uuid.New(), Name: "Graphs", Slug: "graphs", Category: "Topic", QuestionCount: 6}

		mockTopicRepo.On("FindAll", mock.Anything, db).Return([]*model.Topic{arrays, graphs}, nil).Once()
		mockProgRepo.On("CountSolvedByTopic", mock.Anything, db, userID).
			Return([]model.TopicProgressRow{{TopicID: arrays.TopicID, Count: 4}}, nil).Once()
		mockProgRepo.On("CountRevisitByTopic", mock.Anything, db, userID).
			Return([]model.TopicProgressRow{{TopicID: arrays.TopicID, Count: 1}}, nil).Once()

		svc := NewTopicService(db, mockTopicRepo, mockQuestionRepo, mockProgRepo)
		got, err := svc.GetTopics(ctx, userID)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, &model.TopicSummary{
			TopicID: arrays.TopicID, Name: "Arrays & Hashing", Slug: "arrays-hashing",
			Category: "Topic", Total: 9, Solved: 4, Revisit: 1,
		}, got[0])
		assert.Equal(t, 0, got[1].Solved)
		assert.Equal(t, 0, got[1].Revisit)
		assert.Equal(t, 6, got[1].Total)
		mockProgRepo.AssertExpectations(t)
	})

	t.Run("正常系: トピック未シードなら空スライス", func(t *testing.T) {
		mockTopicRepo := new(mocks.TopicRepository)
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockProgRepo := new(mocks.ProgressRepository)

		mockTopicRepo.On("FindAll", mock.Anything, db).Return([]*model.Topic{}, nil).Once()
		mockProgRepo.On("CountSolvedByTopic", mock.Anything, db, userID).Return([]model.TopicProgressRow{}, nil).Once()
		mockProgRepo.On("CountRevisitByTopic", mock.Anything, db, userID).Return([]model.TopicProgressRow{}, nil).Once()

		svc := NewTopicService(db, mockTopicRepo, mockQuestionRepo, mockProgRepo)
		got, err := svc.GetTopics(ctx, userID)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("異常系: 集計が失敗したら全体が失敗する", func(t *testing.T) {
		mockTopicRepo := new(mocks.TopicRepository)
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockProgRepo := new(mocks.ProgressRepository)

		mockTopicRepo.On("FindAll", mock.Anything, db).Return(nil, errors.New("db error")).Once()
		mockProgRepo.On("CountSolvedByTopic", mock.Anything, db, userID).Return([]model.TopicProgressRow{}, nil).Maybe()
		mockProgRepo.On("CountRevisitByTopic", mock.Anything, db, userID).Return([]model.TopicProgressRow{}, nil).Maybe()

		svc := NewTopicService(db, mockTopicRepo, mockQuestionRepo, mockProgRepo)
		got, err := svc.GetTopics(ctx, userID)

		require.Error(t, err)
		assert.Nil(t, got)
	})
}

func Test_topicService_GetTopicQuestions(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBTopic()
	userID := uuid.New()
	topicID := uuid.New()

	topic := &model.Topic{TopicID: topicID, Name: "Binary Search", Slug: "binary-search", Category: "Topic", QuestionCount: 2}

	t.Run("正常系: 問題一覧に進捗がマージされサマリが数え直される", func(t *testing.T) {
		mockTopicRepo := new(mocks.TopicRepository)
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockProgRepo := new(mocks.ProgressRepository)

		q1 := &model.Question{QuestionID: uuid.New(), Title: "Binary Search", Difficulty: model.DifficultyEasy}
		q2 := &model.Question{QuestionID: uuid.New(), Title: "Search a 2D Matrix", Difficulty: model.DifficultyMedium}

		mockTopicRepo.On("FindByID", ctx, db, topicID).Return(topic, nil).Once()
		mockQuestionRepo.On("FindByTopic", ctx, db, topicID).Return([]*model.Question{q1, q2}, nil).Once()
		mockProgRepo.On("FindByQuestionIDs", ctx, db, userID, []uuid.UUID{q1.QuestionID, q2.QuestionID}).
			Return([]*model.Progress{
				{QuestionID: q1.QuestionID, IsSolved: true},
				{QuestionID: q2.QuestionID, IsRevisit: true},
			}, nil).Once()

		svc := NewTopicService(db, mockTopicRepo, mockQuestionRepo, mockProgRepo)
		resp, err := svc.GetTopicQuestions(ctx, userID, topicID)

		require.NoError(t, err)
		assert.Equal(t, 2, resp.Topic.Total)
		assert.Equal(t, 1, resp.Topic.Solved)
		assert.Equal(t, 1, resp.Topic.Revisit)
		require.Len(t, resp.Questions, 2)
		assert.True(t, resp.Questions[0].IsSolved)
		assert.False(t, resp.Questions[0].IsRevisit)
		assert.True(t, resp.Questions[1].IsRevisit)
	})

	t.Run("異常系: トピックが存在しない", func(t *testing.T) {
		mockTopicRepo := new(mocks.TopicRepository)
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockProgRepo := new(mocks.ProgressRepository)

		mockTopicRepo.On("FindByID", ctx, db, topicID).Return(nil, model.ErrNotFound).Once()

		svc := NewTopicService(db, mockTopicRepo, mockQuestionRepo, mockProgRepo)
		resp, err := svc.GetTopicQuestions(ctx, userID, topicID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, resp)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "TOPIC_NOT_FOUND", appErr.Detail.Code)
	})
}
