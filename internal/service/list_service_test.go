// internal/service/list_service_test.go
package service

import (
	"context"
	"testing"

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

func setupTestDBList() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for list service testing: " + err.Error())
	}
	return db
}

// blind75 相当の小さなリストを組み立てる。シート順は q1, q2, q3。
func buildTestList() (*model.List, []*model.Question) {
	q1 := &model.Question{QuestionID: uuid.New(), Title: "Two Sum", Difficulty: model.DifficultyEasy, Tags: "array,hash-table"}
	q2 := &model.Question{QuestionID: uuid.New(), Title: "Valid Anagram", Difficulty: model.DifficultyEasy, Tags: "string"}
	q3 := &model.Question{QuestionID: uuid.New(), Title: "Alien Dictionary", Difficulty: model.DifficultyHard, Tags: "graph"}
	list := &model.List{
		ListID:        uuid.New(),
		Name:          "Blind 75",
		Slug:          "blind-75",
		Group:         "Curated",
		QuestionCount: 3,
		Items: []model.ListItem{
			{QuestionID: q1.QuestionID, Position: 1, Question: q1},
			{QuestionID: q2.QuestionID, Position: 2, Question: q2},
			{QuestionID: q3.QuestionID, Position: 3, Question: q3},
		},
	}
	return list, []*model.Question{q1, q2, q3}
}

func Test_listService_GetLists(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBList()
	testConfig := config.Config{}
	userID := uuid.New()

	t.Run("正常系: 進捗が0埋めでマージされる", func(t *testing.T) {
		mockListRepo := new(mocks.ListRepository)
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockProgRepo := new(mocks.ProgressRepository)

		blind := &model.List{ListID: uuid.New(), Name: "Blind 75", Slug: "blind-75", Group: "Curated", QuestionCount: 75}
		neet := &model.List{ListID: uuid.New(), Name: "NeetCode 150", Slug: "neetcode-150", Group: "Curated", QuestionCount: 150}

		mockListRepo.On("FindAll", mock.Anything, db, "Curated").Return([]*model.List{blind, neet}, nil).Once()
		mockProgRepo.On("CountByList", mock.Anything, db, userID).
			Return([]model.ListProgressRow{{ListID: blind.ListID, Solved: 10, Revisit: 2}}, nil).Once()

		svc := NewListService(db, mockListRepo, mockQuestionRepo, mockProgRepo, &testConfig)
		resp, err := svc.GetLists(ctx, userID, "Curated")

		require.NoError(t, err)
		assert.False(t, resp.Empty)
		require.Len(t, resp.Lists, 2)
		assert.Equal(t, 10, resp.Lists[0].Solved)
		assert.Equal(t, 2, resp.Lists[0].Revisit)
		assert.Equal(t, 0, resp.Lists[1].Solved)
		assert.Equal(t, 0, resp.Lists[1].Revisit)
		assert.Equal(t, 150, resp.Lists[1].Total)
	})

	t.Run("正常系: リスト未シードなら Empty=true", func(t *testing.T) {
		mockListRepo := new(mocks.ListRepository)
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockProgRepo := new(mocks.ProgressRepository)

		mockListRepo.On("FindAll", mock.Anything, db, "").Return([]*model.List{}, nil).Once()
		mockProgRepo.On("CountByList", mock.Anything, db, userID).Return([]model.ListProgressRow{}, nil).Once()

		svc := NewListService(db, mockListRepo, mockQuestionRepo, mockProgRepo, &testConfig)
		resp, err := svc.GetLists(ctx, userID, "")

		require.NoError(t, err)
		assert.True(t, resp.Empty)
		assert.Empty(t, resp.Lists)
	})
}

func Test_listService_GetListQuestions(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBList()
	testConfig := config.Config{}
	userID := uuid.New()

	// q1=solved, q3=revisit
	setupMocks := func(list *model.List, qs []*model.Question) (*mocks.ListRepository, *mocks.QuestionRepository, *mocks.ProgressRepository) {
		mockListRepo := new(mocks.ListRepository)
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockProgRepo := new(mocks.ProgressRepository)
		mockListRepo.On("FindBySlug", ctx, db, "blind-75").Return(list, nil).Once()
		mockProgRepo.On("FindByQuestionIDs", ctx, db, userID, []uuid.UUID{qs[0].QuestionID, qs[1].QuestionID, qs[2].QuestionID}).
			Return([]*model.Progress{
				{QuestionID: qs[0].QuestionID, IsSolved: true},
				{QuestionID: qs[2].QuestionID, IsRevisit: true},
			}, nil).Once()
		return mockListRepo, mockQuestionRepo, mockProgRepo
	}

	t.Run("正常系: フィルタなしはシート順で全件返る", func(t *testing.T) {
		list, qs := buildTestList()
		mockListRepo, mockQuestionRepo, mockProgRepo := setupMocks(list, qs)

		svc := NewListService(db, mockListRepo, mockQuestionRepo, mockProgRepo, &testConfig)
		resp, err := svc.GetListQuestions(ctx, userID, "blind-75", model.ListQuestionsQuery{
			Status: model.StatusAll,
			Sort:   model.SortByPosition,
		})

		require.NoError(t, err)
		assert.Equal(t, 3, resp.List.Total)
		assert.Equal(t, 1, resp.List.Solved)
		assert.Equal(t, 1, resp.List.Revisit)
		require.Len(t, resp.Questions, 3)
		assert.Equal(t, "Two Sum", resp.Questions[0].Title)
		assert.Equal(t, "Valid Anagram", resp.Questions[1].Title)
		assert.Equal(t, "Alien Dictionary", resp.Questions[2].Title)
		assert.Equal(t, 1, resp.Questions[0].Position)
	})

	t.Run("正常系: 未解答フィルタ", func(t *testing.T) {
		list, qs := buildTestList()
		mockListRepo, mockQuestionRepo, mockProgRepo := setupMocks(list, qs)

		svc := NewListService(db, mockListRepo, mockQuestionRepo, mockProgRepo, &testConfig)
		resp, err := svc.GetListQuestions(ctx, userID, "blind-75", model.ListQuestionsQuery{
			Status: model.StatusUnsolved,
			Sort:   model.SortByPosition,
		})

		require.NoError(t, err)
		require.Len(t, resp.Questions, 2)
		assert.Equal(t, "Valid Anagram", resp.Questions[0].Title)
		assert.Equal(t, "Alien Dictionary", resp.Questions[1].Title)
		// サマリの件数はフィルタの影響を受けない
		assert.Equal(t, 3, resp.List.Total)
		assert.Equal(t, 1, resp.List.Solved)
	})

	t.Run("正常系: 難易度フィルタと検索の組み合わせ", func(t *testing.T) {
		list, qs := buildTestList()
		mockListRepo, mockQuestionRepo, mockProgRepo := setupMocks(list, qs)

		svc := NewListService(db, mockListRepo, mockQuestionRepo, mockProgRepo, &testConfig)
		resp, err := svc.GetListQuestions(ctx, userID, "blind-75", model.ListQuestionsQuery{
			Search:     "anagram",
			Difficulty: model.DifficultyEasy,
			HasDiff:    true,
			Status:     model.StatusAll,
			Sort:       model.SortByPosition,
		})

		require.NoError(t, err)
		require.Len(t, resp.Questions, 1)
		assert.Equal(t, "Valid Anagram", resp.Questions[0].Title)
	})

	t.Run("正常系: タグ検索でもヒットする", func(t *testing.T) {
		list, qs := buildTestList()
		mockListRepo, mockQuestionRepo, mockProgRepo := setupMocks(list, qs)

		svc := NewListService(db, mockListRepo, mockQuestionRepo, mockProgRepo, &testConfig)
		resp, err := svc.GetListQuestions(ctx, userID, "blind-75", model.ListQuestionsQuery{
			Search: "hash-table",
			Status: model.StatusAll,
			Sort:   model.SortByPosition,
		})

		require.NoError(t, err)
		require.Len(t, resp.Questions, 1)
		assert.Equal(t, "Two Sum", resp.Questions[0].Title)
	})

	t.Run("正常系: 難易度ソートは Easy < Medium < Hard、同率はタイトル順", func(t *testing.T) {
		list, qs := buildTestList()
		mockListRepo, mockQuestionRepo, mockProgRepo := setupMocks(list, qs)

		svc := NewListService(db, mockListRepo, mockQuestionRepo, mockProgRepo, &testConfig)
		resp, err := svc.GetListQuestions(ctx, userID, "blind-75", model.ListQuestionsQuery{
			Status: model.StatusAll,
			Sort:   model.SortByDifficulty,
		})

		require.NoError(t, err)
		require.Len(t, resp.Questions, 3)
		// Easy同士はタイトル昇順、Hardが最後
		assert.Equal(t, "Two Sum", resp.Questions[0].Title)
		assert.Equal(t, "Valid Anagram", resp.Questions[1].Title)
		assert.Equal(t, "Alien Dictionary", resp.Questions[2].Title)
	})

	t.Run("異常系: リストが存在しない", func(t *testing.T) {
		mockListRepo := new(mocks.ListRepository)
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockProgRepo := new(mocks.ProgressRepository)

		mockListRepo.On("FindBySlug", ctx, db, "no-such-list").Return(nil, model.ErrNotFound).Once()

		svc := NewListService(db, mockListRepo, mockQuestionRepo, mockProgRepo, &testConfig)
		resp, err := svc.GetListQuestions(ctx, userID, "no-such-list", model.ListQuestionsQuery{})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, resp)
	})
}

func Test_listService_GetListSummary(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBList()
	testConfig := config.Config{}
	userID := uuid.New()

	t.Run("正常系: 難易度内訳は全区分0埋め、トピック内訳付き", func(t *testing.T) {
		list, qs := buildTestList()
		ids := []uuid.UUID{qs[0].QuestionID, qs[1].QuestionID, qs[2].QuestionID}

		mockListRepo := new(mocks.ListRepository)
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockProgRepo := new(mocks.ProgressRepository)

		mockListRepo.On("FindBySlug", ctx, db, "blind-75").Return(list, nil).Once()
		mockProgRepo.On("FindByQuestionIDs", ctx, db, userID, ids).
			Return([]*model.Progress{{QuestionID: qs[0].QuestionID, IsSolved: true}}, nil).Once()
		mockQuestionRepo.On("CountByDifficultyForIDs", mock.Anything, db, ids).
			Return([]model.DifficultyCountRow{
				{Difficulty: model.DifficultyEasy, Count: 2},
				{Difficulty: model.DifficultyHard, Count: 1},
			}, nil).Once()
		mockQuestionRepo.On("CountByTopicForIDs", mock.Anything, db, ids, 12).
			Return([]*model.TopicCount{{Name: "Arrays & Hashing", Count: 2}, {Name: "Graphs", Count: 1}}, nil).Once()

		svc := NewListService(db, mockListRepo, mockQuestionRepo, mockProgRepo, &testConfig)
		resp, err := svc.GetListSummary(ctx, userID, "blind-75")

		require.NoError(t, err)
		assert.Equal(t, 3, resp.List.Total)
		assert.Equal(t, 1, resp.List.Solved)
		require.Len(t, resp.ByDifficulty, 4)
		assert.Equal(t, 2, resp.ByDifficulty[model.DifficultyEasy])
		assert.Equal(t, 0, resp.ByDifficulty[model.DifficultyMedium])
		assert.Equal(t, 1, resp.ByDifficulty[model.DifficultyHard])
		assert.Equal(t, 0, resp.ByDifficulty[model.DifficultyUnknown])
		require.Len(t, resp.ByTopic, 2)
		assert.Equal(t, "Arrays & Hashing", resp.ByTopic[0].Name)
	})
}
