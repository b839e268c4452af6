// internal/service/list_service.go
package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"algobloom/internal/config"
	"algobloom/internal/middleware"
	"algobloom/internal/model"
	"algobloom/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// リストサマリのトピック内訳の上限
const listSummaryTopicLimit = 12

type ListService interface {
	GetLists(ctx context.Context, userID uuid.UUID, group string) (*model.ListsResponse, error)
	GetListQuestions(ctx context.Context, userID uuid.UUID, slug string, query model.ListQuestionsQuery) (*model.ListQuestionsResponse, error)
	GetListSummary(ctx context.Context, userID uuid.UUID, slug string) (*model.ListSummaryResponse, error)
}

type listService struct {
	db           *gorm.DB
	listRepo     repository.ListRepository
	questionRepo repository.QuestionRepository
	progRepo     repository.ProgressRepository
	cfg          *config.Config
}

func NewListService(db *gorm.DB, listRepo repository.ListRepository, questionRepo repository.QuestionRepository, progRepo repository.ProgressRepository, cfg *config.Config) ListService {
	return &listService{
		db:           db,
		listRepo:     listRepo,
		questionRepo: questionRepo,
		progRepo:     progRepo,
		cfg:          cfg,
	}
}

// GetLists は全リストに solved / revisit 件数を0埋めマージして返します。
// リストが1件もなければ Empty=true (未シード状態のUI判定用)。
func (s *listService) GetLists(ctx context.Context, userID uuid.UUID, group string) (*model.ListsResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	var (
		lists        []*model.List
		progressRows []model.ListProgressRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lists, err = s.listRepo.FindAll(gctx, s.db, group)
		return err
	})
	g.Go(func() error {
		var err error
		progressRows, err = s.progRepo.CountByList(gctx, s.db, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("Failed to build list summaries", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "リスト一覧の取得に失敗しました。", "", err)
	}

	byList := make(map[uuid.UUID]model.ListProgressRow, len(progressRows))
	for _, row := range progressRows {
		byList[row.ListID] = row
	}

	summaries := make([]*model.ListSummary, 0, len(lists))
	for _, l := range lists {
		row := byList[l.ListID]
		summaries = append(summaries, &model.ListSummary{
			ListID:  l.ListID,
			Name:    l.Name,
			Slug:    l.Slug,
			Group:   l.Group,
			Total:   l.QuestionCount,
			Solved:  row.Solved,
			Revisit: row.Revisit,
		})
	}
	return &model.ListsResponse{
		Lists: summaries,
		Empty: len(summaries) == 0,
	}, nil
}

// GetListQuestions はリスト配下の問題に進捗をマージし、
// 検索・難易度・状態で絞り込んだうえで指定の順序で返します。
// フィルタはマージ後の全件に対してメモリ内で適用します (リストは高々数百件)。
func (s *listService) GetListQuestions(ctx context.Context, userID uuid.UUID, slug string, query model.ListQuestionsQuery) (*model.ListQuestionsResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "slug", slug)

	list, merged, err := s.loadListWithProgress(ctx, userID, slug)
	if err != nil {
		logger.Error("Failed to load list questions", "error", err)
		return nil, err
	}

	// サマリのsolved/revisit件数はフィルタ前の全件で数える
	solved := 0
	revisit := 0
	for _, q := range merged {
		if q.IsSolved {
			solved++
		}
		if q.IsRevisit {
			revisit++
		}
	}

	filtered := make([]*model.QuestionWithProgress, 0, len(merged))
	search := strings.ToLower(strings.TrimSpace(query.Search))
	for _, q := range merged {
		if search != "" &&
			!strings.Contains(strings.ToLower(q.Title), search) &&
			!strings.Contains(strings.ToLower(q.Tags), search) {
			continue
		}
		if query.HasDiff && q.Difficulty != query.Difficulty {
			continue
		}
		switch query.Status {
		case model.StatusSolved:
			if !q.IsSolved {
				continue
			}
		case model.StatusUnsolved:
			if q.IsSolved {
				continue
			}
		case model.StatusRevisit:
			if !q.IsRevisit {
				continue
			}
		}
		filtered = append(filtered, q)
	}

	switch query.Sort {
	case model.SortByDifficulty:
		sort.SliceStable(filtered, func(i, j int) bool {
			ri, rj := model.DifficultyRank(filtered[i].Difficulty), model.DifficultyRank(filtered[j].Difficulty)
			if ri != rj {
				return ri < rj
			}
			return strings.ToLower(filtered[i].Title) < strings.ToLower(filtered[j].Title)
		})
	case model.SortByTitle:
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Title) < strings.ToLower(filtered[j].Title)
		})
	default:
		// シート順 (position) は loadListWithProgress のロード順で保持済み
	}

	return &model.ListQuestionsResponse{
		List: &model.ListSummary{
			ListID:  list.ListID,
			Name:    list.Name,
			Slug:    list.Slug,
			Group:   list.Group,
			Total:   len(merged),
			Solved:  solved,
			Revisit: revisit,
		},
		Questions: filtered,
	}, nil
}

// GetListSummary はリストの難易度内訳 (全難易度0埋め) とトピック内訳を返します
func (s *listService) GetListSummary(ctx context.Context, userID uuid.UUID, slug string) (*model.ListSummaryResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "slug", slug)

	list, merged, err := s.loadListWithProgress(ctx, userID, slug)
	if err != nil {
		logger.Error("Failed to load list for summary", "error", err)
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(merged))
	solved := 0
	revisit := 0
	for _, q := range merged {
		ids = append(ids, q.QuestionID)
		if q.IsSolved {
			solved++
		}
		if q.IsRevisit {
			revisit++
		}
	}

	var (
		diffRows  []model.DifficultyCountRow
		topicRows []*model.TopicCount
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		diffRows, err = s.questionRepo.CountByDifficultyForIDs(gctx, s.db, ids)
		return err
	})
	g.Go(func() error {
		var err error
		topicRows, err = s.questionRepo.CountByTopicForIDs(gctx, s.db, ids, listSummaryTopicLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("Failed to aggregate list summary", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "リストサマリの集計に失敗しました。", "", err)
	}

	byDifficulty := make(map[model.Difficulty]int, len(model.Difficulties))
	for _, d := range model.Difficulties {
		byDifficulty[d] = 0
	}
	for _, row := range diffRows {
		byDifficulty[model.ParseDifficulty(string(row.Difficulty))] += row.Count
	}

	return &model.ListSummaryResponse{
		List: &model.ListSummary{
			ListID:  list.ListID,
			Name:    list.Name,
			Slug:    list.Slug,
			Group:   list.Group,
			Total:   len(merged),
			Solved:  solved,
			Revisit: revisit,
		},
		ByDifficulty: byDifficulty,
		ByTopic:      topicRows,
	}, nil
}

// loadListWithProgress はリストをシート順でロードし、ユーザー進捗をマージします
func (s *listService) loadListWithProgress(ctx context.Context, userID uuid.UUID, slug string) (*model.List, []*model.QuestionWithProgress, error) {
	list, err := s.listRepo.FindBySlug(ctx, s.db, slug)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil, model.NewAppError("LIST_NOT_FOUND", "指定されたリストが見つかりません。", "", model.ErrNotFound)
		}
		return nil, nil, model.NewAppError("INTERNAL_SERVER_ERROR", "リストの取得に失敗しました。", "", err)
	}

	ids := make([]uuid.UUID, 0, len(list.Items))
	for _, item := range list.Items {
		ids = append(ids, item.QuestionID)
	}
	progresses, err := s.progRepo.FindByQuestionIDs(ctx, s.db, userID, ids)
	if err != nil {
		return nil, nil, model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の取得に失敗しました。", "", err)
	}
	byQuestion := make(map[uuid.UUID]*model.Progress, len(progresses))
	for _, p := range progresses {
		byQuestion[p.QuestionID] = p
	}

	merged := make([]*model.QuestionWithProgress, 0, len(list.Items))
	for _, item := range list.Items {
		if item.Question == nil {
			continue
		}
		q := &model.QuestionWithProgress{
			QuestionID: item.Question.QuestionID,
			Title:      item.Question.Title,
			Link:       item.Question.Link,
			Difficulty: item.Question.Difficulty,
			Tags:       item.Question.Tags,
			Position:   item.Position,
		}
		if p, ok := byQuestion[item.QuestionID]; ok {
			q.IsSolved = p.IsSolved
			q.IsRevisit = p.IsRevisit
		}
		merged = append(merged, q)
	}
	return list, merged, nil
}
