// internal/service/dashboard_service.go
package service

import (
	"context"
	"errors"
	"time"

	"algobloom/internal/config"
	"algobloom/internal/middleware"
	"algobloom/internal/model"
	"algobloom/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// チャートは直近30日、ヒートマップは直近90日で固定
const (
	chartWindowDays   = 30
	heatmapWindowDays = 90
)

type DashboardService interface {
	BuildDashboard(ctx context.Context, userID uuid.UUID, now time.Time) (*model.DashboardResponse, error)
}

type dashboardService struct {
	db           *gorm.DB
	userRepo     repository.UserRepository
	questionRepo repository.QuestionRepository
	progRepo     repository.ProgressRepository
	cfg          *config.Config
}

func NewDashboardService(db *gorm.DB, userRepo repository.UserRepository, questionRepo repository.QuestionRepository, progRepo repository.ProgressRepository, cfg *config.Config) DashboardService {
	return &dashboardService{
		db:           db,
		userRepo:     userRepo,
		questionRepo: questionRepo,
		progRepo:     progRepo,
		cfg:          cfg,
	}
}

// BuildDashboard はダッシュボードの集約ペイロードを構築します。
// 各集計は独立なので並行で発行し、1つでも失敗したら全体を失敗させます (部分結果は返さない)。
func (s *dashboardService) BuildDashboard(ctx context.Context, userID uuid.UUID, now time.Time) (*model.DashboardResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrUserNotFound)
		}
		logger.Error("Failed to find user for dashboard", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザー情報の取得に失敗しました。", "", err)
	}

	// タイムゾーンはユーザー設定。解決できない値はUTCに縮退させ、リクエストは失敗させない。
	tz := user.Timezone
	if tz == "" {
		tz = "UTC"
	}
	loc, locErr := time.LoadLocation(tz)
	if locErr != nil {
		logger.Warn("Unresolvable user timezone, falling back to UTC", "timezone", tz, "error", locErr)
		tz = "UTC"
		loc = time.UTC
	}

	dailyGoal := user.DailyGoal
	if dailyGoal <= 0 {
		dailyGoal = s.cfg.App.DefaultDailyGoal
	}

	localNow := now.In(loc)
	todayLocal := localNow.Format(dayFormat)

	// 互いに依存しない集計は並行で取得する。
	// ストリーク計算だけは全期間の日別集計の完了を待つ。
	var (
		dayRows      []model.DayCount
		totalsByDiff []model.DifficultyCountRow
		solvedByDiff []model.DifficultyCountRow
		totalCount   int64
		solvedCount  int64
		revisitCount int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		dayRows, err = s.progRepo.CountSolvedByDay(gctx, s.db, userID, tz)
		return err
	})
	g.Go(func() error {
		var err error
		totalCount, err = s.questionRepo.CountAll(gctx, s.db)
		return err
	})
	g.Go(func() error {
		var err error
		totalsByDiff, err = s.questionRepo.CountByDifficulty(gctx, s.db)
		return err
	})
	g.Go(func() error {
		var err error
		solvedByDiff, err = s.progRepo.CountSolvedByDifficulty(gctx, s.db, userID)
		return err
	})
	g.Go(func() error {
		var err error
		solvedCount, err = s.progRepo.CountSolved(gctx, s.db, userID)
		return err
	})
	g.Go(func() error {
		var err error
		revisitCount, err = s.progRepo.CountRevisit(gctx, s.db, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("Dashboard aggregation failed", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ダッシュボードの集計に失敗しました。", "", err)
	}

	// 全期間の日別集計とアクティブ日集合
	allTimeDaily := make(map[string]int, len(dayRows))
	activeDays := make(map[string]struct{}, len(dayRows))
	for _, row := range dayRows {
		allTimeDaily[row.Day] = row.Count
		if row.Count > 0 {
			activeDays[row.Day] = struct{}{}
		}
	}

	solvedToday := allTimeDaily[todayLocal]
	goalRemaining := dailyGoal - solvedToday
	if goalRemaining < 0 {
		goalRemaining = 0
	}

	streakCurrent, streakBest := ComputeStreak(activeDays, todayLocal)

	// 難易度別は4区分すべてを0埋めで必ず出力する
	totalsMap := make(map[model.Difficulty]int, len(totalsByDiff))
	for _, row := range totalsByDiff {
		totalsMap[model.ParseDifficulty(string(row.Difficulty))] += row.Count
	}
	solvedMap := make(map[model.Difficulty]int, len(solvedByDiff))
	for _, row := range solvedByDiff {
		solvedMap[model.ParseDifficulty(string(row.Difficulty))] += row.Count
	}
	byDifficulty := make(map[model.Difficulty]model.DifficultyStat, len(model.Difficulties))
	for _, d := range model.Difficulties {
		byDifficulty[d] = model.DifficultyStat{
			Solved: solvedMap[d],
			Total:  totalsMap[d],
		}
	}

	// 窓は密 (解答ゼロの日も件数0で必ず含める)。チャート側で穴埋めさせない。
	today := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, loc)
	last30Days := make([]model.DailySolved, 0, chartWindowDays)
	start30 := today.AddDate(0, 0, -(chartWindowDays - 1))
	for i := 0; i < chartWindowDays; i++ {
		day := start30.AddDate(0, 0, i).Format(dayFormat)
		last30Days = append(last30Days, model.DailySolved{Day: day, Solved: allTimeDaily[day]})
	}
	heatmap90Days := make([]model.DayCount, 0, heatmapWindowDays)
	start90 := today.AddDate(0, 0, -(heatmapWindowDays - 1))
	for i := 0; i < heatmapWindowDays; i++ {
		day := start90.AddDate(0, 0, i).Format(dayFormat)
		heatmap90Days = append(heatmap90Days, model.DayCount{Day: day, Count: allTimeDaily[day]})
	}

	remainingCount := int(totalCount) - int(solvedCount)
	if remainingCount < 0 {
		remainingCount = 0
	}

	return &model.DashboardResponse{
		Timezone:       tz,
		TotalQuestions: int(totalCount),
		SolvedCount:    int(solvedCount),
		RemainingCount: remainingCount,
		RevisitCount:   int(revisitCount),
		SolvedToday:    solvedToday,
		DailyGoal:      dailyGoal,
		GoalRemaining:  goalRemaining,
		StreakCurrent:  streakCurrent,
		StreakBest:     streakBest,
		ByDifficulty:   byDifficulty,
		Last30Days:     last30Days,
		Heatmap90Days:  heatmap90Days,
		AllTimeDaily:   allTimeDaily,
	}, nil
}
