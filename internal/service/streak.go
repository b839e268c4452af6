// internal/service/streak.go
package service

import (
	"sort"
	"time"
)

// dayFormat はタイムゾーン変換済みの暦日文字列のフォーマットです
const dayFormat = "2006-01-02"

// ComputeStreak は解答のあった暦日の集合から現在/最長の連続日数を計算します。
// activeDays の各要素と today は同一タイムゾーンに変換済みの "YYYY-MM-DD" 文字列。
// today 自体はまだ未解答でも、昨日まで連続していればストリークは途切れていない扱い。
// 日付の差分は AddDate による暦日単位の演算で、DSTの影響を受けません。
// 空集合は (0, 0) を返し、エラーにはなりません。
func ComputeStreak(activeDays map[string]struct{}, today string) (current, best int) {
	cursor, err := time.Parse(dayFormat, today)
	if err != nil {
		return 0, bestStreak(activeDays)
	}

	// today が未解答でも、昨日が解答済みならそこからさかのぼる
	if _, ok := activeDays[cursor.Format(dayFormat)]; !ok {
		yesterday := cursor.AddDate(0, 0, -1)
		if _, ok := activeDays[yesterday.Format(dayFormat)]; ok {
			cursor = yesterday
		}
	}

	for {
		if _, ok := activeDays[cursor.Format(dayFormat)]; !ok {
			break
		}
		current++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return current, bestStreak(activeDays)
}

// bestStreak は昇順の一回走査で最長の連続日数を求めます。
// 前日との差がちょうど1日でなければ連続はリセットされます。
func bestStreak(activeDays map[string]struct{}) int {
	days := make([]time.Time, 0, len(activeDays))
	for d := range activeDays {
		t, err := time.Parse(dayFormat, d)
		if err != nil {
			continue
		}
		days = append(days, t)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	best := 0
	run := 0
	var prev time.Time
	for i, d := range days {
		if i == 0 || !prev.AddDate(0, 0, 1).Equal(d) {
			run = 1
		} else {
			run++
		}
		if run > best {
			best = run
		}
		prev = d
	}
	return best
}
