// internal/model/enums_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Difficulty
	}{
		{"正常系: easy", "easy", DifficultyEasy},
		{"正常系: 大文字小文字と空白を無視", "  MEDIUM ", DifficultyMedium},
		{"正常系: hard", "Hard", DifficultyHard},
		{"正常系: 未知の値はUnknownに倒す", "insane", DifficultyUnknown},
		{"正常系: 空文字列もUnknown", "", DifficultyUnknown},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseDifficulty(tc.in))
		})
	}
}

func TestParseStatusFilter(t *testing.T) {
	assert.Equal(t, StatusSolved, ParseStatusFilter("solved"))
	assert.Equal(t, StatusUnsolved, ParseStatusFilter(" Unsolved "))
	assert.Equal(t, StatusRevisit, ParseStatusFilter("revisit"))
	// 未知の値はエラーにせずデフォルトに倒す
	assert.Equal(t, StatusAll, ParseStatusFilter("bogus"))
	assert.Equal(t, StatusAll, ParseStatusFilter(""))
}

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, SortByDifficulty, ParseSortOrder("difficulty"))
	assert.Equal(t, SortByTitle, ParseSortOrder("TITLE"))
	assert.Equal(t, SortByPosition, ParseSortOrder("order"))
	assert.Equal(t, SortByPosition, ParseSortOrder("bogus"))
}

func TestDifficultyRank(t *testing.T) {
	// Easy < Medium < Hard < Unknown の順序が保たれること
	assert.Less(t, DifficultyRank(DifficultyEasy), DifficultyRank(DifficultyMedium))
	assert.Less(t, DifficultyRank(DifficultyMedium), DifficultyRank(DifficultyHard))
	assert.Less(t, DifficultyRank(DifficultyHard), DifficultyRank(DifficultyUnknown))
}
