package manager

import (
	"sort"
)

// MaxRunHistory bounds the number of finished runs kept for the stats panel.
const MaxRunHistory = 200

// RunRecord describes one life of the snake, from a reset to the next
// collision. Times are game-clock seconds.
type RunRecord struct {
	Start  float64
	End    float64
	Score  int
	Length int // longest tail target reached
}

// Duration returns the run length in seconds.
func (r RunRecord) Duration() float64 {
	return r.End - r.Start
}

// StateManager tracks the score of the current run and the history of
// finished runs for this session. Nothing is written to disk.
type StateManager struct {
	score       int
	peakLength  int
	runStart    float64
	highScore   int
	gamesPlayed int
	history     []RunRecord
}

func NewStateManager() *StateManager {
	return &StateManager{
		history: make([]RunRecord, 0),
	}
}

// AddScore counts one coin for the current run. It reports whether the
// session high score went up.
func (sm *StateManager) AddScore() bool {
	sm.score++
	if sm.score > sm.highScore {
		sm.highScore = sm.score
		return true
	}
	return false
}

// ObserveLength records the snake's tail target so the run keeps its peak.
func (sm *StateManager) ObserveLength(length int) {
	if length > sm.peakLength {
		sm.peakLength = length
	}
}

// EndRun closes the current run at game time now and starts the next one.
func (sm *StateManager) EndRun(now float64) RunRecord {
	record := RunRecord{
		Start:  sm.runStart,
		End:    now,
		Score:  sm.score,
		Length: sm.peakLength,
	}

	sm.history = append(sm.history, record)
	if len(sm.history) > MaxRunHistory {
		sm.history = sm.history[len(sm.history)-MaxRunHistory:]
	}
	sm.gamesPlayed++

	sm.score = 0
	sm.peakLength = 0
	sm.runStart = now
	return record
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

// GetGamesPlayed counts every finished run, including ones dropped from the history.
func (sm *StateManager) GetGamesPlayed() int {
	return sm.gamesPlayed
}

// GetHistory returns a copy of the retained runs, oldest first.
func (sm *StateManager) GetHistory() []RunRecord {
	history := make([]RunRecord, len(sm.history))
	copy(history, sm.history)
	return history
}

// GetScoreHistory returns the scores of the retained runs, oldest first.
func (sm *StateManager) GetScoreHistory() []int {
	scores := make([]int, len(sm.history))
	for i, r := range sm.history {
		scores[i] = r.Score
	}
	return scores
}

func (sm *StateManager) GetAverageScore() float64 {
	if len(sm.history) == 0 {
		return 0
	}
	total := 0
	for _, r := range sm.history {
		total += r.Score
	}
	return float64(total) / float64(len(sm.history))
}

func (sm *StateManager) GetMedianScore() float64 {
	if len(sm.history) == 0 {
		return 0
	}
	scores := make([]float64, len(sm.history))
	for i, r := range sm.history {
		scores[i] = float64(r.Score)
	}
	sort.Float64s(scores)

	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return (scores[mid-1] + scores[mid]) / 2
	}
	return scores[mid]
}

// GetMaxScore returns the best score among the retained runs.
func (sm *StateManager) GetMaxScore() int {
	maxScore := 0
	for _, r := range sm.history {
		if r.Score > maxScore {
			maxScore = r.Score
		}
	}
	return maxScore
}

// GetAverageDuration returns the mean run length in seconds.
func (sm *StateManager) GetAverageDuration() float64 {
	if len(sm.history) == 0 {
		return 0
	}
	var total float64
	for _, r := range sm.history {
		total += r.Duration()
	}
	return total / float64(len(sm.history))
}
