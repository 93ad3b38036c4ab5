package session

import "github.com/thanhnt94/newmindstack-sub001/internal/models"

// Rating labels arrive in the domain vocabulary of the server; both the
// English and Vietnamese sets are in active use.
var correctLabels = map[string]struct{}{
	"good":      {},
	"easy":      {},
	"very_easy": {},
	"medium":    {},
	"nhớ":       {},
}

var incorrectLabels = map[string]struct{}{
	"fail":  {},
	"again": {},
	"quên":  {},
}

// Classify maps a rating label onto the session counters. Labels outside the
// correct and incorrect sets count as vague.
func Classify(label string) models.AnswerClass {
	if _, ok := correctLabels[label]; ok {
		return models.AnswerCorrect
	}
	if _, ok := incorrectLabels[label]; ok {
		return models.AnswerIncorrect
	}
	return models.AnswerVague
}

func deriveCategory(item models.Item) string {
	switch {
	case item.InitialStats.TotalReviews == 0:
		return "new"
	case item.InitialStats.IntervalMinutes < 24*60:
		return "learning"
	default:
		return "review"
	}
}
