package domain

import "time"

// Season тарифный сезон
type Season string

const (
	SeasonLow  Season = "low"
	SeasonMid  Season = "mid"
	SeasonHigh Season = "high"
)

// Seasons все сезоны в порядке вывода
var Seasons = []Season{SeasonLow, SeasonMid, SeasonHigh}

// IsValid true для известного сезона
func (s Season) IsValid() bool {
	return s == SeasonLow || s == SeasonMid || s == SeasonHigh
}

// Label название сезона для тарифной сетки
func (s Season) Label() string {
	switch s {
	case SeasonLow:
		return "Basse saison"
	case SeasonMid:
		return "Moyenne saison"
	case SeasonHigh:
		return "Haute saison"
	default:
		return string(s)
	}
}

// SeasonOf определяет сезон по дате заезда
//
// Границы сравниваются по месяцу и дню месяца независимо друг от друга, а не
// как непрерывный календарный интервал. Из-за этого, например, 1-26 октября
// попадают в средний сезон, а не в низкий. Поведение сохранено как есть:
// на нем построены действующие тарифы.
func SeasonOf(date time.Time) Season {
	month, day := int(date.Month()), date.Day()

	if (month >= 9 && day >= 27) || (month <= 4 && day <= 26) {
		return SeasonLow
	}
	if (month >= 7 && day >= 5) && (month <= 8 && day <= 30) {
		return SeasonHigh
	}
	return SeasonMid
}
