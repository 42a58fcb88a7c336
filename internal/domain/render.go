package domain

import (
	"fmt"
	"strings"
	"time"
)

// EmptyResponsesText is shown when nothing has been submitted yet
const EmptyResponsesText = "Ответов пока нет"

// moscow is UTC+3 without DST
var moscow = time.FixedZone("MSK", 3*60*60)

// HasCardLabel returns a user-friendly label for the hasCard answer
func HasCardLabel(value string) string {
	switch value {
	case HasCardYes:
		return "Да"
	case HasCardNo:
		return "Нет"
	}
	return value
}

// GenderLabel returns a user-friendly label for the gender answer
func GenderLabel(value string) string {
	switch value {
	case GenderMale:
		return "Мужской"
	case GenderFemale:
		return "Женский"
	}
	return value
}

// FormatTimestamp renders a timestamp in Moscow time
func FormatTimestamp(t time.Time) string {
	return t.In(moscow).Format("02.01.2006 15:04")
}

// Card renders a single response
func (r Response) Card(index int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📋 Ответ #%d\n", index)
	fmt.Fprintf(&b, "👤 Имя: %s\n", r.Name)
	fmt.Fprintf(&b, "🏙 Город: %s\n", r.City)
	fmt.Fprintf(&b, "🎂 Возраст: %s\n", r.Age)
	fmt.Fprintf(&b, "⏱ Часы работы: %s\n", r.WorkHours)
	fmt.Fprintf(&b, "💳 Есть карта: %s\n", HasCardLabel(r.HasCard))
	fmt.Fprintf(&b, "⚧ Пол: %s\n", GenderLabel(r.Gender))
	if r.CreatedAt != nil {
		fmt.Fprintf(&b, "🕒 %s\n", FormatTimestamp(*r.CreatedAt))
	}

	return b.String()
}

// RenderResponses returns one card per response, or the empty-state message
func RenderResponses(responses []Response) []string {
	if len(responses) == 0 {
		return []string{EmptyResponsesText}
	}

	cards := make([]string, 0, len(responses))
	for i, r := range responses {
		cards = append(cards, r.Card(i+1))
	}
	return cards
}
