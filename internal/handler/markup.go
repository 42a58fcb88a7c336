package handler

import (
	"fmt"

	"surveybot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// Inline keyboard buttons
var (
	btnNext = tele.Btn{
		Unique: "next",
		Text:   "Далее ➡️",
	}
	btnBack = tele.Btn{
		Unique: "back",
		Text:   "⬅️ Назад",
	}
	btnRestart = tele.Btn{
		Unique: "restart",
		Text:   "🔄 Пройти заново",
	}
	btnHasCardYes = tele.Btn{
		Unique: "has_card",
		Text:   domain.HasCardLabel(domain.HasCardYes),
		Data:   domain.HasCardYes,
	}
	btnHasCardNo = tele.Btn{
		Unique: "has_card",
		Text:   domain.HasCardLabel(domain.HasCardNo),
		Data:   domain.HasCardNo,
	}
	btnGenderMale = tele.Btn{
		Unique: "gender",
		Text:   domain.GenderLabel(domain.GenderMale),
		Data:   domain.GenderMale,
	}
	btnGenderFemale = tele.Btn{
		Unique: "gender",
		Text:   domain.GenderLabel(domain.GenderFemale),
		Data:   domain.GenderFemale,
	}
	btnRefresh = tele.Btn{
		Unique: "refresh",
		Text:   "🔄 Обновить",
	}
	btnExitAdmin = tele.Btn{
		Unique: "exit_admin",
		Text:   "🏠 К опросу",
	}
)

// choiceFields maps choice button uniques to the field they answer
var choiceFields = map[string]domain.Field{
	btnHasCardYes.Unique: domain.FieldHasCard,
	btnGenderMale.Unique: domain.FieldGender,
}

// Bot texts
const (
	textGreeting        = "👋 Здравствуйте! Ответьте, пожалуйста, на несколько коротких вопросов."
	textValidation      = "Пожалуйста, ответьте на вопрос, прежде чем продолжить."
	textUseButtons      = "Выберите один из вариантов кнопкой ниже."
	textThanks          = "✅ Спасибо! Ваши ответы отправлены."
	textAdminPrompt     = "🔐 Введите пароль администратора:"
	textInvalidPassword = "❌ Неверный пароль"
	textAdminResponses  = "📊 Ответы участников\nВсего: %d"
	textAdminUseButtons = "Вы уже вошли. Используйте кнопки ниже."
)

// questions holds the prompt for each field
var questions = map[domain.Field]string{
	domain.FieldCity:      "🏙 В каком городе вы живёте?",
	domain.FieldAge:       "🎂 Сколько вам лет?",
	domain.FieldWorkHours: "⏱ Сколько часов в день вы готовы работать?",
	domain.FieldHasCard:   "💳 Есть ли у вас банковская карта?",
	domain.FieldGender:    "⚧ Укажите ваш пол",
	domain.FieldName:      "👤 Как вас зовут?",
}

// isChoice reports whether a field is answered with buttons
func isChoice(f domain.Field) bool {
	return f == domain.FieldHasCard || f == domain.FieldGender
}

// answerLabel returns the answer as shown to the user
func answerLabel(f domain.Field, value string) string {
	switch f {
	case domain.FieldHasCard:
		return domain.HasCardLabel(value)
	case domain.FieldGender:
		return domain.GenderLabel(value)
	}
	return value
}

// questionText renders the current question with the saved answer, if any
func questionText(state domain.WizardState) string {
	field := state.CurrentField()
	text := fmt.Sprintf("Вопрос %d из %d\n\n%s", state.Step, domain.StepCount, questions[field])

	if value := state.Record.Get(field); value != "" {
		text += fmt.Sprintf("\n\nВаш ответ: %s", answerLabel(field, value))
	}
	if !isChoice(field) {
		text += "\n\nОтправьте ответ сообщением."
	}
	return text
}

// questionMarkup returns choice buttons and navigation for the current question
func questionMarkup(state domain.WizardState) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	switch state.CurrentField() {
	case domain.FieldHasCard:
		rows = append(rows, menu.Row(btnHasCardYes, btnHasCardNo))
	case domain.FieldGender:
		rows = append(rows, menu.Row(btnGenderMale, btnGenderFemale))
	}

	nav := tele.Row{}
	if state.Step > 1 {
		nav = append(nav, btnBack)
	}
	nav = append(nav, btnNext)
	rows = append(rows, nav)

	menu.Inline(rows...)
	return menu
}

// restartMarkup is shown after the survey is submitted
func restartMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnRestart))
	return menu
}

// adminMarkup is shown under the admin prompt
func adminMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnExitAdmin))
	return menu
}

// adminListMarkup is shown under the response list
func adminListMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnRefresh, btnExitAdmin))
	return menu
}
