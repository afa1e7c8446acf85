package handlers

import (
	"fmt"

	"github.com/go-telegram/bot/models"

	"github.com/provkin/tgbot/internal/controller/keyboard"
	"github.com/provkin/tgbot/internal/model"
)

// Callback данные кнопок
const (
	cbPayment      = "payment"
	cbEvents       = "events"
	cbTeachers     = "teachers"
	cbChangeCourse = "change_course"
	cbCreateEvent  = "create_event"
	cbListEvents   = "list_events"
	cbCoursePrefix = "course:"
)

// ProfileKeyboard — меню студента после регистрации
func ProfileKeyboard() *models.InlineKeyboardMarkup {
	return keyboard.NewBuilder().
		Row(
			keyboard.Button("💳 Оплата", cbPayment),
			keyboard.Button("📅 События", cbEvents),
		).
		Row(
			keyboard.Button("👩🏫 Педагоги", cbTeachers),
			keyboard.Button("🎓 Перейти на курс", cbChangeCourse),
		).
		Build()
}

// AdminKeyboard — панель администратора
func AdminKeyboard() *models.InlineKeyboardMarkup {
	return keyboard.NewBuilder().
		Row(
			keyboard.Button("📝 Создать событие", cbCreateEvent),
			keyboard.Button("📋 Список событий", cbListEvents),
		).
		Build()
}

// courseKeyboard строит по кнопке на каждый курс каталога.
// Любая нажимаемая кнопка заведомо есть в каталоге.
func courseKeyboard(catalog model.Catalog) *models.InlineKeyboardMarkup {
	b := keyboard.NewBuilder()
	for _, name := range catalog.Names() {
		price, _ := catalog.Price(name)
		b.Row(keyboard.Button(
			fmt.Sprintf("%s — %d руб", name, price),
			cbCoursePrefix+name,
		))
	}
	return b.Build()
}
