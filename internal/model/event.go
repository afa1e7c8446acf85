package model

// Event — строка таблицы /Tables/Events.xlsx.
// Дата и время хранятся как ввёл администратор, без парсинга.
type Event struct {
	Name    string
	Date    string
	Time    string
	Details string
}
