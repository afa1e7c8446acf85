package model

// Student — строка таблицы /Tables/Students.xlsx.
// Баланс хранится со знаком: отрицательный — студент должен школе.
// UserID уникален в пределах таблицы и служит ключом сверки платежей.
type Student struct {
	Name      string
	Surname   string
	Phone     string
	Course    string
	Balance   int
	UserID    int64
	PhotoLink string
}

// Registration — данные, собранные диалогом регистрации до выбора курса.
type Registration struct {
	Name     string
	Surname  string
	Phone    string
	Source   string
	PhotoURL string
	UserID   int64
}
