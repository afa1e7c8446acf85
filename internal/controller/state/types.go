package state

// Step представляет текущий шаг диалога пользователя
type Step string

const (
	StepNone Step = "" // Нет активного диалога

	// Шаги регистрации: каждый ждёт ровно одно сообщение
	StepName    Step = "await_name"
	StepSurname Step = "await_surname"
	StepPhone   Step = "await_phone"
	StepSource  Step = "await_source"
	StepPhoto   Step = "await_photo"
	StepCourse  Step = "await_course"

	// Ожидание скриншота после кнопки «Оплата»
	StepPaymentProof Step = "await_payment_proof"

	// Шаги создания события (только администратор)
	StepEventName    Step = "await_event_name"
	StepEventDate    Step = "await_event_date"
	StepEventTime    Step = "await_event_time"
	StepEventDetails Step = "await_event_details"
)

// Session — эфемерное состояние диалога одного пользователя.
// Живёт только в памяти: рестарт процесса теряет незавершённую
// регистрацию. Текстовые поля хранятся дословно, без валидации.
type Session struct {
	Step Step

	// Данные регистрации
	Name     string
	Surname  string
	Phone    string
	Source   string
	PhotoURL string
	Course   string
	Balance  int

	// Черновик события администратора
	Event EventDraft
}

// EventDraft — накопленные поля события до записи в таблицу
type EventDraft struct {
	Name string
	Date string
	Time string
}
