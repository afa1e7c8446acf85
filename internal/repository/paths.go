package repository

// Раскладка папок на диске. Папки создаются идемпотентно при старте.
const (
	StudentPhotosFolder = "/StudentPhotos"
	PaymentsFolder      = "/Payments"
	TablesFolder        = "/Tables"

	StudentsTable = TablesFolder + "/Students.xlsx"
	EventsTable   = TablesFolder + "/Events.xlsx"
)

// Folders возвращает папки, которые должны существовать на диске
func Folders() []string {
	return []string{StudentPhotosFolder, PaymentsFolder, TablesFolder}
}
