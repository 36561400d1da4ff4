package get_available_slots

// Request модель запроса на получение слотов
type Request struct {
	Date string // YYYY-MM-DD
}

// Response модель ответа со списком слотов рабочего дня
type Response struct {
	Date      string
	StartHour int
	EndHour   int
	Slots     []Slot
}

// Slot модель временного слота
type Slot struct {
	Time      string // Время начала слота, например "10:00"
	Available bool   // false, если слот занят активной записью
}
