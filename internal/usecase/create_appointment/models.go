package create_appointment

import "github.com/m04kA/SMC-SalonService/internal/domain"

// Source кто создаёт запись
type Source string

const (
	SourceCustomer Source = "customer" // онлайн-запись клиента
	SourceAdmin    Source = "admin"    // ручной ввод администратором
)

// Request модель запроса на создание записи
type Request struct {
	ServiceID     string
	CustomerName  string
	CustomerPhone string
	Date          string // YYYY-MM-DD
	Time          string // HH:MM
	Source        Source
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment    domain.Appointment
	ServiceName    string
	SuccessMessage string // текст из настроек сайта для экрана подтверждения
}
