package export_appointments

import (
	"bytes"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

const (
	utf8BOM        = "\uFEFF"
	csvContentType = "text/csv; charset=utf-8"
	filenamePrefix = "appointments_"
)

// row запись с разрешённым названием услуги
type row struct {
	domain.Appointment
	ServiceName string
}

var csvHeader = []string{"Customer Name", "Phone", "Service Name", "Date", "Time", "Status"}

// localizedStatus статус записи для выгрузки
func localizedStatus(status domain.AppointmentStatus) string {
	switch status {
	case domain.StatusConfirmed:
		return "Onaylandı"
	case domain.StatusCancelled:
		return "İptal Edildi"
	default:
		return "Beklemede"
	}
}

// quote оборачивает значение в кавычки, удваивая внутренние
func quote(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// render собирает файл: BOM, заголовок и по строке на запись, все значения строк в кавычках
func render(rows []row) []byte {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)
	buf.WriteString(strings.Join(csvHeader, ","))

	for _, r := range rows {
		buf.WriteByte('\n')
		fields := []string{
			r.CustomerName,
			r.CustomerPhone,
			r.ServiceName,
			r.Date,
			r.Time,
			localizedStatus(r.Status),
		}
		for i, field := range fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(quote(field))
		}
	}

	return buf.Bytes()
}
