package export_appointments

// Response готовый CSV-файл
type Response struct {
	Filename    string
	ContentType string
	Content     []byte
	Rows        int
}
