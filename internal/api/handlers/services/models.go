package services

import "github.com/m04kA/SMC-SalonService/internal/service/catalog"

// ServiceRequest HTTP request model для создания и обновления услуги
type ServiceRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// ToServiceInput конвертирует HTTP request в модель сервиса
func (r *ServiceRequest) ToServiceInput() *catalog.ServiceInput {
	return &catalog.ServiceInput{
		Name:        r.Name,
		Description: r.Description,
		Duration:    r.Duration,
		Price:       r.Price,
		Category:    r.Category,
		Image:       r.Image,
	}
}
