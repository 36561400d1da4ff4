package catalog

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ServiceInput данные услуги для создания и обновления
type ServiceInput struct {
	Name        string
	Description string
	Duration    int
	Price       float64
	Category    string
	Image       string
}

func (in *ServiceInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = domain.NormalizeCategory(in.Category)
	in.Image = strings.TrimSpace(in.Image)
}

func (in *ServiceInput) validate() error {
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(in.Name) > domain.MaxServiceNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if in.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	if in.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if in.Category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	return nil
}

func (in *ServiceInput) toDomain(id string) domain.Service {
	return domain.Service{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Duration:    in.Duration,
		Price:       in.Price,
		Category:    in.Category,
		Image:       in.Image,
	}
}
