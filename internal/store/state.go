package store

import "github.com/m04kA/SMC-SalonService/internal/domain"

// State разделяемое состояние приложения: четыре коллекции
type State struct {
	Appointments []domain.Appointment
	Services     []domain.Service
	Categories   []string
	Settings     domain.SiteSettings
}

// DefaultState состояние первого запуска
func DefaultState() *State {
	return &State{
		Appointments: []domain.Appointment{},
		Services:     domain.DefaultServices(),
		Categories:   domain.DefaultCategories(),
		Settings:     domain.DefaultSettings(),
	}
}

// Clone возвращает независимую копию состояния
func (s *State) Clone() *State {
	return &State{
		Appointments: append([]domain.Appointment{}, s.Appointments...),
		Services:     append([]domain.Service{}, s.Services...),
		Categories:   append([]string{}, s.Categories...),
		Settings:     s.Settings,
	}
}

// FindAppointment возвращает указатель на запись по ID или nil
func (s *State) FindAppointment(id string) *domain.Appointment {
	for i := range s.Appointments {
		if s.Appointments[i].ID == id {
			return &s.Appointments[i]
		}
	}
	return nil
}

// FindService возвращает указатель на услугу по ID или nil
func (s *State) FindService(id string) *domain.Service {
	for i := range s.Services {
		if s.Services[i].ID == id {
			return &s.Services[i]
		}
	}
	return nil
}

// ServiceName возвращает название услуги или fallback, если услуга удалена
func (s *State) ServiceName(id, fallback string) string {
	if service := s.FindService(id); service != nil {
		return service.Name
	}
	return fallback
}

// HasCategory проверяет наличие категории
func (s *State) HasCategory(name string) bool {
	for _, c := range s.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// CategoryInUse проверяет, ссылается ли хотя бы одна услуга на категорию
func (s *State) CategoryInUse(name string) bool {
	for i := range s.Services {
		if s.Services[i].Category == name {
			return true
		}
	}
	return false
}
