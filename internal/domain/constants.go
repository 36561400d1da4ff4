package domain

// Collection ключ коллекции в хранилище
type Collection string

const (
	CollectionAppointments Collection = "appointments"
	CollectionServices     Collection = "services"
	CollectionCategories   Collection = "categories"
	CollectionSettings     Collection = "settings"
)

// AllCollections порядок загрузки коллекций при старте
var AllCollections = []Collection{
	CollectionAppointments,
	CollectionServices,
	CollectionCategories,
	CollectionSettings,
}

// Slot grid constants
const (
	SlotDurationMinutes = 30
	SlotsPerHour        = 60 / SlotDurationMinutes
	MinHour             = 0
	MaxHour             = 24
)

// Reminder defaults
const (
	DefaultReminderWindowMinutes = 60
	DefaultReminderPollSeconds   = 30
)

// Business validation constants
const (
	MaxCustomerNameLength  = 100
	MaxCustomerPhoneLength = 32
	MaxCategoryNameLength  = 64
	MaxServiceNameLength   = 120
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Fallback names for dangling service references
const (
	UnknownServiceName  = "Bilinmeyen Hizmet"
	ReminderServiceName = "Hizmetiniz"
)
