package domain

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// LongDateFormat формат даты в письмах и на странице отслеживания
	LongDateFormat = "Monday, January 2, 2006"
)

// Ограничения полей бронирования
const (
	MaxCustomerNameLength        = 100
	MaxCustomerPhoneLength       = 32
	MaxSpecialInstructionsLength = 500
	MaxItemsDescriptionLength    = 200
)

// Параметры выборок
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100

	// StatsUpcomingDays окно "ближайших" бронирований в статистике
	StatsUpcomingDays = 7

	// NextAvailableScanDays сколько дней вперед смотрим в поиске ближайших слотов
	NextAvailableScanDays = 7
	// NextAvailableMaxDays сколько дней со слотами возвращаем
	NextAvailableMaxDays = 3
	// NextAvailableSlotsPerDay сколько первых слотов показываем на каждый день
	NextAvailableSlotsPerDay = 5
)
