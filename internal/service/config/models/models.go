package models

// SettingsResponse публичные настройки бизнеса и расписания
type SettingsResponse struct {
	BusinessName    string   `json:"businessName"`
	BusinessAddress string   `json:"businessAddress"`
	OpeningHour     int      `json:"openingHour"`
	ClosingHour     int      `json:"closingHour"`
	SlotDuration    int      `json:"slotDuration"` // минуты
	Timezone        string   `json:"timezone"`
	OperatingDays   []string `json:"operatingDays"`
	ClosedDays      []string `json:"closedDays"`
}
