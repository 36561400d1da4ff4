package domain

// SiteSettings represents the salon-wide content and business hours
type SiteSettings struct {
	BannerTitle    string `json:"bannerTitle"`
	BannerSubtitle string `json:"bannerSubtitle"`
	BannerImage    string `json:"bannerImage"`
	LogoURL        string `json:"logoUrl"`
	StartHour      int    `json:"startHour"`
	EndHour        int    `json:"endHour"`
	SuccessMessage string `json:"successMessage"`
	ContactPhone   string `json:"contactPhone"`
}

// HasValidHours returns true if 0 <= StartHour < EndHour <= 24
func (s *SiteSettings) HasValidHours() bool {
	return s.StartHour >= MinHour && s.StartHour < s.EndHour && s.EndHour <= MaxHour
}

// SettingsPatch частичные настройки: nil означает "поле не задано"
// Используется и при загрузке сохранённых данных, и при обновлении администратором
type SettingsPatch struct {
	BannerTitle    *string `json:"bannerTitle,omitempty"`
	BannerSubtitle *string `json:"bannerSubtitle,omitempty"`
	BannerImage    *string `json:"bannerImage,omitempty"`
	LogoURL        *string `json:"logoUrl,omitempty"`
	StartHour      *int    `json:"startHour,omitempty"`
	EndHour        *int    `json:"endHour,omitempty"`
	SuccessMessage *string `json:"successMessage,omitempty"`
	ContactPhone   *string `json:"contactPhone,omitempty"`
}

// ApplyTo накладывает заданные поля патча на base, поле за полем
func (p SettingsPatch) ApplyTo(base SiteSettings) SiteSettings {
	if p.BannerTitle != nil {
		base.BannerTitle = *p.BannerTitle
	}
	if p.BannerSubtitle != nil {
		base.BannerSubtitle = *p.BannerSubtitle
	}
	if p.BannerImage != nil {
		base.BannerImage = *p.BannerImage
	}
	if p.LogoURL != nil {
		base.LogoURL = *p.LogoURL
	}
	if p.StartHour != nil {
		base.StartHour = *p.StartHour
	}
	if p.EndHour != nil {
		base.EndHour = *p.EndHour
	}
	if p.SuccessMessage != nil {
		base.SuccessMessage = *p.SuccessMessage
	}
	if p.ContactPhone != nil {
		base.ContactPhone = *p.ContactPhone
	}
	return base
}
