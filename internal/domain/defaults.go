package domain

// DefaultSettings настройки салона при первом запуске
func DefaultSettings() SiteSettings {
	return SiteSettings{
		BannerTitle:    "Güzelliğinizi Lumina ile Keşfedin",
		BannerSubtitle: "Profesyonel ellerde kendinizi şımartın. Modern teknikler ve premium ürünlerle en iyi versiyonunuza dönüşün.",
		BannerImage:    "https://images.unsplash.com/photo-1560750588-73207b1ef5b8?q=80&w=2070&auto=format&fit=crop",
		LogoURL:        "https://api.dicebear.com/7.x/initials/svg?seed=Lumina&backgroundColor=f43f5e",
		StartHour:      9,
		EndHour:        19,
		SuccessMessage: "Randevunuz başarıyla oluşturuldu! Dilerseniz aşağıdaki numaramızdan bizimle iletişime geçebilirsiniz. Sağlıklı günler dileriz.",
		ContactPhone:   "0212 555 00 00",
	}
}

// DefaultCategories категории при первом запуске
func DefaultCategories() []string {
	return []string{"Cilt Bakımı", "Saç", "Tırnak", "Masaj", "Makyaj"}
}

// DefaultServices каталог услуг при первом запуске
func DefaultServices() []Service {
	return []Service{
		{
			ID:          "1",
			Name:        "HydraFacial Cilt Bakımı",
			Description: "Cildinizi derinlemesine temizleyen, nemlendiren ve canlandıran premium bakım.",
			Duration:    60,
			Price:       850,
			Category:    "Cilt Bakımı",
			Image:       "https://picsum.photos/seed/face/400/300",
		},
		{
			ID:          "2",
			Name:        "Profesyonel Saç Kesimi",
			Description: "Yüz hattınıza ve tarzınıza uygun modern saç tasarımı ve şekillendirme.",
			Duration:    45,
			Price:       450,
			Category:    "Saç",
			Image:       "https://picsum.photos/seed/hair/400/300",
		},
		{
			ID:          "3",
			Name:        "Jel Tırnak Uygulaması",
			Description: "Dayanıklı, estetik ve uzun süre kalıcı profesyonel jel tırnak tasarımı.",
			Duration:    90,
			Price:       600,
			Category:    "Tırnak",
			Image:       "https://picsum.photos/seed/nails/400/300",
		},
		{
			ID:          "4",
			Name:        "Aromaterapi Masajı",
			Description: "Esansiyel yağlar eşliğinde ruhunuzu ve vücudunuzu dinlendiren bütünsel masaj.",
			Duration:    60,
			Price:       750,
			Category:    "Masaj",
			Image:       "https://picsum.photos/seed/massage/400/300",
		},
		{
			ID:          "5",
			Name:        "Gelin Makyajı",
			Description: "En özel gününüzde ışıltınızı ön plana çıkaracak suya dayanıklı profesyonel makyaj.",
			Duration:    120,
			Price:       1500,
			Category:    "Makyaj",
			Image:       "https://picsum.photos/seed/makeup/400/300",
		},
	}
}
