package store

import (
	"time"

	"cityreport-be/models"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func tsp(s string) *time.Time {
	t := ts(s)
	return &t
}

func strp(s string) *string { return &s }

// Seed returns the built-in snapshot. Each call returns fresh slices.
func Seed() Snapshot {
	return Snapshot{
		Complaints:   seedComplaints(),
		Categories:   seedCategories(),
		Institutions: seedInstitutions(),
		Clubs:        seedClubs(),
		Friends:      seedFriends(),
		User:         seedUser(),
	}
}

func seedComplaints() []models.Complaint {
	return []models.Complaint{
		{
			ID:              "1",
			Title:           "Ana Cadde üzerinde bozuk sokak lambası",
			Description:     "Sokak lambası 3 gündür yanmıyor, geceleri bölgeyi güvenli değil.",
			Category:        models.CategoryLighting,
			Status:          models.StatusInReview,
			Coords:          models.Coords{Latitude: 41.0082, Longitude: 28.9784},
			Address:         "Ana Cadde, Beyoğlu, İstanbul",
			Images:          []string{"https://via.placeholder.com/300x200", "https://via.placeholder.com/300x200"},
			CreatedAt:       ts("2024-12-01T10:30:00Z"),
			UpdatedAt:       ts("2024-12-02T14:20:00Z"),
			ReferenceNumber: "CTC-2024-001",
			Institution:     strp("İstanbul Elektrik Dağıtım"),
			Progress:        60,
			Timeline: []models.TimelineEvent{
				{ID: "1", Title: "Rapor Gönderildi", Description: "Şikayetiniz alındı", Timestamp: tsp("2024-12-01T10:30:00Z"), Status: models.TimelineCompleted},
				{ID: "2", Title: "Kuruma İletildi", Description: "İstanbul Elektrik Dağıtım'a gönderildi", Timestamp: tsp("2024-12-01T16:45:00Z"), Status: models.TimelineCompleted},
				{ID: "3", Title: "İnceleme Altında", Description: "Teknik ekip sorunu değerlendiriyor", Timestamp: tsp("2024-12-02T09:15:00Z"), Status: models.TimelineCurrent},
				{ID: "4", Title: "Çözüm", Description: "Sorun çözülecek", Status: models.TimelinePending},
			},
		},
		{
			ID:              "2",
			Title:           "İstiklal Caddesi'nde çukur",
			Description:     "Büyük çukur trafik sorunlarına ve potansiyel kazalara neden oluyor.",
			Category:        models.CategoryRoad,
			Status:          models.StatusAwaiting,
			Coords:          models.Coords{Latitude: 41.0369, Longitude: 28.9850},
			Address:         "İstiklal Caddesi, Beyoğlu, İstanbul",
			Images:          []string{"https://via.placeholder.com/300x200"},
			CreatedAt:       ts("2024-12-03T08:15:00Z"),
			UpdatedAt:       ts("2024-12-03T08:15:00Z"),
			ReferenceNumber: "CTC-2024-002",
			Progress:        20,
			Timeline:        initialTimeline(ts("2024-12-03T08:15:00Z")),
		},
		{
			ID:              "3",
			Title:           "Gürültü şikayeti - Gece inşaat",
			Description:     "Gece 22:00'den sonra inşaat çalışması yapılıyor, gürültü yönetmeliklerini ihlal ediyor.",
			Category:        models.CategoryNoise,
			Status:          models.StatusResolved,
			Coords:          models.Coords{Latitude: 41.0351, Longitude: 28.9840},
			Address:         "Galata Kulesi çevresi, Beyoğlu, İstanbul",
			Images:          []string{},
			CreatedAt:       ts("2024-11-28T22:30:00Z"),
			UpdatedAt:       ts("2024-11-30T16:00:00Z"),
			ReferenceNumber: "CTC-2024-003",
			Institution:     strp("Beyoğlu Belediyesi"),
			Progress:        100,
			Timeline: []models.TimelineEvent{
				{ID: "1", Title: "Report Submitted", Description: "Your complaint has been received", Timestamp: tsp("2024-11-28T22:30:00Z"), Status: models.TimelineCompleted},
				{ID: "2", Title: "Forwarded to Municipality", Description: "Sent to Beyoğlu Municipality", Timestamp: tsp("2024-11-29T09:00:00Z"), Status: models.TimelineCompleted},
				{ID: "3", Title: "Investigation", Description: "Municipal inspectors visited the site", Timestamp: tsp("2024-11-29T14:30:00Z"), Status: models.TimelineCompleted},
				{ID: "4", Title: "Resolved", Description: "Construction company was notified and work hours adjusted", Timestamp: tsp("2024-11-30T16:00:00Z"), Status: models.TimelineCompleted},
			},
		},
	}
}

// initialTimeline is the four-step history every new complaint starts with
func initialTimeline(submittedAt time.Time) []models.TimelineEvent {
	return []models.TimelineEvent{
		{ID: "1", Title: "Rapor Gönderildi", Description: "Şikayetiniz alındı", Timestamp: &submittedAt, Status: models.TimelineCompleted},
		{ID: "2", Title: "İlk İnceleme", Description: "Şikayet inceleniyor", Status: models.TimelineCurrent},
		{ID: "3", Title: "Kuruma İletildi", Description: "İlgili departmana gönderilecek", Status: models.TimelinePending},
		{ID: "4", Title: "Çözüm", Description: "Sorun çözülecek", Status: models.TimelinePending},
	}
}

func seedCategories() []models.Category {
	cats := []models.Category{{ID: models.FilterAll, Name: "Tümü", Icon: "grid", Color: "#6B7280"}}
	for _, id := range models.CategoryIDs {
		st, _ := id.Style()
		cats = append(cats, models.Category{ID: string(id), Name: st.Label, Icon: st.Icon, Color: st.Color})
	}
	return cats
}

func seedInstitutions() []models.Institution {
	return []models.Institution{
		{ID: "1", Name: "İstanbul Büyükşehir Belediyesi", Type: "Belediye", City: "İstanbul", District: "Fatih", Phone: "444 1 İBB", Email: "iletisim@ibb.gov.tr", Address: "Saraçhane, İstanbul", Rating: 4.2, ResponseTime: "2-3 gün"},
		{ID: "2", Name: "Kadıköy Belediyesi", Type: "İlçe Belediyesi", City: "İstanbul", District: "Kadıköy", Phone: "216 346 50 50", Email: "info@kadikoy.bel.tr", Address: "Osmanağa Mah. Kadıköy", Rating: 4.5, ResponseTime: "1-2 gün"},
		{ID: "3", Name: "İSKİ Genel Müdürlüğü", Type: "Su ve Kanalizasyon", City: "İstanbul", District: "Küçükçekmece", Phone: "444 1 İSKİ", Email: "info@iski.gov.tr", Address: "İSKİ Genel Müdürlüğü", Rating: 3.8, ResponseTime: "3-5 gün"},
		{ID: "4", Name: "İGDAŞ", Type: "Doğalgaz", City: "İstanbul", District: "Beyoğlu", Phone: "444 4 427", Email: "info@igdas.istanbul", Address: "Meclis-i Mebusan Cad.", Rating: 4.0, ResponseTime: "2-4 gün"},
		{ID: "5", Name: "İETT Genel Müdürlüğü", Type: "Ulaşım", City: "İstanbul", District: "Avcılar", Phone: "444 18 37", Email: "info@iett.istanbul", Address: "İETT Genel Müdürlüğü", Rating: 3.9, ResponseTime: "1-3 gün"},
		{ID: "6", Name: "Beşiktaş Belediyesi", Type: "İlçe Belediyesi", City: "İstanbul", District: "Beşiktaş", Phone: "212 310 10 10", Email: "info@besiktas.bel.tr", Address: "Barbaros Bulvarı", Rating: 4.3, ResponseTime: "1-2 gün"},
	}
}

func seedClubs() []models.Club {
	return []models.Club{
		{ID: "1", Name: "Temiz Sokaklar Girişimi", Description: "Mahallelerimizi temiz tutmak için birlikte çalışıyoruz", MemberCount: 847, Image: "https://via.placeholder.com/200x120", Category: "Çevre"},
		{ID: "2", Name: "Güvenli Yollar Koalisyonu", Description: "Daha iyi yol güvenliği önlemleri için savunuculuk yapıyoruz", MemberCount: 623, Image: "https://via.placeholder.com/200x120", Category: "Güvenlik"},
		{ID: "3", Name: "Park Koruyucuları", Description: "Kamu yeşil alanlarımızı koruyoruz ve bakımını yapıyoruz", MemberCount: 394, Image: "https://via.placeholder.com/200x120", Category: "Çevre"},
	}
}

func seedFriends() []models.Friend {
	return []models.Friend{
		{ID: "1", Name: "Ayşe K.", Avatar: "https://via.placeholder.com/40x40", RecentActivity: "Gezi Parkı'nda kırık bir bank bildirdi", ReportCount: 23},
		{ID: "2", Name: "Mehmet S.", Avatar: "https://via.placeholder.com/40x40", RecentActivity: "Bir çukur şikayetinin durumunu güncelledi", ReportCount: 45},
		{ID: "3", Name: "Elif T.", Avatar: "https://via.placeholder.com/40x40", RecentActivity: "Temiz Sokaklar Girişimi'ne katıldı", ReportCount: 12},
	}
}

func seedUser() models.User {
	return models.User{
		ID:          "1",
		Name:        "Taylan Deveci",
		Email:       "taylan@example.com",
		Avatar:      "https://via.placeholder.com/60x60",
		UseAlias:    true,
		Alias:       "CityGuardian",
		Points:      1247,
		Streak:      7,
		Badges:      []string{"İlk Rapor", "Topluluk Yardımcısı", "Problem Çözücü"},
		ReportCount: 15,
	}
}
