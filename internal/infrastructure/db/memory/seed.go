package memory

import (
	"time"

	"github.com/omotenashi/partner-crm/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedClients() []domain.Client {
	return []domain.Client{
		{
			ID:               "1",
			Name:             domain.BilingualString{EN: "Grand Palace Hotel", JA: "グランドパレスホテル"},
			Type:             []domain.Mode{domain.ModeHotel},
			CountryStrengths: []string{"South Korea", "USA", "Taiwan"},
			ContactName:      "Mr. Kim",
			ContactEmail:     "kim@grandpalace.com",
			ContactPhone:     "123-456-7890",
			Website:          "https://www.grandpalace.com",
		},
		{
			ID:               "2",
			Name:             domain.BilingualString{EN: "Sunrise Tours", JA: "サンライズツアー"},
			Type:             []domain.Mode{domain.ModeTourGuide},
			CountryStrengths: []string{"Singapore", "Malaysia"},
			ContactName:      "Mr. Tanaka",
		},
		{
			ID:               "3",
			Name:             domain.BilingualString{EN: "Tokyo Central Hotel", JA: "東京セントラルホテル"},
			Type:             []domain.Mode{domain.ModeHotel, domain.ModeTourGuide},
			CountryStrengths: []string{"USA", "UK"},
			ContactName:      "Ms. Smith",
			Website:          "https://tokyocentral.com",
		},
	}
}

func seedPlans() []domain.Plan {
	return []domain.Plan{
		{
			ID:          "p1",
			Name:        domain.BilingualString{EN: "Standard Banquet Plan", JA: "スタンダード宴会プラン"},
			Description: domain.BilingualString{EN: "A standard plan for parties.", JA: "一般的なパーティープランです。"},
			Type:        domain.PlanBanquet,
			Price:       10000,
			Season:      "All Year",
		},
		{
			ID:          "p2",
			Name:        domain.BilingualString{EN: "Luxury Accommodation", JA: "ラグジュアリー宿泊"},
			Description: domain.BilingualString{EN: "High-end accommodation with full service.", JA: "フルサービス付きの高級宿泊プラン。"},
			Type:        domain.PlanAccommodation,
			Price:       50000,
			Season:      "All Year",
		},
		{
			ID:          "p3",
			Name:        domain.BilingualString{EN: "Seasonal Lunch Menu", JA: "季節のランチメニュー"},
			Description: domain.BilingualString{EN: "A lunch menu featuring seasonal ingredients.", JA: "旬の食材を使ったランチメニュー。"},
			Type:        domain.PlanMenu,
			Price:       3000,
			Season:      "Spring",
		},
	}
}

func seedHistory() []domain.HistoryItem {
	return []domain.HistoryItem{
		{ID: "h1", ClientID: "1", Plan: domain.PlanRef{PlanID: "p1"}, Date: date(2023, time.October, 15), GroupSize: 50, Country: "South Korea"},
		{ID: "h2", ClientID: "1", Plan: domain.PlanRef{PlanID: "p2"}, Date: date(2023, time.November, 20), GroupSize: 2, Country: "USA"},
		{ID: "h3", ClientID: "2", Plan: domain.PlanRef{PlanID: domain.PlanRefOther, OtherDescription: "Custom city walking tour"}, Date: date(2023, time.September, 5), GroupSize: 15, Country: "Singapore"},
	}
}

func seedMemos() []domain.Memo {
	return []domain.Memo{
		{
			ID:        "m1",
			ClientID:  "1",
			Text:      "Mr. Kim is interested in a new banquet plan for the cherry blossom season.",
			Author:    "Sales Rep",
			CreatedAt: time.Date(2023, time.November, 1, 10, 0, 0, 0, time.UTC),
			MemoDate:  date(2023, time.November, 1),
		},
		{
			ID:        "m2",
			ClientID:  "2",
			Text:      "Followed up regarding summer tour packages. They need a plan for groups of 20+.",
			Author:    "Sales Rep",
			CreatedAt: time.Date(2023, time.October, 25, 14, 30, 0, 0, time.UTC),
			MemoDate:  date(2023, time.October, 25),
		},
	}
}

func seedCountries() []string {
	return []string{"South Korea", "USA", "Taiwan", "Singapore", "Malaysia", "UK", "China", "Canada", "Australia"}
}
