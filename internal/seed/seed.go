// Package seed installs the canonical demo dataset: one account per role, a
// customer with orders across the pipeline, an open verification queue and
// the managed landing page content.
package seed

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brucekarangwamanzi/tuma-tr/internal/models"
	"github.com/brucekarangwamanzi/tuma-tr/internal/store"
)

// Well-known demo account emails.
const (
	EmailCustomer    = "john@tumalink.test"
	EmailNewCustomer = "amina@tumalink.test"
	EmailProcessor   = "jane@tumalink.test"
	EmailAdmin       = "admin@tumalink.test"
	EmailSuperAdmin  = "super@tumalink.test"
)

func at(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 9, 0, 0, 0, time.UTC)
}

// Apply populates the store with the demo dataset.
func Apply(st *store.Store) error {
	users := []*models.User{
		{Email: EmailCustomer, FullName: "John Mugisha", Phone: "+250 788 111 222", Role: models.RoleUser, IsVerified: true, BaseModel: models.BaseModel{CreatedAt: at(2023, time.November, 1)}},
		{Email: EmailNewCustomer, FullName: "Amina Uwase", Phone: "", Role: models.RoleUser, BaseModel: models.BaseModel{CreatedAt: at(2024, time.January, 15)}},
		{Email: EmailProcessor, FullName: "Jane Ingabire", Phone: "+250 788 333 444", Role: models.RoleOrderProcessor, IsVerified: true, BaseModel: models.BaseModel{CreatedAt: at(2023, time.June, 20)}},
		{Email: EmailAdmin, FullName: "Eric Habimana", Phone: "+250 788 555 666", Role: models.RoleAdmin, IsVerified: true, BaseModel: models.BaseModel{CreatedAt: at(2023, time.March, 10)}},
		{Email: EmailSuperAdmin, FullName: "Grace Mukamana", Phone: "+250 788 777 888", Role: models.RoleSuperAdmin, IsVerified: true, BaseModel: models.BaseModel{CreatedAt: at(2022, time.February, 1)}},
	}
	for _, u := range users {
		if err := st.InsertUser(u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}
	john, amina, jane := users[0], users[1], users[2]

	orders := []*models.Order{
		{
			UserID:        john.ID,
			ProductURL:    "https://example.com/product/123",
			ProductName:   "Ergonomic Office Chair",
			Quantity:      1,
			Variation:     "Black",
			Specifications: "With headrest",
			Notes:         "Please check quality before shipping.",
			ScreenshotURL: "https://cdn.tumalink.test/screens/chair.jpg",
			Status:        models.StatusInTransit,
			BaseModel:     models.BaseModel{CreatedAt: at(2024, time.January, 10), UpdatedAt: at(2024, time.January, 25)},
			StatusHistory: []models.StatusEntry{
				{Status: models.StatusRequested, Timestamp: at(2024, time.January, 10)},
				{Status: models.StatusPurchased, Timestamp: at(2024, time.January, 12)},
				{Status: models.StatusInWarehouse, Timestamp: at(2024, time.January, 18)},
				{Status: models.StatusInTransit, Timestamp: at(2024, time.January, 25)},
			},
		},
		{
			UserID:        john.ID,
			ProductURL:    "https://example.com/product/456",
			ProductName:   "Mechanical Keyboard",
			Quantity:      2,
			Variation:     "RGB, Blue Switches",
			ScreenshotURL: "https://cdn.tumalink.test/screens/keyboard.jpg",
			Status:        models.StatusCompleted,
			BaseModel:     models.BaseModel{CreatedAt: at(2023, time.December, 5), UpdatedAt: at(2023, time.December, 28)},
			StatusHistory: []models.StatusEntry{
				{Status: models.StatusRequested, Timestamp: at(2023, time.December, 5)},
				{Status: models.StatusPurchased, Timestamp: at(2023, time.December, 6)},
				{Status: models.StatusInWarehouse, Timestamp: at(2023, time.December, 12)},
				{Status: models.StatusInTransit, Timestamp: at(2023, time.December, 20)},
				{Status: models.StatusArrived, Timestamp: at(2023, time.December, 27)},
				{Status: models.StatusCompleted, Timestamp: at(2023, time.December, 28)},
			},
		},
		{
			UserID:        john.ID,
			ProductURL:    "https://example.com/product/789",
			ProductName:   "4K Webcam",
			Quantity:      1,
			ScreenshotURL: "https://cdn.tumalink.test/screens/webcam.jpg",
			Status:        models.StatusDeclined,
			BaseModel:     models.BaseModel{CreatedAt: at(2024, time.January, 20), UpdatedAt: at(2024, time.January, 21)},
			StatusHistory: []models.StatusEntry{
				{Status: models.StatusRequested, Timestamp: at(2024, time.January, 20)},
				{Status: models.StatusDeclined, Timestamp: at(2024, time.January, 21)},
			},
		},
		{
			UserID:        john.ID,
			ProductURL:    "https://example.com/product/101",
			ProductName:   "Wireless Mouse",
			Quantity:      1,
			ScreenshotURL: "https://cdn.tumalink.test/screens/mouse.jpg",
			Status:        models.StatusRequested,
			BaseModel:     models.BaseModel{CreatedAt: at(2024, time.February, 2)},
			StatusHistory: []models.StatusEntry{
				{Status: models.StatusRequested, Timestamp: at(2024, time.February, 2)},
			},
		},
		{
			UserID:        amina.ID,
			ProductURL:    "https://example.com/product/202",
			ProductName:   "Laptop Stand",
			Quantity:      1,
			Variation:     "Silver",
			ScreenshotURL: "https://cdn.tumalink.test/screens/stand.jpg",
			Status:        models.StatusInWarehouse,
			BaseModel:     models.BaseModel{CreatedAt: at(2024, time.January, 18), UpdatedAt: at(2024, time.January, 22)},
			StatusHistory: []models.StatusEntry{
				{Status: models.StatusRequested, Timestamp: at(2024, time.January, 18)},
				{Status: models.StatusPurchased, Timestamp: at(2024, time.January, 19)},
				{Status: models.StatusInWarehouse, Timestamp: at(2024, time.January, 22)},
			},
		},
	}
	for _, o := range orders {
		if err := st.InsertOrder(o); err != nil {
			return fmt.Errorf("seed order %s: %w", o.ProductName, err)
		}
	}
	chair, webcam := orders[0], orders[2]

	messages := []*models.Message{
		{OrderID: chair.ID, SenderID: john.ID, ReceiverID: jane.ID, SenderFullName: john.FullName, Text: "Hi, any update on my chair?", Timestamp: at(2024, time.January, 24)},
		{OrderID: chair.ID, SenderID: jane.ID, ReceiverID: john.ID, SenderFullName: jane.FullName, Text: "Hello John, it has been dispatched from the warehouse and is on its way.", Timestamp: at(2024, time.January, 25)},
		{OrderID: webcam.ID, SenderID: jane.ID, ReceiverID: john.ID, SenderFullName: jane.FullName, Text: "We had to decline this request as the item is out of stock with the seller.", Timestamp: at(2024, time.January, 21)},
	}
	for _, m := range messages {
		if _, err := st.AppendMessage(m); err != nil {
			return fmt.Errorf("seed message: %w", err)
		}
	}

	st.InsertVerification(&models.VerificationRequest{
		UserID:      amina.ID,
		FullName:    amina.FullName,
		Phone:       "+250 788 123 456",
		GovIDURL:    "https://cdn.tumalink.test/verify/amina-id.jpg",
		SelfieURL:   "https://cdn.tumalink.test/verify/amina-selfie.jpg",
		Status:      models.VerificationPending,
		SubmittedAt: at(2024, time.January, 16),
	})
	// A request whose account was deleted; the review flow must tolerate it.
	st.InsertVerification(&models.VerificationRequest{
		UserID:      uuid.New(),
		FullName:    "Departed Customer",
		Phone:       "+250 788 789 123",
		GovIDURL:    "https://cdn.tumalink.test/verify/gone-id.jpg",
		SelfieURL:   "https://cdn.tumalink.test/verify/gone-selfie.jpg",
		Status:      models.VerificationPending,
		SubmittedAt: at(2024, time.January, 17),
	})

	st.ReplaceSiteContent(models.SiteContent{
		About: models.AboutSection{
			Text:      "Tuma-Africa Link Cargo is your trusted partner for sourcing and shipping goods from China to Africa. We handle everything from finding products on platforms like Alibaba and 1688.com to logistics and customs, delivering right to your doorstep.",
			MediaURL:  "https://cdn.tumalink.test/content/about.jpg",
			MediaType: models.MediaImage,
		},
		Terms:       "These are the terms of service...",
		Privacy:     "This is the privacy policy...",
		SocialLinks: models.SocialLinks{Facebook: "https://facebook.com/tumalink", Twitter: "https://twitter.com/tumalink", Instagram: "https://instagram.com/tumalink"},
		Companies: []models.Company{
			{ID: uuid.New(), Name: "Alibaba", LogoURL: "https://cdn.tumalink.test/logos/alibaba.png", WebsiteURL: "https://alibaba.com"},
			{ID: uuid.New(), Name: "1688.com", LogoURL: "https://cdn.tumalink.test/logos/1688.png", WebsiteURL: "https://1688.com"},
			{ID: uuid.New(), Name: "Taobao", LogoURL: "https://cdn.tumalink.test/logos/taobao.png", WebsiteURL: "https://taobao.com"},
		},
		HeroMedia: []models.HeroMedia{
			{ID: uuid.New(), Type: models.MediaVideo, URL: "https://cdn.tumalink.test/hero/intro.mp4"},
			{ID: uuid.New(), Type: models.MediaImage, URL: "https://cdn.tumalink.test/hero/port.jpg"},
		},
		HeroDisplayMode: models.HeroModeVideo,
		Announcement: models.Announcement{
			Message: "Welcome to the new Tuma-Africa dashboard! We are currently in beta.",
			Active:  true,
		},
	})

	return nil
}
