package models

import "github.com/google/uuid"

// MediaType distinguishes the coarse kinds of uploaded media.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// HeroDisplayMode selects how the landing page hero is rendered.
type HeroDisplayMode string

const (
	HeroModeVideo     HeroDisplayMode = "video"
	HeroModeSlideshow HeroDisplayMode = "slideshow"
)

// Company is a sourcing platform logo shown on the landing page.
type Company struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	LogoURL    string    `json:"logo_url"`
	WebsiteURL string    `json:"website_url"`
}

// HeroMedia is one slide or clip in the landing page hero section.
type HeroMedia struct {
	ID   uuid.UUID `json:"id"`
	Type MediaType `json:"type"`
	URL  string    `json:"url"`
}

// AboutSection holds the "about us" copy and its optional media.
type AboutSection struct {
	Text      string    `json:"text"`
	MediaURL  string    `json:"media_url,omitempty"`
	MediaType MediaType `json:"media_type,omitempty"`
}

// SocialLinks holds the public social profile URLs.
type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
}

// Announcement is the banner shown on customer dashboards.
type Announcement struct {
	Message string `json:"message"`
	Active  bool   `json:"active"`
}

// SiteContent is the managed content for the public site. There is exactly
// one instance; only super admins may edit it.
type SiteContent struct {
	About           AboutSection    `json:"about_us"`
	Terms           string          `json:"terms"`
	Privacy         string          `json:"privacy"`
	SocialLinks     SocialLinks     `json:"social_links"`
	Companies       []Company       `json:"companies"`
	HeroMedia       []HeroMedia     `json:"hero_media"`
	HeroDisplayMode HeroDisplayMode `json:"hero_display_mode"`
	Announcement    Announcement    `json:"dashboard_announcement"`
}

// Clone returns a deep copy so callers cannot alias stored slices.
func (c SiteContent) Clone() SiteContent {
	out := c
	out.Companies = make([]Company, len(c.Companies))
	copy(out.Companies, c.Companies)
	out.HeroMedia = make([]HeroMedia, len(c.HeroMedia))
	copy(out.HeroMedia, c.HeroMedia)
	return out
}
