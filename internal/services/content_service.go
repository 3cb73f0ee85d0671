package services

import (
	"errors"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/brucekarangwamanzi/tuma-tr/internal/apperr"
	"github.com/brucekarangwamanzi/tuma-tr/internal/authz"
	"github.com/brucekarangwamanzi/tuma-tr/internal/models"
	"github.com/brucekarangwamanzi/tuma-tr/internal/store"
)

// ContentService manages the public site content. Reads are open to anyone;
// every edit requires the super admin capability.
type ContentService struct {
	store *store.Store
}

// NewContentService constructs ContentService.
func NewContentService(st *store.Store) *ContentService {
	return &ContentService{store: st}
}

// Get returns the managed site content. Public, no actor needed.
func (s *ContentService) Get() models.SiteContent {
	return s.store.SiteContent()
}

// UpdateAbout replaces the about section.
func (s *ContentService) UpdateAbout(actor models.User, about models.AboutSection) error {
	if err := s.requireEditor(actor); err != nil {
		return err
	}
	about.Text = strings.TrimSpace(about.Text)
	if about.Text == "" {
		return apperr.Validation("about text is required")
	}
	if about.MediaURL != "" {
		if err := validateContentURL(about.MediaURL); err != nil {
			return err
		}
		if about.MediaType != models.MediaImage && about.MediaType != models.MediaVideo {
			return apperr.Validation("about media must be an image or a video")
		}
	}
	s.store.SetAbout(about)
	return nil
}

// UpdateTerms replaces the terms of service text.
func (s *ContentService) UpdateTerms(actor models.User, terms string) error {
	if err := s.requireEditor(actor); err != nil {
		return err
	}
	s.store.SetTerms(strings.TrimSpace(terms))
	return nil
}

// UpdatePrivacy replaces the privacy policy text.
func (s *ContentService) UpdatePrivacy(actor models.User, privacy string) error {
	if err := s.requireEditor(actor); err != nil {
		return err
	}
	s.store.SetPrivacy(strings.TrimSpace(privacy))
	return nil
}

// UpdateSocialLinks replaces the social profile URLs.
func (s *ContentService) UpdateSocialLinks(actor models.User, links models.SocialLinks) error {
	if err := s.requireEditor(actor); err != nil {
		return err
	}
	s.store.SetSocialLinks(links)
	return nil
}

// UpdateAnnouncement replaces the dashboard announcement banner.
func (s *ContentService) UpdateAnnouncement(actor models.User, a models.Announcement) error {
	if err := s.requireEditor(actor); err != nil {
		return err
	}
	a.Message = strings.TrimSpace(a.Message)
	if a.Active && a.Message == "" {
		return apperr.Validation("an active announcement needs a message")
	}
	s.store.SetAnnouncement(a)
	return nil
}

// SetHeroDisplayMode selects how the landing hero renders.
func (s *ContentService) SetHeroDisplayMode(actor models.User, mode models.HeroDisplayMode) error {
	if err := s.requireEditor(actor); err != nil {
		return err
	}
	if mode != models.HeroModeVideo && mode != models.HeroModeSlideshow {
		return apperr.Validation("hero display mode must be video or slideshow")
	}
	s.store.SetHeroDisplayMode(mode)
	return nil
}

// AddCompany registers a partner company logo on the landing page.
func (s *ContentService) AddCompany(actor models.User, c models.Company) (models.Company, error) {
	if err := s.requireEditor(actor); err != nil {
		return models.Company{}, err
	}
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return models.Company{}, apperr.Validation("company name is required")
	}
	if err := validateContentURL(c.LogoURL); err != nil {
		return models.Company{}, err
	}
	return s.store.AddCompany(c), nil
}

// RemoveCompany deletes a partner company entry.
func (s *ContentService) RemoveCompany(actor models.User, id uuid.UUID) error {
	if err := s.requireEditor(actor); err != nil {
		return err
	}
	if err := s.store.RemoveCompany(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("company %s does not exist", id)
		}
		return err
	}
	return nil
}

// AddHeroMedia registers a hero slide or clip.
func (s *ContentService) AddHeroMedia(actor models.User, m models.HeroMedia) (models.HeroMedia, error) {
	if err := s.requireEditor(actor); err != nil {
		return models.HeroMedia{}, err
	}
	if m.Type != models.MediaImage && m.Type != models.MediaVideo {
		return models.HeroMedia{}, apperr.Validation("hero media must be an image or a video")
	}
	if err := validateContentURL(m.URL); err != nil {
		return models.HeroMedia{}, err
	}
	return s.store.AddHeroMedia(m), nil
}

// RemoveHeroMedia deletes a hero entry.
func (s *ContentService) RemoveHeroMedia(actor models.User, id uuid.UUID) error {
	if err := s.requireEditor(actor); err != nil {
		return err
	}
	if err := s.store.RemoveHeroMedia(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("hero media %s does not exist", id)
		}
		return err
	}
	return nil
}

func (s *ContentService) requireEditor(actor models.User) error {
	if !authz.Can(actor.Role, authz.ActionEditSiteContent) {
		return apperr.Forbidden("role %s may not edit site content", actor.Role)
	}
	return nil
}

func validateContentURL(raw string) error {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return apperr.Validation("content URLs must be valid http(s) links")
	}
	return nil
}
