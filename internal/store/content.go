package store

import (
	"github.com/google/uuid"

	"github.com/brucekarangwamanzi/tuma-tr/internal/models"
)

// SiteContent returns a copy of the managed site content.
func (s *Store) SiteContent() models.SiteContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content.Clone()
}

// ReplaceSiteContent swaps in a whole content document. Used by seeding.
func (s *Store) ReplaceSiteContent(c models.SiteContent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = c.Clone()
}

// SetAbout updates the about section.
func (s *Store) SetAbout(about models.AboutSection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content.About = about
}

// SetTerms updates the terms of service text.
func (s *Store) SetTerms(terms string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content.Terms = terms
}

// SetPrivacy updates the privacy policy text.
func (s *Store) SetPrivacy(privacy string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content.Privacy = privacy
}

// SetSocialLinks updates the social profile URLs.
func (s *Store) SetSocialLinks(links models.SocialLinks) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content.SocialLinks = links
}

// SetAnnouncement updates the dashboard announcement banner.
func (s *Store) SetAnnouncement(a models.Announcement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content.Announcement = a
}

// SetHeroDisplayMode selects the landing page hero rendering mode.
func (s *Store) SetHeroDisplayMode(mode models.HeroDisplayMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content.HeroDisplayMode = mode
}

// AddCompany appends a partner company logo entry.
func (s *Store) AddCompany(c models.Company) models.Company {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	s.content.Companies = append(s.content.Companies, c)
	return c
}

// RemoveCompany deletes a partner company entry by id.
func (s *Store) RemoveCompany(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.content.Companies {
		if c.ID == id {
			s.content.Companies = append(s.content.Companies[:i], s.content.Companies[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// AddHeroMedia appends a hero slide or clip.
func (s *Store) AddHeroMedia(m models.HeroMedia) models.HeroMedia {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	s.content.HeroMedia = append(s.content.HeroMedia, m)
	return m
}

// RemoveHeroMedia deletes a hero entry by id.
func (s *Store) RemoveHeroMedia(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.content.HeroMedia {
		if m.ID == id {
			s.content.HeroMedia = append(s.content.HeroMedia[:i], s.content.HeroMedia[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
