package services

import (
	"github.com/vitalcoach/vital-cli/internal/domain"
)

// ProfileService holds the frozen intake profile and mediates edits
// to it. Edits work on a copy and only land on explicit apply.
type ProfileService struct {
	profile *domain.OnboardingProfile
}

// NewProfileService creates a new profile service.
func NewProfileService() *ProfileService {
	return &ProfileService{}
}

// SetProfile installs the profile produced by the intake wizard.
func (s *ProfileService) SetProfile(p *domain.OnboardingProfile) {
	s.profile = p
}

// HasProfile reports whether intake has completed.
func (s *ProfileService) HasProfile() bool {
	return s.profile != nil
}

// Profile returns the current profile, or nil before intake.
func (s *ProfileService) Profile() *domain.OnboardingProfile {
	return s.profile
}

// EditableCopy returns a deep copy for an edit flow. Mutating the
// copy never touches the stored profile.
func (s *ProfileService) EditableCopy() (*domain.OnboardingProfile, error) {
	if s.profile == nil {
		return nil, domain.ErrProfileIncomplete
	}
	return s.profile.Clone(), nil
}

// ApplyEdit replaces the stored profile with an edited copy.
func (s *ProfileService) ApplyEdit(p *domain.OnboardingProfile) error {
	if s.profile == nil {
		return domain.ErrProfileIncomplete
	}
	s.profile = p.Clone()
	return nil
}

// Reset clears the profile so intake runs again.
func (s *ProfileService) Reset() {
	s.profile = nil
}
