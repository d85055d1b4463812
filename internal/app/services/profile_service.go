package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/app/models/dto"
	"github.com/yigit/intlportal/internal/app/session"
	"github.com/yigit/intlportal/internal/app/views"
	"github.com/yigit/intlportal/internal/pkg/apperrors"
	"github.com/yigit/intlportal/internal/pkg/filestorage"
	"github.com/yigit/intlportal/internal/seed"
)

// ProfileLocal is the personal information edit buffer.
type ProfileLocal struct {
	Personal models.PersonalInfo
	Editing  bool
	Avatar   string
}

// ProfileView is the rendered profile screen.
type ProfileView struct {
	User        models.User             `json:"user"`
	Avatar      string                  `json:"avatar"`
	Personal    models.PersonalInfo     `json:"personal"`
	Editing     bool                    `json:"editing"`
	Emergency   models.EmergencyContact `json:"emergencyContact"`
	Academic    models.AcademicInfo     `json:"academic"`
	Immigration models.ImmigrationInfo  `json:"immigration"`
}

// ProfileService backs the student profile screen. Saved edits last until
// the screen is left.
type ProfileService struct {
	sessions *session.Manager
	files    filestorage.FileStorage
	policy   filestorage.UploadPolicy
	logger   zerolog.Logger
}

// NewProfileService creates the service and registers its screen.
func NewProfileService(sessions *session.Manager, mounter *ScreenMounter, files filestorage.FileStorage, policy filestorage.UploadPolicy, logger zerolog.Logger) *ProfileService {
	mounter.Register(views.ScreenProfile, func(_ context.Context, user models.User) (any, error) {
		return &ProfileLocal{Personal: seed.PersonalInfo(user), Avatar: user.Avatar}, nil
	})
	return &ProfileService{sessions: sessions, files: files, policy: policy, logger: logger}
}

func (s *ProfileService) with(sessionID string, fn func(user models.User, local *ProfileLocal) error) error {
	return session.WithScreen(s.sessions, sessionID, views.ScreenProfile, fn)
}

func profileView(user models.User, local *ProfileLocal) *ProfileView {
	return &ProfileView{
		User:        user,
		Avatar:      local.Avatar,
		Personal:    local.Personal,
		Editing:     local.Editing,
		Emergency:   seed.EmergencyContact(),
		Academic:    seed.AcademicInfo(user),
		Immigration: seed.ImmigrationInfo(),
	}
}

// View renders the profile.
func (s *ProfileService) View(sessionID string) (*ProfileView, error) {
	var view *ProfileView
	err := s.with(sessionID, func(user models.User, local *ProfileLocal) error {
		view = profileView(user, local)
		return nil
	})
	return view, err
}

// Edit merges req into the buffer and puts the screen in edit mode.
func (s *ProfileService) Edit(sessionID string, req dto.PersonalInfoRequest) (*ProfileView, error) {
	var view *ProfileView
	err := s.with(sessionID, func(user models.User, local *ProfileLocal) error {
		p := &local.Personal
		set := func(dst *string, v string) {
			if v != "" {
				*dst = v
			}
		}
		set(&p.FirstName, req.FirstName)
		set(&p.LastName, req.LastName)
		set(&p.Email, req.Email)
		set(&p.Phone, req.Phone)
		set(&p.DateOfBirth, req.DateOfBirth)
		set(&p.Nationality, req.Nationality)
		set(&p.Address, req.Address)
		set(&p.City, req.City)
		set(&p.State, req.State)
		set(&p.ZipCode, req.ZipCode)
		local.Editing = true
		view = profileView(user, local)
		return nil
	})
	return view, err
}

// Save leaves edit mode keeping the buffer.
func (s *ProfileService) Save(sessionID string) (string, error) {
	err := s.with(sessionID, func(user models.User, local *ProfileLocal) error {
		local.Editing = false
		s.logger.Info().Str("userID", user.ID).Msg("Personal information saved")
		return nil
	})
	if err != nil {
		return "", err
	}
	return "Personal information updated successfully!", nil
}

// Reset restores the starting personal information and leaves edit mode.
func (s *ProfileService) Reset(sessionID string) (*ProfileView, error) {
	var view *ProfileView
	err := s.with(sessionID, func(user models.User, local *ProfileLocal) error {
		local.Personal = seed.PersonalInfo(user)
		local.Editing = false
		view = profileView(user, local)
		return nil
	})
	return view, err
}

// UploadPicture validates and stores a new profile picture.
func (s *ProfileService) UploadPicture(sessionID string, fh *multipart.FileHeader) (string, string, error) {
	var url string
	err := s.with(sessionID, func(user models.User, local *ProfileLocal) error {
		if _, err := s.policy.Check(fh); err != nil {
			return err
		}
		stored, err := s.files.SaveFileWithPath(fh, "avatars/"+user.ID)
		if err != nil {
			return fmt.Errorf("failed to store profile picture: %w: %w", apperrors.ErrStorage, err)
		}
		if local.Avatar != "" && local.Avatar != user.Avatar {
			if err := s.files.DeleteFile(local.Avatar); err != nil {
				s.logger.Warn().Err(err).Str("url", local.Avatar).Msg("Failed to remove previous picture")
			}
		}
		local.Avatar = stored
		url = stored
		return nil
	})
	if err != nil {
		return "", "", err
	}
	return "Profile picture updated successfully!", url, nil
}
