package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/app/models/dto"
	"github.com/yigit/intlportal/internal/pkg/apperrors"
	"github.com/yigit/intlportal/internal/pkg/filestorage"
)

func newProfile(t *testing.T) (*fixture, *ProfileService, *memFiles, string) {
	t.Helper()
	f := newFixture(t)
	files := &memFiles{}
	svc := NewProfileService(f.sessions, f.mounter, files, filestorage.PicturePolicy(5), zerolog.Nop())
	return f, svc, files, f.open(t, models.RoleStudent, "profile")
}

func TestProfile_EditSaveReset(t *testing.T) {
	_, svc, _, sid := newProfile(t)

	view, err := svc.View(sid)
	require.NoError(t, err)
	assert.Equal(t, "Maria", view.Personal.FirstName)
	assert.Equal(t, "maria.gonzalez@university.edu", view.Personal.Email)
	assert.Equal(t, "F-1", view.Immigration.VisaType)
	assert.Equal(t, "STU2024001", view.Academic.StudentID)
	assert.False(t, view.Editing)

	view, err = svc.Edit(sid, dto.PersonalInfoRequest{Phone: "+1 (555) 000-0000", City: "Springfield"})
	require.NoError(t, err)
	assert.True(t, view.Editing)
	assert.Equal(t, "Springfield", view.Personal.City)
	assert.Equal(t, "Maria", view.Personal.FirstName)

	msg, err := svc.Save(sid)
	require.NoError(t, err)
	assert.Equal(t, "Personal information updated successfully!", msg)
	view, err = svc.View(sid)
	require.NoError(t, err)
	assert.False(t, view.Editing)
	assert.Equal(t, "Springfield", view.Personal.City)

	view, err = svc.Reset(sid)
	require.NoError(t, err)
	assert.Equal(t, "College Town", view.Personal.City)
}

func TestProfile_EditsAreDroppedOnNavigation(t *testing.T) {
	f, svc, _, sid := newProfile(t)
	_, err := svc.Edit(sid, dto.PersonalInfoRequest{City: "Springfield"})
	require.NoError(t, err)

	f.navigate(t, sid, "support")
	f.navigate(t, sid, "profile")

	view, err := svc.View(sid)
	require.NoError(t, err)
	assert.Equal(t, "College Town", view.Personal.City)
}

func TestProfile_UploadPicture(t *testing.T) {
	_, svc, files, sid := newProfile(t)

	_, _, err := svc.UploadPicture(sid, fileHeader(t, "cv.pdf", pdfBytes))
	require.ErrorIs(t, err, apperrors.ErrUnsupportedFileType)
	assert.Equal(t, "Please upload only JPG, PNG, or GIF files.", apperrors.UserMessage(err))

	msg, url, err := svc.UploadPicture(sid, fileHeader(t, "me.gif", gifBytes))
	require.NoError(t, err)
	assert.Equal(t, "Profile picture updated successfully!", msg)
	assert.Equal(t, "/uploads/avatars/1/me.gif", url)

	_, second, err := svc.UploadPicture(sid, fileHeader(t, "me.png", pngBytes))
	require.NoError(t, err)
	assert.Equal(t, []string{url}, files.deleted)

	view, err := svc.View(sid)
	require.NoError(t, err)
	assert.Equal(t, second, view.Avatar)
}

func TestSupport_SearchDropsEmptyCategories(t *testing.T) {
	f := newFixture(t)
	svc := NewSupportService(f.sessions, f.mounter)
	sid := f.open(t, models.RoleStudent, "support")

	page, err := svc.Page(sid, "")
	require.NoError(t, err)
	assert.Len(t, page.Categories, 5)
	assert.Len(t, page.Contacts, 4)

	page, err = svc.Page(sid, "VISA")
	require.NoError(t, err)
	require.NotEmpty(t, page.Categories)
	assert.Less(t, len(page.Categories), 5)
	for _, c := range page.Categories {
		assert.NotEmpty(t, c.Questions)
	}

	page, err = svc.Page(sid, "no faq mentions this phrase")
	require.NoError(t, err)
	assert.Empty(t, page.Categories)
}

func TestVisa_Paths(t *testing.T) {
	f := newFixture(t)
	svc := NewVisaService(f.sessions, f.mounter)
	sid := f.open(t, models.RoleStudent, "visa-immigration")

	page, err := svc.Page(sid, "")
	require.NoError(t, err)
	assert.Equal(t, models.VisaPathVisit, page.Path)
	assert.Len(t, page.Steps, 4)
	assert.Len(t, page.ApplicationFlow, 8)

	page, err = svc.Page(sid, models.VisaPathVITAS)
	require.NoError(t, err)
	assert.Len(t, page.Steps, 6)

	page, err = svc.Page(sid, "")
	require.NoError(t, err)
	assert.Equal(t, models.VisaPathVITAS, page.Path)

	_, err = svc.Page(sid, "tourist")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
