package services

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/app/models/dto"
	"github.com/yigit/intlportal/internal/pkg/apperrors"
	"github.com/yigit/intlportal/internal/seed"
)

func newDocumentReview(t *testing.T) (*fixture, *DocumentManagementService, string) {
	t.Helper()
	f := newFixture(t)
	svc := NewDocumentManagementService(f.store, f.sessions, f.mounter, f.clock, false, zerolog.Nop())
	return f, svc, f.open(t, models.RoleInternationalAdmin, "document-management")
}

func TestDocumentReview_List(t *testing.T) {
	_, svc, sid := newDocumentReview(t)

	page, err := svc.List(sid, dto.DocumentFilter{})
	require.NoError(t, err)
	assert.Len(t, page.Documents, 11)
	assert.Equal(t, models.DocumentStats{Total: 11, Valid: 8, Expiring: 2, Expired: 1}, page.Stats)
	assert.Len(t, page.Students, 5)
	assert.Len(t, page.Types, 5)
}

func TestDocumentReview_Filters(t *testing.T) {
	_, svc, sid := newDocumentReview(t)

	tests := []struct {
		name   string
		filter dto.DocumentFilter
		want   int
	}{
		{"search by document name", dto.DocumentFilter{Search: "VISA"}, 3},
		{"search by student name", dto.DocumentFilter{Search: "priya"}, 3},
		{"student", dto.DocumentFilter{Student: "STU2024002"}, 3},
		{"type", dto.DocumentFilter{Type: "Immigration", Status: "all"}, 6},
		{"status", dto.DocumentFilter{Status: "expiring"}, 2},
		{"combined", dto.DocumentFilter{Student: "STU2024001", Type: "Identity"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.List(sid, tt.filter)
			require.NoError(t, err)
			assert.Len(t, page.Documents, tt.want)
			assert.Equal(t, 11, page.Stats.Total)
		})
	}
}

func TestDocumentReview_DaysUntilExpiryRoundsUp(t *testing.T) {
	_, svc, sid := newDocumentReview(t)

	row, err := svc.Get(sid, "4")
	require.NoError(t, err)
	require.NotNil(t, row.DaysUntilExpiry)
	assert.Equal(t, 29, *row.DaysUntilExpiry)

	row, err = svc.Get(sid, "8")
	require.NoError(t, err)
	assert.Equal(t, -50, *row.DaysUntilExpiry)

	row, err = svc.Get(sid, "9")
	require.NoError(t, err)
	assert.Nil(t, row.DaysUntilExpiry)
}

func TestDocumentReview_StudentOptionsSkipIndonesia(t *testing.T) {
	f, svc, sid := newDocumentReview(t)
	students := append(seed.Students(), models.Student{ID: "6", Name: "Budi Santoso", StudentID: "STU2024006", Country: "Indonesia"})
	f.store.ReplaceStudents(students)

	page, err := svc.List(sid, dto.DocumentFilter{})
	require.NoError(t, err)
	require.Len(t, page.Students, 5)
	assert.Equal(t, StudentOption{StudentID: "STU2024001", Label: "Maria Gonzalez (STU2024001)"}, page.Students[0])
}

func TestDocumentReview_Download(t *testing.T) {
	_, svc, sid := newDocumentReview(t)

	file, err := svc.Download(sid, "4")
	require.NoError(t, err)
	assert.Equal(t, "I-20 Form_Chen Wei.txt", file.Name)
	want := "Document: I-20 Form\nStudent: Chen Wei\nStudent ID: STU2024002\nType: Immigration\nStatus: expiring\n" +
		"Upload Date: 2022-03-20\nExpiry Date: 2024-03-20\n\nThis is a mock document download.\nGenerated on: 2/20/2024, 2:05:09 PM"
	assert.Equal(t, want, string(file.Body))

	file, err = svc.Download(sid, "9")
	require.NoError(t, err)
	assert.Contains(t, string(file.Body), "Upload Date: 2023-08-10\n\n\nThis is a mock")
}

func TestDocumentReview_ApproveAndFlagDoNotMutate(t *testing.T) {
	_, svc, sid := newDocumentReview(t)

	_, err := svc.Approve(sid, "5", false)
	require.ErrorIs(t, err, apperrors.ErrConfirmationRequired)
	assert.Equal(t, "Are you sure you want to approve this document?", apperrors.UserMessage(err))

	msg, err := svc.Approve(sid, "5", true)
	require.NoError(t, err)
	assert.Equal(t, "Document approved successfully!", msg)

	_, err = svc.Flag(sid, "5", dto.FlagRequest{})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	msg, err = svc.Flag(sid, "5", dto.FlagRequest{Reason: "Blurry scan"})
	require.NoError(t, err)
	assert.Equal(t, "Document flagged successfully. Reason: Blurry scan", msg)

	row, err := svc.Get(sid, "5")
	require.NoError(t, err)
	assert.Equal(t, models.DocumentStatusExpiring, row.Status)

	_, err = svc.Approve(sid, "99", true)
	assert.ErrorIs(t, err, apperrors.ErrDocumentNotFound)
}

func TestDocumentReview_ExportUsesLastFilter(t *testing.T) {
	_, svc, sid := newDocumentReview(t)
	_, err := svc.List(sid, dto.DocumentFilter{Student: "STU2024003"})
	require.NoError(t, err)

	file, err := svc.Export(sid, "csv")
	require.NoError(t, err)
	assert.Equal(t, "documents_export_2024-02-20.csv", file.Name)

	lines := strings.Split(string(file.Body), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Student ID,Student Name,Document Name,Type,Status,Upload Date,Expiry Date", lines[0])
	assert.Equal(t, "STU2024003,Priya Sharma,Official Transcript,Academic,valid,2023-08-10,N/A", lines[3])
}
