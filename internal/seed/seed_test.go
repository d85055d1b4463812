package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/intlportal/internal/app/models"
)

func TestCheck(t *testing.T) {
	require.NoError(t, Check())
}

func TestDemoUsers(t *testing.T) {
	student, ok := DemoUser(models.RoleStudent)
	require.True(t, ok)
	assert.Equal(t, "Maria Gonzalez", student.Name)
	assert.Equal(t, "STU2024001", student.StudentID)

	_, ok = DemoUser(models.Role("registrar"))
	assert.False(t, ok)
}

func TestSeedsAreFreshCopies(t *testing.T) {
	a := Students()
	a[0].Name = "changed"
	assert.Equal(t, "Maria Gonzalez", Students()[0].Name)
}

func TestVisaSteps(t *testing.T) {
	assert.Len(t, VisaSteps(models.VisaPathVisit), 4)
	assert.Len(t, VisaSteps(models.VisaPathVITAS), 6)

	flow := ApplicationFlow()
	require.Len(t, flow, 8)
	assert.Equal(t, "current", flow[3].Status)
}

func TestCourseSelectionsCoverEverySemester(t *testing.T) {
	sheets := CourseSelections()
	for n := 1; n <= 8; n++ {
		assert.NotEmpty(t, sheets[n], "semester %d", n)
	}
	assert.Len(t, sheets[CurrentSemester], 3)
}

func TestSupportData(t *testing.T) {
	cats := FAQCategories()
	assert.Len(t, cats, 5)
	for _, c := range cats {
		assert.NotEmpty(t, c.Questions, c.ID)
	}
	assert.Len(t, SupportContacts(), 4)
}

func TestDuplicates(t *testing.T) {
	errs := duplicates("x", []string{"a", "b", "a"}, func(s string) string { return s })
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), `"a"`)
}
