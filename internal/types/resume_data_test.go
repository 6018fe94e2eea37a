package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeData_UnmarshalModernKeys(t *testing.T) {
	data := `{
		"skills": ["Python", "Docker"],
		"work_experience": [
			{"title": "Engineer", "years": 4, "description": "Backend services"}
		],
		"full_text": "Backend engineer."
	}`

	var resume ResumeData
	require.NoError(t, json.Unmarshal([]byte(data), &resume))

	assert.Equal(t, []string{"Python", "Docker"}, resume.Skills)
	require.Len(t, resume.WorkExperience, 1)
	assert.Equal(t, "Engineer", resume.WorkExperience[0].Title)
	assert.Equal(t, 4.0, resume.WorkExperience[0].Years)
}

func TestResumeData_UnmarshalLegacyExperienceKey(t *testing.T) {
	data := `{
		"skills": ["Python"],
		"experience": [
			{"title": "Developer", "years": 2}
		]
	}`

	var resume ResumeData
	require.NoError(t, json.Unmarshal([]byte(data), &resume))

	require.Len(t, resume.WorkExperience, 1)
	assert.Equal(t, "Developer", resume.WorkExperience[0].Title)
}

func TestResumeData_ModernKeyWinsOverLegacy(t *testing.T) {
	data := `{
		"work_experience": [{"title": "Current", "years": 3}],
		"experience": [{"title": "Legacy", "years": 1}]
	}`

	var resume ResumeData
	require.NoError(t, json.Unmarshal([]byte(data), &resume))

	require.Len(t, resume.WorkExperience, 1)
	assert.Equal(t, "Current", resume.WorkExperience[0].Title)
}

func TestExperience_UnmarshalLegacyDurationYears(t *testing.T) {
	data := `{"title": "Engineer", "duration_years": 2.5}`

	var exp Experience
	require.NoError(t, json.Unmarshal([]byte(data), &exp))

	assert.Equal(t, 2.5, exp.Years)
}

func TestExperience_YearsWinsOverDurationYears(t *testing.T) {
	data := `{"title": "Engineer", "years": 3, "duration_years": 9}`

	var exp Experience
	require.NoError(t, json.Unmarshal([]byte(data), &exp))

	assert.Equal(t, 3.0, exp.Years)
}

func TestResumeData_TotalYears(t *testing.T) {
	resume := ResumeData{WorkExperience: []Experience{
		{Title: "Engineer", Years: 4},
		{Title: "Developer", Years: 1.5},
	}}
	assert.Equal(t, 5.5, resume.TotalYears())

	empty := ResumeData{}
	assert.Equal(t, 0.0, empty.TotalYears())
}
