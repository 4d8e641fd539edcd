package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportMarshalJSON_HidesAuthorWhenAnonymous(t *testing.T) {
	report := Report{
		Title:          "Broken streetlight",
		Description:    "The light on 5th has been out for a week",
		IsAnonymous:    true,
		Status:         ReportStatusPending,
		DateOfIncident: time.Now(),
		UserID:         7,
	}

	b, err := json.Marshal(report)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &out))

	val, ok := out["user_id"]
	require.True(t, ok, "user_id key is always present")
	assert.Nil(t, val, "anonymous reports must not expose the author id")
}

func TestReportMarshalJSON_ExposesAuthorOtherwise(t *testing.T) {
	report := Report{
		Title:          "Pothole",
		Description:    "Large pothole on Main St",
		Status:         ReportStatusPending,
		DateOfIncident: time.Now(),
		UserID:         7,
	}

	b, err := json.Marshal(report)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &out))
	assert.EqualValues(t, 7, out["user_id"])
}
