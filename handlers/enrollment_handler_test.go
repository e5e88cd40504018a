package handlers

import (
	"testing"

	"github.com/internbridge/intern_bridge/models"
	"github.com/stretchr/testify/assert"
)

func TestOverallProgressNoModules(t *testing.T) {
	assert.Equal(t, 0, OverallProgress(nil))
	assert.Equal(t, 0, OverallProgress([]models.ModuleProgress{}))
}

func TestOverallProgressAveragesAndFloors(t *testing.T) {
	progresses := []models.ModuleProgress{
		{ProgressPercentage: 50},
		{ProgressPercentage: 25},
		{ProgressPercentage: 25},
	}
	// (50+25+25)/3 = 33.33 -> 33
	assert.Equal(t, 33, OverallProgress(progresses))
}

func TestOverallProgressCompletedCountsAsFull(t *testing.T) {
	progresses := []models.ModuleProgress{
		{Completed: true, ProgressPercentage: 10},
		{ProgressPercentage: 50},
	}
	assert.Equal(t, 75, OverallProgress(progresses))
}

func TestOverallProgressAllCompleted(t *testing.T) {
	progresses := []models.ModuleProgress{
		{Completed: true},
		{Completed: true},
		{Completed: true},
	}
	assert.Equal(t, 100, OverallProgress(progresses))
}

func TestOverallProgressClampsOutOfRangeInput(t *testing.T) {
	// rows written before the API-side range check could carry bad values
	assert.Equal(t, 100, OverallProgress([]models.ModuleProgress{{ProgressPercentage: 250}}))
	assert.Equal(t, 0, OverallProgress([]models.ModuleProgress{{ProgressPercentage: -40}}))
}
