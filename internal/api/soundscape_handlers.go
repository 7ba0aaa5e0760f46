package api

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type GenerateSoundscapeRequest struct {
	SoundscapeType  string          `json:"soundscapeType"`
	MRINoiseProfile string          `json:"mriNoiseProfile"`
	CustomSettings  *CustomSettings `json:"customSettings"`
}

type CustomSettings struct {
	Duration      *int `json:"duration"` // seconds
	FrequencyLow  *int `json:"frequencyLow"`
	FrequencyHigh *int `json:"frequencyHigh"`
}

// GenerateSoundscape simulates the AI generation pipeline: it sleeps for a
// second and fabricates plausible metadata. No audio is produced.
func GenerateSoundscape(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GenerateSoundscapeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to generate soundscape")
			return
		}

		time.Sleep(1 * time.Second)

		duration := 300
		frequencyLow := 100
		frequencyHigh := 4000
		if cs := req.CustomSettings; cs != nil {
			if cs.Duration != nil {
				duration = *cs.Duration
			}
			if cs.FrequencyLow != nil {
				frequencyLow = *cs.FrequencyLow
			}
			if cs.FrequencyHigh != nil {
				frequencyHigh = *cs.FrequencyHigh
			}
		}

		result := gin.H{
			"soundscapeId":       fmt.Sprintf("generated_%d", time.Now().UnixMilli()),
			"type":               req.SoundscapeType,
			"duration":           duration,
			"sampleRate":         48000,
			"channels":           2,
			"effectivenessScore": rand.Float64()*0.3 + 0.7, // 70-100% effectiveness
			"frequencyMasking": gin.H{
				"low":  frequencyLow,
				"high": frequencyHigh,
			},
			"downloadUrl": "/api/soundscapes/download/" + req.SoundscapeType,
			"timestamp":   time.Now().Format(time.RFC3339),
		}

		HandleSuccess(c, app.Logger(), result, nil)
	}
}

// DownloadSoundscape returns metadata about the would-be file; there is no
// actual audio to stream.
func DownloadSoundscape(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		soundscapeType := c.Param("type")
		result := gin.H{
			"message":                 "Download initiated",
			"filename":                fmt.Sprintf("mri-soundscape-%s.wav", soundscapeType),
			"type":                    "audio/wav",
			"size":                    "~5MB",
			"estimated_download_time": "10-30 seconds",
		}
		HandleSuccess(c, app.Logger(), result, nil)
	}
}

func GetHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "MRI Soundscape API",
		})
	}
}
