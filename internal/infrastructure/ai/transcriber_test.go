package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedAudioMIMEType(t *testing.T) {
	tests := []struct {
		mimeType string
		want     bool
	}{
		{"audio/webm", true},
		{"audio/wav", true},
		{"audio/mpeg", true},
		{"audio/mp3", true},
		{"audio/ogg", true},
		{"audio/mp4", true},
		{"audio/flac", true},
		{"audio/aac", true},
		{"AUDIO/WEBM", true},
		{"audio/webm;codecs=opus", true},
		{" audio/ogg ", true},
		{"video/mp4", false},
		{"text/plain", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.mimeType, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAllowedAudioMIMEType(tt.mimeType))
		})
	}
}
