package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"triagedesk/internal/shared/errors"
)

func TestTranscribeAudio_Success(t *testing.T) {
	transcriber := new(mockTranscriber)
	audio := []byte("fake audio bytes")
	transcriber.On("Transcribe", mock.Anything, audio, "audio/webm").
		Return("I have had a sore throat since Monday", nil)

	uc := NewTranscribeAudioUseCase(transcriber, newTestLogger())

	result, err := uc.Execute(context.Background(), TranscribeAudioCommand{
		Audio:    audio,
		MIMEType: "audio/webm",
	})

	require.NoError(t, err)
	assert.Equal(t, "I have had a sore throat since Monday", result.Transcript)
	transcriber.AssertExpectations(t)
}

func TestTranscribeAudio_EmptyAudio(t *testing.T) {
	transcriber := new(mockTranscriber)

	uc := NewTranscribeAudioUseCase(transcriber, newTestLogger())

	result, err := uc.Execute(context.Background(), TranscribeAudioCommand{MIMEType: "audio/webm"})

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
	transcriber.AssertNotCalled(t, "Transcribe", mock.Anything, mock.Anything, mock.Anything)
}

func TestTranscribeAudio_ProviderErrorPropagates(t *testing.T) {
	transcriber := new(mockTranscriber)
	transcriber.On("Transcribe", mock.Anything, mock.Anything, "audio/mpeg").
		Return("", errors.NewClassificationError("no speech detected in audio"))

	uc := NewTranscribeAudioUseCase(transcriber, newTestLogger())

	result, err := uc.Execute(context.Background(), TranscribeAudioCommand{
		Audio:    []byte("noise"),
		MIMEType: "audio/mpeg",
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsClassificationError(err))
}
