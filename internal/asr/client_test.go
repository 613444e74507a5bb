package asr

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateWord(t *testing.T) {
	var gotPath string
	var gotFields map[string]string
	var gotAudio []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1<<20))

		gotFields = map[string]string{}
		for k, vs := range r.MultipartForm.Value {
			gotFields[k] = vs[0]
		}

		f, hdr, err := r.FormFile("audio")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "recording.wav", hdr.Filename)
		gotAudio, err = io.ReadAll(f)
		require.NoError(t, err)

		json.NewEncoder(w).Encode(Result{
			ScorePercent: 91.5,
			Label:        "good",
			LabelDisplay: "Good",
			Color:        "green",
			DTWDistance:  12.3456,
			AvgCost:      0.1234,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	res, err := c.EvaluateWord(context.Background(), []byte("RIFFwav"), 112, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, "/evaluate/word", gotPath)
	assert.Equal(t, map[string]string{"surah": "112", "ayah": "1", "word": "2"}, gotFields)
	assert.Equal(t, []byte("RIFFwav"), gotAudio)
	assert.Equal(t, 91.5, res.ScorePercent)
	assert.Equal(t, "good", res.Label)
}

func TestEvaluateAyah_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "reference audio missing", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	_, err := c.EvaluateAyah(context.Background(), []byte("x"), 112, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reference audio missing")
}

func TestEvaluateSurah_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // immediately, to get a dead address

	c := New(srv.URL, time.Second)
	_, err := c.EvaluateSurah(context.Background(), []byte("x"), 112)
	require.Error(t, err)
}

func TestCheckHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		json.NewEncoder(w).Encode(Health{Status: "ok"})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	h, err := c.CheckHealth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", h.Status)
}
