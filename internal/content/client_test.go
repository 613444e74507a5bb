package content

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAyah_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ayah/112/1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"arabic": "قُلْ هُوَ اللَّهُ أَحَدٌ",
			"english": "Say, He is Allah, the One",
			"urdu": "کہو وہ اللہ ایک ہے",
			"words": [
				{"arabic": "قُلْ", "english": "Say", "transliteration": "qul"},
				{"arabic": "هُوَ", "english": "He is", "transliteration": "huwa"}
			]
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	ayah, err := c.Ayah(context.Background(), 112, 1)
	require.NoError(t, err)
	assert.Equal(t, "Say, He is Allah, the One", ayah.English)
	require.Len(t, ayah.Words, 2)
	assert.Equal(t, "qul", ayah.Words[0].Transliteration)
}

func TestAyah_UnsupportedSurahSkipsNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Ayah(context.Background(), 2, 255)

	var unsupported *SurahUnsupportedError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, 2, unsupported.Surah)
	assert.False(t, called, "unsupported surah must not reach the service")
}

func TestAyah_MalformedPayloadRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// words entries missing the english gloss
		w.Write([]byte(`{"arabic": "x", "english": "y", "words": [{"arabic": "z"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Ayah(context.Background(), 113, 1)

	var invalid *InvalidPayloadError
	require.ErrorAs(t, err, &invalid)
}

func TestAyah_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "ayah not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Ayah(context.Background(), 114, 99)

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
	assert.Contains(t, svcErr.Body, "ayah not found")
}

func TestLexicon(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/lexicon", r.URL.Path)
		w.Write([]byte(`[{"arabic": "نَار", "english": "fire"}, {"arabic": "نُور", "english": "light"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	entries, err := c.Lexicon(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "light", entries[1].English)
}

func TestAyahIndex(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ayah_index", r.URL.Path)
		w.Write([]byte(`[
			{"surah": 112, "name": "Al-Ikhlas", "ayah_count": 4},
			{"surah": 113, "name": "Al-Falaq", "ayah_count": 5},
			{"surah": 114, "name": "An-Nas", "ayah_count": 6}
		]`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	index, err := c.AyahIndex(context.Background())
	require.NoError(t, err)
	require.Len(t, index, 3)
	assert.Equal(t, "Al-Falaq", index[1].Name)
	assert.Equal(t, 6, index[2].AyahCount)
}

func TestNext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "112", r.URL.Query().Get("surah"))
		assert.Equal(t, "4", r.URL.Query().Get("ayah"))
		w.Write([]byte(`{"surah": 113, "ayah": 1}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	ref, err := c.Next(context.Background(), 112, 4)
	require.NoError(t, err)
	require.NotNil(t, ref)
	assert.Equal(t, "113:1", ref.String())
}

func TestNext_Done(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"done": true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	ref, err := c.Next(context.Background(), 114, 6)
	require.NoError(t, err)
	assert.Nil(t, ref)
}

func TestCheckHealth_Unreachable(t *testing.T) {
	c := New("http://127.0.0.1:1", 200*time.Millisecond)
	_, err := c.CheckHealth(context.Background())
	require.Error(t, err)

	var svcErr *ServiceError
	assert.False(t, errors.As(err, &svcErr), "transport failure should not be a ServiceError")
}
