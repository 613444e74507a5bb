package chatbot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_AnswerShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/query", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "what does surah ikhlas teach", req["query"])
		assert.Equal(t, "en", req["lang"])
		assert.Equal(t, float64(3), req["top_k"])
		assert.Equal(t, true, req["show_tafsir"])

		w.Write([]byte(`{
			"response": "Surah Al-Ikhlas affirms the oneness of Allah.",
			"ayah_ref": "112:1",
			"ayah_arabic": "قُلْ هُوَ اللَّهُ أَحَدٌ",
			"translation": "Say, He is Allah, the One",
			"tafsir_snippet": "Revealed in answer to a question about the lineage of Allah.",
			"key_themes": ["tawhid"],
			"cautions": [],
			"retrieval": {"candidates": [{"ref": "112:1", "score": 0.91}, {"ref": "112:2", "score": 0.74}]}
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	reply, err := c.Query(context.Background(), "what does surah ikhlas teach", "en")
	require.NoError(t, err)
	require.NotNil(t, reply.Answer)
	assert.Nil(t, reply.Guide)
	assert.Equal(t, "112:1", reply.Answer.AyahRef)
	require.Len(t, reply.Answer.Retrieval.Candidates, 2)
	assert.InDelta(t, 0.91, reply.Answer.Retrieval.Candidates[0].Score, 1e-9)
}

func TestQuery_GuideShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"pronunciations": [
				{"arabic": "قُلْ", "transliteration": "qul"},
				{"arabic": "أَعُوذُ", "transliteration": "a'udhu"}
			],
			"cautions": ["Transliteration is approximate; listen to a qari."]
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	reply, err := c.Query(context.Background(), "how do I say qul a'udhu", "en")
	require.NoError(t, err)
	require.NotNil(t, reply.Guide)
	assert.Nil(t, reply.Answer)
	require.Len(t, reply.Guide.Pronunciations, 2)
	assert.Equal(t, "a'udhu", reply.Guide.Pronunciations[1].Transliteration)
	require.Len(t, reply.Guide.Cautions, 1)
}

func TestQuery_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "retrieval index unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Query(context.Background(), "anything", "en")

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, http.StatusServiceUnavailable, svcErr.StatusCode)
	assert.Contains(t, svcErr.Body, "retrieval index unavailable")
}

func TestQuery_Unreachable(t *testing.T) {
	c := New("http://127.0.0.1:1", 200*time.Millisecond)
	_, err := c.Query(context.Background(), "anything", "en")
	require.Error(t, err)
}

func TestCheckHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		w.Write([]byte(`{"status": "ok"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	h, err := c.CheckHealth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", h.Status)
}
