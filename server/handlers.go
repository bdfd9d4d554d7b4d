package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/gaurav-prasanna/headlink/core"
	"github.com/gaurav-prasanna/headlink/core/digest"
	"github.com/gaurav-prasanna/headlink/core/fetch"
	"github.com/gaurav-prasanna/headlink/core/segment"
)

// maxRequestBytes bounds POST bodies.
const maxRequestBytes = 1 << 20

type titleResponse struct {
	Title string `json:"title"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SegmentRequest is the body of POST /segment.
type SegmentRequest struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

type segmentResponse struct {
	HTML     string           `json:"html"`
	Segments segment.Segments `json:"segments"`
}

// GenerateRequest is the body of POST /generate.
type GenerateRequest struct {
	Links []core.Link `json:"links"`
}

type generateResponse struct {
	HTML    string      `json:"html"`
	Preview string      `json:"preview"`
	Items   []core.Item `json:"items"`
}

// FetchTitleHandler returns a handler for GET /fetch-title?url=...
func FetchTitleHandler(src core.TitleSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetURL := r.URL.Query().Get("url")
		if targetURL == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "URL is required"})
			return
		}

		title, err := src.Title(r.Context(), targetURL)
		if err != nil {
			log.WithError(err).
				WithField("request_id", middleware.GetReqID(r.Context())).
				Errorf("Error fetching title for %s", targetURL)

			var statusErr *fetch.StatusError
			if errors.As(err, &statusErr) {
				writeJSON(w, statusErr.Code, errorResponse{
					Error:   fmt.Sprintf("Failed to fetch content: Server responded with %d", statusErr.Code),
					Details: err.Error(),
				})
				return
			}
			var setupErr *fetch.SetupError
			if errors.As(err, &setupErr) {
				writeJSON(w, http.StatusInternalServerError, errorResponse{
					Error:   "Failed to fetch content: Error in request setup",
					Details: err.Error(),
				})
				return
			}
			writeJSON(w, http.StatusInternalServerError, errorResponse{
				Error:   "Failed to fetch content: No response from server",
				Details: err.Error(),
			})
			return
		}

		writeJSON(w, http.StatusOK, titleResponse{Title: title})
	}
}

// SegmentHandler returns a handler for POST /segment.
func SegmentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SegmentRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		seg := segment.Partition(req.Title)
		writeJSON(w, http.StatusOK, segmentResponse{
			HTML:     seg.HTML(req.URL),
			Segments: seg,
		})
	}
}

// GenerateHandler returns a handler for POST /generate. Titles come from the
// request; nothing is fetched.
func GenerateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenerateRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		d := digest.Build(req.Links)
		writeJSON(w, http.StatusOK, generateResponse{
			HTML:    d.Raw(),
			Preview: d.Preview(),
			Items:   d.Items,
		})
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(v); err != nil {
		log.Errorf("error decoding request body: %v", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body", Details: err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		log.Errorf("error encoding response: %v", err)
	}
}
