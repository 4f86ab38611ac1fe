package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"dedup-service/internal/config"
	"dedup-service/internal/dedup/model"
	"dedup-service/internal/dedup/service"
)

type checkResponse struct {
	Result        model.DetectionResult `json:"result"`
	Explanation   string                `json:"explanation"`
	PolicyVersion string                `json:"policyVersion"`
}

// CheckDuplicates возвращает http.HandlerFunc для
// r.Post("/projects/{projectID}/duplicates", ...) в роутере.
func CheckDuplicates(cfg config.Config, engine *service.Engine, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		log := zerolog.Ctx(r.Context())
		if log.GetLevel() == zerolog.Disabled {
			log = &logger
		}

		projectID := strings.TrimSpace(chi.URLParam(r, "projectID"))
		if projectID == "" {
			http.Error(w, "missing project id", http.StatusBadRequest)
			return
		}

		maxMem := int64(cfg.MaxUploadMB) << 20
		if err := r.ParseMultipartForm(maxMem); err != nil {
			if !errors.Is(err, http.ErrNotMultipart) {
				http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
				return
			}
			if err := r.ParseForm(); err != nil {
				http.Error(w, "bad form: "+err.Error(), http.StatusBadRequest)
				return
			}
		}
		if r.MultipartForm != nil {
			defer r.MultipartForm.RemoveAll()
		}

		cand, err := candidateFromForm(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		res := engine.Detect(r.Context(), projectID, cand)

		resp := checkResponse{
			Result:        res,
			Explanation:   service.Explain(res),
			PolicyVersion: engine.Policy().Version,
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Error().Err(err).Msg("write json")
			return
		}

		log.Info().
			Str("project", projectID).
			Str("file", cand.Name).
			Bool("duplicate", res.IsDuplicate).
			Int("confidence", res.Confidence).
			Dur("elapsed", time.Since(start)).
			Msg("duplicate check")
	}
}
