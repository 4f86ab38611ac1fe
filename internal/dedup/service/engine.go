package service

import (
	"context"
	"errors"
	"runtime"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"dedup-service/internal/dedup/model"
)

var errNoStore = errors.New("document store is not configured")

// DocumentLister отдаёт завершённые загрузки проекта.
type DocumentLister interface {
	ListDocuments(ctx context.Context, projectID string) ([]model.ExistingDocument, error)
}

// Engine — поиск дублей загружаемого файла среди документов проекта.
type Engine struct {
	store   DocumentLister
	policy  Policy
	scorer  Scorer
	logger  zerolog.Logger
	workers int
}

type Option func(*Engine)

func WithPolicy(p Policy) Option { return func(e *Engine) { e.policy = p } }

func WithLogger(l zerolog.Logger) Option { return func(e *Engine) { e.logger = l } }

func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

func NewEngine(store DocumentLister, opts ...Option) *Engine {
	e := &Engine{
		store:   store,
		policy:  DefaultPolicy(),
		logger:  zerolog.Nop(),
		workers: runtime.NumCPU(),
	}
	for _, o := range opts {
		o(e)
	}
	e.scorer = NewScorer(e.policy)
	return e
}

func (e *Engine) Policy() Policy { return e.policy }

// Detect никогда не возвращает ошибку: проверка носит рекомендательный
// характер, поэтому недоступное хранилище означает «дублей нет».
func (e *Engine) Detect(ctx context.Context, projectID string, c model.UploadCandidate) model.DetectionResult {
	start := time.Now()
	log := e.logger.With().Str("project", projectID).Str("file", c.Name).Logger()

	docs, err := e.listDocuments(ctx, projectID)
	if err != nil {
		log.Warn().Err(err).Msg("duplicate check skipped: document store unavailable")
		return model.NoDuplicate()
	}
	if len(docs) == 0 {
		return model.NoDuplicate()
	}

	matches := e.scoreAll(c, docs)
	res := e.assemble(matches)

	log.Debug().
		Int("documents", len(docs)).
		Int("matches", len(res.Matches)).
		Int("confidence", res.Confidence).
		Str("recommendation", string(res.Recommendation)).
		Str("policy", e.policy.Version).
		Dur("elapsed", time.Since(start)).
		Msg("duplicate check done")
	return res
}

func (e *Engine) listDocuments(ctx context.Context, projectID string) ([]model.ExistingDocument, error) {
	if e.store == nil {
		return nil, errNoStore
	}
	return e.store.ListDocuments(ctx, projectID)
}

// scoreAll — fan-out по документам; каждая горутина пишет в свою ячейку.
func (e *Engine) scoreAll(c model.UploadCandidate, docs []model.ExistingDocument) []model.DuplicateMatch {
	scores := make([]Score, len(docs))
	var g errgroup.Group
	g.SetLimit(e.workers)
	for i := range docs {
		i := i
		g.Go(func() error {
			scores[i] = e.scorer.Score(c, docs[i])
			return nil
		})
	}
	_ = g.Wait() // скоринг не возвращает ошибок

	out := make([]model.DuplicateMatch, 0, len(docs))
	for i, s := range scores {
		if s.Value <= e.policy.ReportThreshold {
			continue
		}
		d := docs[i]
		out = append(out, model.DuplicateMatch{
			DocumentID:   d.ID,
			StoredName:   d.StoredName,
			OriginalName: d.OriginalName,
			Similarity:   s.Value,
			MatchType:    s.Type,
			UploadedAt:   d.UploadedAt,
			SizeBytes:    d.SizeBytes,
		})
	}
	return out
}

// assemble сортирует, обрезает и выносит вердикт по лучшему совпадению.
func (e *Engine) assemble(matches []model.DuplicateMatch) model.DetectionResult {
	sortMatches(matches)
	if len(matches) > e.policy.MaxMatches {
		matches = matches[:e.policy.MaxMatches]
	}

	res := model.NoDuplicate()
	if len(matches) == 0 {
		return res
	}
	res.Matches = matches
	res.Confidence = matches[0].Similarity
	res.IsDuplicate = res.Confidence > e.policy.DuplicateThreshold
	res.Recommendation = recommend(matches[0], e.policy.Recommend)
	return res
}

// Порядок: similarity по убыванию, затем более свежая загрузка, затем id.
func sortMatches(m []model.DuplicateMatch) {
	sort.Slice(m, func(i, j int) bool {
		if m[i].Similarity != m[j].Similarity {
			return m[i].Similarity > m[j].Similarity
		}
		if !m[i].UploadedAt.Equal(m[j].UploadedAt) {
			return m[i].UploadedAt.After(m[j].UploadedAt)
		}
		return m[i].DocumentID < m[j].DocumentID
	})
}

func recommend(top model.DuplicateMatch, p RecommendPolicy) model.Recommendation {
	switch {
	case top.MatchType == model.MatchExact && top.Similarity > p.OverwriteExactAbove:
		return model.Overwrite
	case top.MatchType == model.MatchVersion && top.Similarity > p.KeepVersionAbove:
		return model.KeepBoth
	case top.MatchType == model.MatchSimilarContent && top.Similarity > p.OverwriteContentAbove:
		return model.Overwrite
	case top.Similarity > p.KeepBothAbove:
		return model.KeepBoth
	default:
		return model.KeepBoth
	}
}
