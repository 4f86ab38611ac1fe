package service

import "dedup-service/internal/dedup/model"

// Score — итог сравнения одной пары (новый файл, существующий документ).
type Score struct {
	Value int
	Type  model.MatchType
}

// Scorer проверяет сигналы по приоритету: первое сработавшее правило
// определяет результат, сигналы между собой не складываются.
type Scorer struct {
	policy Policy
}

func NewScorer(p Policy) Scorer { return Scorer{policy: p} }

func (s Scorer) Score(c model.UploadCandidate, d model.ExistingDocument) Score {
	p := s.policy
	existing := d.DisplayName()

	// (1) Точное совпадение имени
	if exactKey(c.Name) == exactKey(existing) {
		return Score{p.ExactNameScore, model.MatchExact}
	}

	nameSim := nameSimilarity(c.Name, existing, p)

	// (2) Тот же размер и правдоподобное имя
	if c.SizeBytes == d.SizeBytes && nameSim > p.ExactSizeNameFloor {
		return Score{p.ExactSizeScore, model.MatchExact}
	}

	// (3) Ревизия того же документа
	if v := detectVersion(c.Name, existing, p); v.IsVersion {
		return Score{p.VersionScore, model.MatchVersion}
	}

	// (4) Очень похожее имя
	if nameSim > p.NameMatchThreshold {
		return Score{min(nameSim+p.NameBonus, p.NameScoreCap), model.MatchSimilarName}
	}

	// (5) Похожее содержимое — только если текст есть у обоих
	if ta, ok := c.Text(); ok {
		if tb, ok := d.Text(); ok {
			if cs := contentSimilarity(ta, tb, p.ContentMaxChars); cs > p.ContentMatchThreshold {
				return Score{cs, model.MatchSimilarContent}
			}
		}
	}

	// (6) Название статьи как последний сигнал
	paper, ok := titleSimilarity(c.Name, existing, p)
	if ok && paper > p.TitleMatchThreshold {
		return Score{paper, model.MatchSimilarName}
	}

	// (7) Низкая уверенность: всё равно возвращаем число
	return Score{max(nameSim, paper), model.MatchSimilarName}
}
