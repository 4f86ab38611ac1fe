package service

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Policy — таблица порогов и весов. Значения по умолчанию подобраны
// эмпирически; меняются через YAML без правки алгоритма.
type Policy struct {
	Version string `yaml:"version"`

	// name similarity = JaccardWeight*jaccard + LevenshteinWeight*levenshtein
	JaccardWeight     float64 `yaml:"jaccard_weight"`
	LevenshteinWeight float64 `yaml:"levenshtein_weight"`

	ReportThreshold    int `yaml:"report_threshold"`    // в выдачу попадают только score > порога
	DuplicateThreshold int `yaml:"duplicate_threshold"` // isDuplicate = confidence > порога
	MaxMatches         int `yaml:"max_matches"`

	ExactNameScore     int `yaml:"exact_name_score"`
	ExactSizeScore     int `yaml:"exact_size_score"`
	ExactSizeNameFloor int `yaml:"exact_size_name_floor"`

	VersionScore         int     `yaml:"version_score"`
	VersionBaseThreshold float64 `yaml:"version_base_threshold"`

	NameMatchThreshold int `yaml:"name_match_threshold"`
	NameBonus          int `yaml:"name_bonus"`
	NameScoreCap       int `yaml:"name_score_cap"`

	ContentMatchThreshold int `yaml:"content_match_threshold"`
	ContentMaxChars       int `yaml:"content_max_chars"`

	TitleMatchThreshold int `yaml:"title_match_threshold"`
	TitleMinLength      int `yaml:"title_min_length"`

	Recommend RecommendPolicy `yaml:"recommend"`
}

// RecommendPolicy — пороги правил рекомендации по лучшему совпадению.
type RecommendPolicy struct {
	OverwriteExactAbove   int `yaml:"overwrite_exact_above"`
	KeepVersionAbove      int `yaml:"keep_version_above"`
	OverwriteContentAbove int `yaml:"overwrite_content_above"`
	KeepBothAbove         int `yaml:"keep_both_above"`
}

func DefaultPolicy() Policy {
	return Policy{
		Version:               "2024-1",
		JaccardWeight:         0.7,
		LevenshteinWeight:     0.3,
		ReportThreshold:       30,
		DuplicateThreshold:    70,
		MaxMatches:            3,
		ExactNameScore:        95,
		ExactSizeScore:        90,
		ExactSizeNameFloor:    50,
		VersionScore:          85,
		VersionBaseThreshold:  0.8,
		NameMatchThreshold:    70,
		NameBonus:             10,
		NameScoreCap:          95,
		ContentMatchThreshold: 60,
		ContentMaxChars:       2000,
		TitleMatchThreshold:   50,
		TitleMinLength:        10,
		Recommend: RecommendPolicy{
			OverwriteExactAbove:   90,
			KeepVersionAbove:      80,
			OverwriteContentAbove: 85,
			KeepBothAbove:         70,
		},
	}
}

// LoadPolicy накладывает YAML-файл поверх DefaultPolicy. Пустой путь — дефолты.
func LoadPolicy(path string) (Policy, error) {
	p := DefaultPolicy()
	if path == "" {
		return p, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read policy %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true) // опечатка в ключе — ошибка, а не тихий дефолт
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return p, fmt.Errorf("parse policy %s: %w", path, err)
	}
	// изменённая таблица без своей версии не должна выдавать себя за дефолтную
	if def := DefaultPolicy(); p.Version == def.Version && p != def {
		p.Version += "+" + filepath.Base(path)
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("policy %s: %w", path, err)
	}
	return p, nil
}

// Сравнение содержимого не должно сканировать документ целиком
const maxContentChars = 20000

func (p Policy) Validate() error {
	var errs []error
	if p.JaccardWeight < 0 || p.LevenshteinWeight < 0 {
		errs = append(errs, errors.New("weights must be non-negative"))
	}
	if math.Abs(p.JaccardWeight+p.LevenshteinWeight-1) > 1e-9 {
		errs = append(errs, fmt.Errorf("weights must sum to 1, got %.3f", p.JaccardWeight+p.LevenshteinWeight))
	}
	if p.VersionBaseThreshold < 0 || p.VersionBaseThreshold > 1 {
		errs = append(errs, fmt.Errorf("version_base_threshold %.3f out of [0,1]", p.VersionBaseThreshold))
	}
	if p.MaxMatches < 1 {
		errs = append(errs, fmt.Errorf("max_matches must be >= 1, got %d", p.MaxMatches))
	}
	if p.ContentMaxChars < 1 || p.ContentMaxChars > maxContentChars {
		errs = append(errs, fmt.Errorf("content_max_chars %d out of [1,%d]", p.ContentMaxChars, maxContentChars))
	}
	if p.TitleMinLength < 0 || p.TitleMinLength > 255 {
		errs = append(errs, fmt.Errorf("title_min_length %d out of [0,255]", p.TitleMinLength))
	}
	scores := map[string]int{
		"report_threshold":        p.ReportThreshold,
		"duplicate_threshold":     p.DuplicateThreshold,
		"exact_name_score":        p.ExactNameScore,
		"exact_size_score":        p.ExactSizeScore,
		"exact_size_name_floor":   p.ExactSizeNameFloor,
		"version_score":           p.VersionScore,
		"name_match_threshold":    p.NameMatchThreshold,
		"name_score_cap":          p.NameScoreCap,
		"content_match_threshold": p.ContentMatchThreshold,
		"title_match_threshold":   p.TitleMatchThreshold,
		"name_bonus":              p.NameBonus,

		"recommend.overwrite_exact_above":   p.Recommend.OverwriteExactAbove,
		"recommend.keep_version_above":      p.Recommend.KeepVersionAbove,
		"recommend.overwrite_content_above": p.Recommend.OverwriteContentAbove,
		"recommend.keep_both_above":         p.Recommend.KeepBothAbove,
	}
	for _, k := range sortedKeys(scores) {
		if v := scores[k]; v < 0 || v > 100 {
			errs = append(errs, fmt.Errorf("%s %d out of [0,100]", k, v))
		}
	}
	return errors.Join(errs...)
}
