package services

import (
	"regexp"
	"strings"
)

// ProtectedKeywords are the monitored terms; each match adds 2 points.
var ProtectedKeywords = []string{
	"masambukidi", "nitufuidi", "kulala", "kwamakanda",
	"papa masambukidi", "elucco", "e.lu.c.co",
}

// AnalysisService scores free text against the protected-term list and
// intent patterns. Pure and deterministic given the fixed tables.
type AnalysisService struct {
	commercialPattern *regexp.Regexp
	fraudPattern      *regexp.Regexp
}

func NewAnalysisService() *AnalysisService {
	return &AnalysisService{
		commercialPattern: regexp.MustCompile(`(?i)vente|acheter|€|usd|prix|tarif`),
		fraudPattern:      regexp.MustCompile(`(?i)faux|fake|arnaque|imposteur`),
	}
}

type AnalysisResult struct {
	RiskLevel        string   `json:"risk_level"`
	RiskScore        int      `json:"risk_score"`
	Violations       []string `json:"violations"`
	DetectedKeywords []string `json:"detected_keywords"`
	ContentType      string   `json:"content_type,omitempty"`
}

// Analyze scores content: 2 points per protected keyword (case-insensitive
// substring), 3 for a commercial-intent match, 3 for a fraud-intent match,
// capped at 10. Levels: high ≥ 6, medium ≥ 3, low otherwise.
func (s *AnalysisService) Analyze(content, contentType string) (*AnalysisResult, error) {
	if content == "" {
		return nil, ValidationError("Contenu requis")
	}

	lower := strings.ToLower(content)
	detected := make([]string, 0, len(ProtectedKeywords))
	for _, keyword := range ProtectedKeywords {
		if strings.Contains(lower, keyword) {
			detected = append(detected, keyword)
		}
	}

	score := len(detected) * 2
	violations := make([]string, 0, 3)
	if len(detected) > 0 {
		violations = append(violations, "Mots-clés protégés : "+strings.Join(detected, ", "))
	}
	if s.commercialPattern.MatchString(content) {
		score += 3
		violations = append(violations, "Utilisation commerciale potentielle")
	}
	if s.fraudPattern.MatchString(content) {
		score += 3
		violations = append(violations, "Contenu frauduleux potentiel")
	}

	level := "low"
	switch {
	case score >= 6:
		level = "high"
	case score >= 3:
		level = "medium"
	}
	if score > 10 {
		score = 10
	}

	return &AnalysisResult{
		RiskLevel:        level,
		RiskScore:        score,
		Violations:       violations,
		DetectedKeywords: detected,
		ContentType:      contentType,
	}, nil
}
