package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeKeywordAndCommercial(t *testing.T) {
	svc := NewAnalysisService()

	result, err := svc.Analyze("contenu masambukidi en vente à 50€", "text")
	require.NoError(t, err)

	assert.Equal(t, 5, result.RiskScore)
	assert.Equal(t, "medium", result.RiskLevel)
	assert.Equal(t, []string{"masambukidi"}, result.DetectedKeywords)
	require.Len(t, result.Violations, 2)
	assert.Equal(t, "Mots-clés protégés : masambukidi", result.Violations[0])
	assert.Equal(t, "Utilisation commerciale potentielle", result.Violations[1])
	assert.Equal(t, "text", result.ContentType)
}

func TestAnalyzeEmptyContent(t *testing.T) {
	svc := NewAnalysisService()

	_, err := svc.Analyze("", "text")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, "Contenu requis", err.Error())
}

func TestAnalyzeCleanContent(t *testing.T) {
	svc := NewAnalysisService()

	result, err := svc.Analyze("une vidéo de cuisine congolaise", "video")
	require.NoError(t, err)
	assert.Equal(t, 0, result.RiskScore)
	assert.Equal(t, "low", result.RiskLevel)
	assert.Empty(t, result.Violations)
	assert.Empty(t, result.DetectedKeywords)
}

func TestAnalyzeHighRiskCapped(t *testing.T) {
	svc := NewAnalysisService()

	result, err := svc.Analyze(
		"FAUX compte PAPA MASAMBUKIDI kulala nitufuidi, prix en USD, arnaque", "text")
	require.NoError(t, err)

	// papa masambukidi also matches masambukidi as a substring.
	assert.Equal(t, "high", result.RiskLevel)
	assert.Equal(t, 10, result.RiskScore)
	assert.Contains(t, result.DetectedKeywords, "papa masambukidi")
	assert.Contains(t, result.DetectedKeywords, "nitufuidi")
	require.Len(t, result.Violations, 3)
	assert.Equal(t, "Contenu frauduleux potentiel", result.Violations[2])
}

func TestAnalyzeCaseInsensitiveKeywords(t *testing.T) {
	svc := NewAnalysisService()

	result, err := svc.Analyze("Vidéo E.LU.C.CO officielle", "video")
	require.NoError(t, err)
	assert.Equal(t, []string{"e.lu.c.co"}, result.DetectedKeywords)
	assert.Equal(t, 2, result.RiskScore)
	assert.Equal(t, "low", result.RiskLevel)
}
