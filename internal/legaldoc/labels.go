// Package legaldoc builds the content of legal notices: the plain-text
// notice stored on a case and the printable HTML document.
package legaldoc

import (
	"fmt"
	"strings"
	"time"

	"github.com/HAKEEM243/Masambukidi/internal/models"
)

var caseTypeLabels = map[string]string{
	models.CaseMiseEnDemeure:   "MISE EN DEMEURE",
	models.CasePlainteFormelle: "PLAINTE FORMELLE",
	models.CaseInjonction:      "INJONCTION DE RETRAIT",
}

var documentTitles = map[string]string{
	models.CaseMiseEnDemeure:   "MISE EN DEMEURE OFFICIELLE",
	models.CasePlainteFormelle: "PLAINTE FORMELLE",
	models.CaseInjonction:      "INJONCTION DE RETRAIT",
}

var abuseLabels = map[string]string{
	models.AbuseIdentityTheft:       "Usurpation d'identité",
	models.AbuseUnauthorizedContent: "Utilisation non autorisée du nom et/ou de l'image",
	models.AbuseDefamation:          "Diffamation publique",
	models.AbuseCommercialUse:       "Exploitation commerciale non autorisée",
	models.AbuseHarassment:          "Harcèlement",
	models.AbuseFraud:               "Fraude et escroquerie",
	models.AbuseOther:               "Violation des droits de la personnalité",
}

// CaseTypeLabel returns the notice heading for a case type; unknown types
// default to the mise en demeure heading.
func CaseTypeLabel(caseType string) string {
	if label, ok := caseTypeLabels[caseType]; ok {
		return label
	}
	return caseTypeLabels[models.CaseMiseEnDemeure]
}

// DocumentTitle returns the printable document title for a case type.
func DocumentTitle(caseType string) string {
	if title, ok := documentTitles[caseType]; ok {
		return title
	}
	return documentTitles[models.CaseMiseEnDemeure]
}

// AbuseLabel maps an abuse category to its display label. The lookup is
// case-insensitive and total: unknown categories get a generic label so
// document generation never fails on stored data.
func AbuseLabel(abuseType string) string {
	if label, ok := abuseLabels[strings.ToLower(abuseType)]; ok {
		return label
	}
	return "Utilisation non autorisée du nom et/ou de l'image"
}

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// FormatDate renders a long-form French date, e.g. "14 mars 2026".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), frenchMonths[t.Month()-1], t.Year())
}

// BuildNotice assembles the canonical plain-text notice stored on a case.
func BuildNotice(c *models.LegalCase, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s — %s\n", CaseTypeLabel(c.CaseType), c.CaseNumber)
	fmt.Fprintf(&b, "Signalement: %s\n", c.RefNumber)
	fmt.Fprintf(&b, "Contrevenant: %s\n", c.OffenderName)
	fmt.Fprintf(&b, "Plateforme: %s\n", c.Platform)
	fmt.Fprintf(&b, "Type d'infraction: %s\n", AbuseLabel(c.AbuseType))
	fmt.Fprintf(&b, "Date: %s", FormatDate(now))
	return b.String()
}
