package legaldoc

import (
	"html/template"
	"strings"
	"time"

	"github.com/HAKEEM243/Masambukidi/internal/models"
)

type documentData struct {
	Title         string
	CaseNumber    string
	Date          string
	Signed        bool
	SignedAt      string
	OffenderName  string
	OffenderEmail string
	PlatformID    string
	Platform      string
	AbuseLabel    string
	RefNumber     string
	ReportURL     string
	ReportDesc    string
}

// RenderHTML produces the printable legal document for a case. The case
// snapshot is the only data source; the report is never re-read.
func RenderHTML(c *models.LegalCase, now time.Time) (string, error) {
	data := documentData{
		Title:         DocumentTitle(c.CaseType),
		CaseNumber:    c.CaseNumber,
		Date:          FormatDate(now),
		Signed:        c.Status == models.CaseSigned,
		OffenderName:  c.OffenderName,
		OffenderEmail: c.OffenderEmail,
		PlatformID:    c.OffenderPlatformID,
		Platform:      c.Platform,
		AbuseLabel:    AbuseLabel(c.AbuseType),
		RefNumber:     c.RefNumber,
		ReportURL:     c.ReportURL,
		ReportDesc:    c.ReportDesc,
	}
	if data.OffenderName == "" {
		data.OffenderName = "Le Contrevenant Identifié"
	}
	if data.Platform == "" {
		data.Platform = "Non spécifiée"
	}
	if data.ReportURL == "" {
		data.ReportURL = "Non communiquée"
	}
	if data.ReportDesc == "" {
		data.ReportDesc = "Utilisation non autorisée constatée par nos services"
	}
	if data.RefNumber == "" {
		data.RefNumber = "N/A"
	}
	if c.SignedAt != nil {
		data.SignedAt = FormatDate(*c.SignedAt)
	} else {
		data.SignedAt = data.Date
	}

	var b strings.Builder
	if err := documentTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

var documentTemplate = template.Must(template.New("legaldoc").Parse(`<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}} — {{.CaseNumber}} — E.LU.C.CO.</title>
<style>
  *{margin:0;padding:0;box-sizing:border-box;}
  html{-webkit-print-color-adjust:exact;print-color-adjust:exact;}
  body{font-family:'Source Sans 3',Arial,sans-serif;font-size:10.5pt;color:#1A1A1A;background:#fff;line-height:1.7;}
  .page{max-width:210mm;margin:0 auto;padding:18mm 22mm 20mm 26mm;min-height:297mm;background:#fff;}
  .watermark{position:fixed;top:50%;left:50%;transform:translate(-50%,-50%) rotate(-35deg);font-size:88pt;font-weight:700;color:rgba(26,58,26,0.04);pointer-events:none;z-index:0;white-space:nowrap;}
  .top-stripe{height:6pt;background:#1A3A1A;}
  .sub-stripe{height:2pt;background:#C9A227;margin-bottom:18pt;}
  .doc-header{display:flex;justify-content:space-between;gap:20pt;padding-bottom:14pt;margin-bottom:14pt;border-bottom:1pt solid #C9A227;}
  .header-logo{font-size:24pt;font-weight:700;color:#1A3A1A;border:2pt solid #C9A227;padding:8pt 14pt;background:#FAFAF7;}
  .org-text h1{font-size:14pt;font-weight:700;color:#1A3A1A;margin-bottom:3pt;}
  .org-text .subtitle{font-size:9pt;color:#4A6A4A;font-weight:600;}
  .org-text .ordinance{font-size:7.5pt;color:#777;font-style:italic;}
  .ref-box{border:1pt solid #D4C5A3;background:#FAFAF7;padding:10pt 12pt;}
  .ref-box-number{font-family:'Courier New',monospace;font-size:11.5pt;font-weight:700;color:#1A3A1A;}
  .banner-signed{background:#F0FDF4;border-left:3pt solid #16A34A;padding:8pt 12pt;margin:10pt 0 14pt;font-size:9pt;}
  .banner-draft{background:#FFFBEB;border-left:3pt solid #D97706;padding:8pt 12pt;margin:10pt 0 14pt;font-size:9pt;color:#92400E;font-weight:600;}
  .doc-title-main{font-size:17pt;font-weight:700;color:#1A3A1A;text-transform:uppercase;letter-spacing:2px;border-top:1.5pt double #1A3A1A;border-bottom:1.5pt double #1A3A1A;padding:10pt 0;margin:18pt 20pt;text-align:center;}
  .dest-block{margin:14pt 0;padding:10pt 16pt;background:#F9F7F4;border-left:3pt solid #1A3A1A;}
  .section-heading{font-size:9pt;font-weight:700;color:#1A3A1A;text-transform:uppercase;letter-spacing:2px;border-bottom:0.5pt solid #1A3A1A;padding-bottom:3pt;margin:18pt 0 10pt;}
  .facts-table{width:100%;border-collapse:collapse;margin:6pt 0 14pt;font-size:9.5pt;}
  .facts-table td{padding:5pt 8pt;border-bottom:0.5pt solid #EDE8DE;vertical-align:top;}
  .facts-table td:first-child{font-weight:600;color:#555;width:35%;background:#FAFAF7;}
  .body-para{line-height:1.75;text-align:justify;margin-bottom:9pt;}
  .article{margin:8pt 0;padding:7pt 12pt 7pt 16pt;font-size:9.5pt;border-left:2pt solid #C9A227;background:#FDFCF9;}
  .demand-row{display:flex;gap:10pt;margin:7pt 0;font-size:10pt;}
  .warning-block{background:#FEF9EC;border:1pt solid #D97706;border-left:3pt solid #D97706;padding:10pt 14pt;margin:12pt 0;font-size:9.5pt;color:#7C4A00;}
  .sig-row{display:flex;justify-content:space-between;gap:16pt;margin-top:14pt;}
  .sig-col{flex:1;text-align:center;}
  .sig-line{height:50pt;border-bottom:1pt solid #333;margin-bottom:5pt;}
  .doc-footer{font-size:7.5pt;color:#999;text-align:center;margin-top:10pt;}
  .print-btn{position:fixed;top:14pt;right:18pt;background:#1A3A1A;color:#fff;border:none;padding:7pt 16pt;font-size:9pt;font-weight:600;border-radius:4pt;cursor:pointer;}
  @media print{.page{padding:15mm 18mm;}.print-btn{display:none;}}
</style>
</head>
<body>
<button class="print-btn" onclick="window.print()">Imprimer / PDF</button>
<div class="watermark">E.LU.C.CO.</div>
<div class="top-stripe"></div>
<div class="sub-stripe"></div>
<div class="page">

<div class="doc-header">
  <div style="display:flex;align-items:center;gap:14pt;">
    <div class="header-logo">E.LU.C.CO.</div>
    <div class="org-text">
      <h1>ÉGLISE LUMIÈRE DU CHRIST AU CONGO</h1>
      <div class="subtitle">E.LU.C.CO. — Administration Officielle</div>
      <div class="ordinance">Ord. Présidentielle N° 97-031 du 14 Mars 1997 · Personnalité Civile Reconnue</div>
      <div class="ordinance">Kinshasa, République Démocratique du Congo</div>
    </div>
  </div>
  <div class="ref-box">
    <div class="ref-box-number">{{.CaseNumber}}</div>
    <div><strong>Date :</strong> {{.Date}}</div>
    <div><strong>Lieu :</strong> Kinshasa, R.D.C.</div>
    <div><strong>Type :</strong> {{.Title}}</div>
  </div>
</div>

{{if .Signed}}<div class="banner-signed"><strong style="color:#15803D;">DOCUMENT SIGNÉ ÉLECTRONIQUEMENT</strong> — Signé le : {{.SignedAt}} — Administration E.LU.C.CO.</div>
{{else}}<div class="banner-draft">DOCUMENT EN COURS DE VALIDATION — EN ATTENTE DE SIGNATURE</div>
{{end}}

<div class="doc-title-main">{{.Title}}</div>

<div class="dest-block">
  <div style="font-size:7.5pt;font-weight:700;color:#888;text-transform:uppercase;">À l'attention de</div>
  <div style="font-size:12pt;font-weight:700;">{{.OffenderName}}</div>
  <div style="font-size:9pt;color:#555;">
    {{if .OffenderEmail}}Email : {{.OffenderEmail}}<br>{{end}}
    Plateforme : {{.Platform}}{{if .PlatformID}} · Identifiant : {{.PlatformID}}{{end}}
  </div>
</div>

<div class="section-heading">Objet</div>
<p class="body-para"><strong>Objet : {{.Title}} — {{.AbuseLabel}} — Sa Majesté Masambukidi I, Chef Spirituel de l'E.LU.C.CO.</strong></p>
<p class="body-para">Monsieur / Madame <strong>{{.OffenderName}}</strong>,</p>
<p class="body-para">Par la présente, l'Administration de <strong>Sa Majesté Papa Samuel Masambukidi I</strong>, Chef Spirituel de l'Église Lumière du Christ au Congo (E.LU.C.CO.), institution dotée d'une personnalité civile officielle en République Démocratique du Congo en vertu de l'<strong>Ordonnance Présidentielle N° 97-031 du 14 Mars 1997</strong>, a été informée que vous faites usage, sans autorisation préalable et écrite, du nom, de l'image et/ou de la réputation de Sa Majesté.</p>
<p class="body-para">Cette utilisation constitue une <strong>violation caractérisée des droits de la personnalité</strong> de Sa Majesté Masambukidi I, et engage votre responsabilité civile et pénale conformément au droit congolais en vigueur.</p>

<div class="section-heading">Faits constatés</div>
<table class="facts-table">
  <tr><td>N° de signalement</td><td>{{.RefNumber}}</td></tr>
  <tr><td>Nature de l'infraction</td><td>{{.AbuseLabel}}</td></tr>
  <tr><td>Plateforme concernée</td><td>{{.Platform}}</td></tr>
  <tr><td>URL ou contenu litigieux</td><td style="word-break:break-all;">{{.ReportURL}}</td></tr>
  <tr><td>Description des faits</td><td>{{.ReportDesc}}</td></tr>
  <tr><td>Date de constatation</td><td>{{.Date}}</td></tr>
  <tr><td>Auteur du constat</td><td>Administration E.LU.C.CO. — Service de Protection des Droits</td></tr>
</table>

<div class="section-heading">Fondements juridiques</div>
<div class="article"><strong>Article 1 — Personnalité civile et droits institutionnels</strong><br>L'E.LU.C.CO. bénéficie de la personnalité civile reconnue par l'<strong>Ordonnance Présidentielle N° 97-031 du 14 Mars 1997</strong>, lui conférant le droit à la protection de l'image, du nom et de la réputation de ses représentants.</div>
<div class="article"><strong>Article 2 — Protection des droits de la personnalité</strong><br>Conformément au <strong>Code Civil Congolais, Livre III</strong>, toute utilisation non autorisée du nom ou de l'image d'une personnalité reconnue constitue une atteinte aux droits de la personnalité, ouvrant droit à réparation et poursuite judiciaire.</div>
<div class="article"><strong>Article 3 — Infractions pénales</strong><br>L'<strong>Article 124 du Code Pénal Congolais</strong> et la <strong>loi n° 23/010 du 13 mars 2023</strong> (Code du Numérique) prévoient des sanctions spécifiques pour toute infraction commise par voie électronique ou sur les plateformes numériques.</div>

<div class="section-heading">Demandes formelles</div>
<p class="body-para">En application des textes susvisés, nous vous sommions de :</p>
<div class="demand-row"><div><strong>1.</strong></div><div><strong>CESSER IMMÉDIATEMENT</strong> toute utilisation du nom « Masambukidi », « Papa Masambukidi Samuel », « Sa Majesté Masambukidi I » ou tout dérivé.</div></div>
<div class="demand-row"><div><strong>2.</strong></div><div><strong>RETIRER SOUS 48 HEURES</strong> la totalité des contenus litigieux accessibles au public.</div></div>
<div class="demand-row"><div><strong>3.</strong></div><div><strong>CONFIRMER PAR ÉCRIT</strong> à l'adresse <strong>masambukidiste1983@gmail.com</strong> la réalisation effective du retrait.</div></div>
<div class="demand-row"><div><strong>4.</strong></div><div><strong>S'ENGAGER À NE PAS RÉCIDIVER</strong> sous quelque forme que ce soit, à peine de poursuites immédiates.</div></div>

<div class="section-heading">Avertissement</div>
<div class="warning-block">
  <div style="font-weight:700;text-transform:uppercase;color:#B45309;margin-bottom:6pt;">Conséquences strictes en cas de non-respect</div>
  À défaut de réponse satisfaisante dans le délai de <strong>48 heures</strong>, l'Administration de Sa Majesté se réserve le droit de :<br><br>
  — Déposer une <strong>plainte formelle</strong> auprès du Parquet de Kinshasa ;<br>
  — Introduire une <strong>action civile en dommages et intérêts</strong> ;<br>
  — Saisir les <strong>équipes juridiques des plateformes</strong> (Meta, Google, TikTok, YouTube, etc.) ;<br>
  — Solliciter une <strong>injonction judiciaire</strong> de blocage et suppression ;<br>
  — Publier un <strong>communiqué officiel</strong> E.LU.C.CO. rendant publique la situation.
</div>

<div style="margin:14pt 0 10pt;">Fait à <strong>Kinshasa, République Démocratique du Congo</strong>, le <strong>{{.Date}}</strong>.</div>

<div class="section-heading">Signatures et cachet</div>
<div class="sig-row">
  <div class="sig-col">
    <div class="sig-line">{{if .Signed}}<div style="padding-top:30pt;font-style:italic;color:#1A3A1A;">Administrateur Masambukidi I</div>{{end}}</div>
    <div style="font-weight:700;font-size:9.5pt;">Responsable Administratif</div>
    <div style="font-size:8pt;color:#666;">E.LU.C.CO. — Protection des Droits</div>
    <div style="font-size:7.5pt;color:{{if .Signed}}#16A34A{{else}}#999{{end}};font-weight:600;">{{if .Signed}}Signé le {{.SignedAt}}{{else}}(Signature à apposer){{end}}</div>
  </div>
  <div class="sig-col">
    <div class="sig-line"></div>
    <div style="font-weight:700;font-size:9.5pt;">Signature pour réception</div>
    <div style="font-size:8pt;color:#666;">{{.OffenderName}}</div>
    <div style="font-size:7.5pt;color:#999;">Date de réception : _______________</div>
  </div>
</div>

</div>
<div class="doc-footer">
  <p>E.LU.C.CO. — Église Lumière du Christ au Congo · Kinshasa, République Démocratique du Congo</p>
  <p>Document officiel archivé · Référence : <strong>{{.CaseNumber}}</strong></p>
</div>
</body>
</html>`))
