package analysis

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/getzep/textparser/internal"
	"github.com/getzep/textparser/pkg/analyzers"
	"github.com/getzep/textparser/pkg/models"
)

var log = internal.GetLogger()

// stage produces the section of one analysis kind.
type stage struct {
	kind models.Kind
	run  func(ctx context.Context, p *pipeline) models.Section
}

// stages is consulted in order. Lemmatization precedes Associations so the
// lemma list exists before it is needed.
var stages = []stage{
	{kind: models.LanguageDetection, run: languageSection},
	{kind: models.Sentiment, run: sentimentSection},
	{kind: models.Entities, run: entitiesSection},
	{kind: models.Lemmatization, run: lemmaSection},
	{kind: models.Associations, run: associationsSection},
}

// Orchestrator runs the enabled analyses of a request against a
// LinguisticService and assembles the report.
type Orchestrator struct {
	service models.LinguisticService
}

func NewOrchestrator(service models.LinguisticService) *Orchestrator {
	return &Orchestrator{service: service}
}

// Run executes every enabled analysis of req sequentially. A failing analysis
// contributes its neutral result; Run itself never fails.
func (o *Orchestrator) Run(ctx context.Context, req *models.AnalysisRequest) *models.Report {
	p := &pipeline{service: o.service, request: req}
	enabled := req.EffectiveKinds()

	log.WithFields(logrus.Fields{
		"enabled":          enabled.String(),
		"max_associations": req.MaxAssociations,
	}).Debug("starting analysis")

	report := &models.Report{}
	for _, s := range stages {
		if !enabled.Has(s.kind) {
			continue
		}
		report.Sections = append(report.Sections, s.run(ctx, p))
	}

	return report
}

// pipeline carries per-request state between stages.
type pipeline struct {
	service models.LinguisticService
	request *models.AnalysisRequest

	lemmas     models.LemmaList
	lemmasDone bool
}

// ensureLemmaList lemmatizes the request text on first use and returns the
// same list afterwards.
func (p *pipeline) ensureLemmaList(ctx context.Context) models.LemmaList {
	if p.lemmasDone {
		return p.lemmas
	}
	lemmas, err := analyzers.Lemmatize(ctx, p.service, p.request.Text)
	if err != nil {
		warn(models.Lemmatization, err)
	}
	p.lemmas = lemmas
	p.lemmasDone = true
	return p.lemmas
}

func warn(kind models.Kind, err error) {
	log.Warn(models.NewAnalyzerError(kind, err))
}

func languageSection(ctx context.Context, p *pipeline) models.Section {
	lang, err := analyzers.DetectLanguage(ctx, p.service, p.request.Text)
	if err != nil {
		warn(models.LanguageDetection, err)
	}
	return FormatLanguage(lang, p.request.Text)
}

func sentimentSection(ctx context.Context, p *pipeline) models.Section {
	score, err := analyzers.ScoreSentiment(ctx, p.service, p.request.Text)
	if err != nil {
		warn(models.Sentiment, err)
	}
	return FormatSentiment(score)
}

func entitiesSection(ctx context.Context, p *pipeline) models.Section {
	matches, err := analyzers.ExtractEntities(ctx, p.service, p.request.Text)
	if err != nil {
		warn(models.Entities, err)
	}
	return FormatEntities(matches)
}

func lemmaSection(ctx context.Context, p *pipeline) models.Section {
	return FormatLemmas(p.ensureLemmaList(ctx))
}

func associationsSection(ctx context.Context, p *pipeline) models.Section {
	lemmas := p.ensureLemmaList(ctx)
	results := make([]models.AssociationResult, 0, len(lemmas))
	for _, lemma := range lemmas {
		result, err := analyzers.FindAssociations(ctx, p.service, lemma, p.request.MaxAssociations)
		if err != nil {
			warn(models.Associations, err)
		}
		results = append(results, result)
	}
	return FormatAssociations(results)
}
