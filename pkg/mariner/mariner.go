// Package mariner classifies maritime operational documents. It scores
// free-text maintenance records, sensor alerts, and incident reports
// against a rule catalog, derives an action priority, and assembles a
// complete triage result: summary, keywords, entities, recommended
// actions, and a risk assessment.
//
// The Processor facade wires the subpackages together; construct one with
// New and feed it documents through Process. Processing a document never
// fails on content: weak or empty input degrades to safe defaults and the
// degradation is observable through logs, metrics, and result metadata.
package mariner

import (
	"crypto/rand"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/seaops/mariner/pkg/mariner/advise"
	"github.com/seaops/mariner/pkg/mariner/catalog"
	"github.com/seaops/mariner/pkg/mariner/classify"
	"github.com/seaops/mariner/pkg/mariner/doctype"
	"github.com/seaops/mariner/pkg/mariner/extract"
	"github.com/seaops/mariner/pkg/mariner/internalerr"
	"github.com/seaops/mariner/pkg/mariner/metrics"
	"github.com/seaops/mariner/pkg/mariner/priority"
	"github.com/seaops/mariner/pkg/mariner/summarize"
	"github.com/seaops/mariner/pkg/mariner/textproc"
)

// Options configures a Processor. The zero value selects the built-in
// catalog, default weights, ULID identifiers, the system clock, no
// logging, no metrics, and no cache.
type Options struct {
	// Catalog overrides the built-in pattern catalog.
	Catalog *catalog.Catalog
	// Weights overrides the score component weights. The zero value
	// selects classify.DefaultWeights.
	Weights classify.Weights
	// MaxSummaryLength caps summaries, in runes. Zero selects
	// summarize.DefaultMaxLength.
	MaxSummaryLength int
	// CacheSize bounds the classification memo cache. Zero disables
	// caching. Only classification outcomes are memoized; IDs and
	// timestamps stay unique per call.
	CacheSize int
	// IDGenerator mints result IDs. Defaults to monotonic ULIDs.
	IDGenerator func() string
	// Clock supplies result timestamps. Defaults to time.Now.
	Clock func() time.Time
	// Logger receives processing events. Defaults to a no-op logger.
	Logger *zerolog.Logger
	// Metrics receives processing instruments. Nil disables them.
	Metrics *metrics.Metrics
}

// Processor turns raw documents into triage results. It is safe for
// concurrent use.
type Processor struct {
	catalog    *catalog.Catalog
	scorer     *classify.Scorer
	resolver   *priority.Resolver
	extractor  *extract.Extractor
	maxSummary int
	cache      *lru.Cache[string, classify.Outcome]
	idgen      func() string
	clock      func() time.Time
	logger     zerolog.Logger
	metrics    *metrics.Metrics
}

// New builds a Processor from opts. It returns an error only for invalid
// configuration; processing itself never fails on document content.
func New(opts Options) (*Processor, error) {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	weights := opts.Weights
	if weights == (classify.Weights{}) {
		weights = classify.DefaultWeights()
	}
	if weights.Keyword < 0 || weights.Equipment < 0 || weights.Priority < 0 {
		return nil, fmt.Errorf("%w: negative score weights", internalerr.ErrInvalidConfig)
	}

	if opts.MaxSummaryLength < 0 {
		return nil, fmt.Errorf("%w: negative summary length", internalerr.ErrInvalidConfig)
	}
	maxSummary := opts.MaxSummaryLength
	if maxSummary == 0 {
		maxSummary = summarize.DefaultMaxLength
	}

	if opts.CacheSize < 0 {
		return nil, fmt.Errorf("%w: negative cache size", internalerr.ErrInvalidConfig)
	}
	var cache *lru.Cache[string, classify.Outcome]
	if opts.CacheSize > 0 {
		var err error
		cache, err = lru.New[string, classify.Outcome](opts.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("create classification cache: %w", err)
		}
	}

	idgen := opts.IDGenerator
	if idgen == nil {
		entropy := &ulid.LockedMonotonicReader{MonotonicReader: ulid.Monotonic(rand.Reader, 0)}
		idgen = func() string {
			return ulid.MustNew(ulid.Now(), entropy).String()
		}
	}

	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Processor{
		catalog:    cat,
		scorer:     classify.NewScorer(cat, weights),
		resolver:   priority.NewResolver(priority.DefaultRules()),
		extractor:  extract.NewExtractor(),
		maxSummary: maxSummary,
		cache:      cache,
		idgen:      idgen,
		clock:      clock,
		logger:     logger,
		metrics:    opts.Metrics,
	}, nil
}

// Process runs the full pipeline on one document and always returns a
// usable Result. Content problems degrade to safe defaults; a panic in a
// sub-step or injected dependency is converted into the fixed error
// result.
func (p *Processor) Process(req Request) (res *Result) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error().Interface("panic", r).Msg("document processing panicked")
			if p.metrics != nil {
				p.metrics.ProcessingErrors.Inc()
			}
			res = p.errorResult(fmt.Sprint(r))
		}
	}()

	cleaned := textproc.Normalize(req.Text)

	outcome := p.classifyText(cleaned)
	level := p.resolver.Resolve(cleaned, outcome.Category)

	summary := summarize.Summarize(cleaned, p.maxSummary)
	entities := p.extractor.Entities(cleaned)
	keywords, degraded := p.extractor.Keywords(cleaned)

	docType, err := doctype.ParseType(req.DocumentType)
	if err != nil {
		if req.DocumentType != "" {
			p.logger.Debug().Str("hint", req.DocumentType).Msg("unknown document type hint, inferring from text")
		}
		docType = doctype.Infer(cleaned)
	}

	meta := map[string]any{
		MetaOriginalLength:    len(req.Text),
		MetaProcessedLength:   len(cleaned),
		MetaProcessingVersion: Version,
	}
	if degraded {
		meta[MetaDegradedSteps] = []string{"keywords"}
	}

	res = &Result{
		ID:                 p.idgen(),
		Summary:            summary,
		Details:            advise.Details(outcome.Category, level),
		Classification:     outcome.Category,
		Priority:           level,
		Confidence:         outcome.Confidence,
		Keywords:           keywords,
		Entities:           entities,
		RecommendedActions: advise.Recommendations(outcome.Category, level),
		RiskAssessment:     advise.Risk(level, cleaned),
		DocumentType:       docType,
		VesselID:           req.VesselID,
		Timestamp:          p.clock(),
		Metadata:           meta,
	}

	p.observe(res, outcome, degraded, len(req.Text), time.Since(start))
	return res
}

// Scores returns the per-category score breakdown for text after
// normalization, in catalog order.
func (p *Processor) Scores(text string) []classify.Score {
	return p.scorer.Scores(textproc.Normalize(text))
}

// classifyText scores cleaned text, memoizing outcomes when a cache is
// configured.
func (p *Processor) classifyText(cleaned string) classify.Outcome {
	if p.cache != nil {
		if out, ok := p.cache.Get(cleaned); ok {
			return out
		}
	}
	out := p.scorer.Classify(cleaned)
	if p.cache != nil {
		p.cache.Add(cleaned, out)
	}
	return out
}

func (p *Processor) observe(res *Result, outcome classify.Outcome, degraded bool, textLen int, elapsed time.Duration) {
	if outcome.Fallback {
		p.logger.Debug().Msg("weak classification signal, defaulting to routine maintenance")
	}
	if degraded {
		p.logger.Warn().Str("step", "keywords").Msg("keyword extraction degraded to long-word fallback")
	}
	p.logger.Info().
		Str("id", res.ID).
		Str("classification", res.Classification.String()).
		Str("priority", res.Priority.String()).
		Float64("confidence", res.Confidence).
		Int("text_length", textLen).
		Dur("elapsed", elapsed).
		Msg("document processed")

	if p.metrics == nil {
		return
	}
	p.metrics.DocumentsProcessed.WithLabelValues(res.Classification.String(), res.Priority.String()).Inc()
	p.metrics.ProcessingDuration.Observe(elapsed.Seconds())
	if outcome.Fallback {
		p.metrics.WeakSignalFallbacks.Inc()
	}
	if degraded {
		p.metrics.DegradedSteps.WithLabelValues("keywords").Inc()
	}
}

// errorResult is the fixed safe shape returned when processing panics.
func (p *Processor) errorResult(message string) *Result {
	return &Result{
		ID:                 p.idgen(),
		Summary:            "Error processing document",
		Details:            "An error occurred during processing: " + message,
		Classification:     catalog.RoutineMaintenance,
		Priority:           priority.Low,
		Confidence:         0,
		Keywords:           []string{},
		Entities:           map[extract.Kind][]string{},
		RecommendedActions: []string{"Review document manually", "Check system logs"},
		RiskAssessment:     "Unable to assess risk due to processing error",
		Timestamp:          p.clock(),
		Metadata:           map[string]any{},
	}
}
