package analysis

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/openclo/openclo/internal/llm"
	"github.com/openclo/openclo/internal/metrics"
	"github.com/openclo/openclo/internal/schemas"
	"github.com/openclo/openclo/internal/types"
)

// Analyzer orchestrates one AI round-trip per call: build prompt, invoke the
// gateway, extract and validate the JSON payload, assemble the final value.
// There is no retry, deduplication or cancellation beyond ctx; racing calls
// are independent and the caller decides which result wins.
type Analyzer struct {
	client  llm.Client
	logger  *zap.Logger
	metrics metrics.AIRecorder
}

// NewAnalyzer creates an Analyzer. logger and recorder may be nil.
func NewAnalyzer(client llm.Client, logger *zap.Logger, recorder metrics.AIRecorder) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &Analyzer{client: client, logger: logger, metrics: recorder}
}

// Analyze runs the full experience analysis for a profile.
func (a *Analyzer) Analyze(ctx context.Context, profile types.UserProfile, experiences []types.Experience) (*types.AnalysisResult, error) {
	prompt, err := BuildAnalysisPrompt(profile, experiences)
	if err != nil {
		return nil, err
	}

	text, err := a.generate(ctx, "analyze", prompt, llm.TierStandard)
	if err != nil {
		return nil, err
	}

	raw, err := ExtractJSONObject(text)
	if err != nil {
		a.logRecoveryFailure("analyze", text, err)
		return nil, err
	}
	if err := schemas.Validate(schemas.AnalysisResult, []byte(raw)); err != nil {
		a.logRecoveryFailure("analyze", text, err)
		return nil, &ParseError{Message: "analysis result violates expected shape", Snippet: snippet(text), Cause: err}
	}

	var result types.AnalysisResult
	if err := unmarshalRecovered(raw, text, &result); err != nil {
		a.logRecoveryFailure("analyze", text, err)
		return nil, err
	}

	return AssembleAnalysis(&result, time.Now()), nil
}

// Checklist generates 5-7 checklist items for an action plan.
func (a *Analyzer) Checklist(ctx context.Context, title, description string) ([]types.ChecklistItem, error) {
	prompt, err := BuildChecklistPrompt(title, description)
	if err != nil {
		return nil, err
	}

	text, err := a.generate(ctx, "checklist", prompt, llm.TierLite)
	if err != nil {
		return nil, err
	}

	raw, err := ExtractJSONArray(text)
	if err != nil {
		a.logRecoveryFailure("checklist", text, err)
		return nil, err
	}
	if err := schemas.Validate(schemas.Checklist, []byte(raw)); err != nil {
		a.logRecoveryFailure("checklist", text, err)
		return nil, &ParseError{Message: "checklist violates expected shape", Snippet: snippet(text), Cause: err}
	}

	var items []types.ChecklistItem
	if err := unmarshalRecovered(raw, text, &items); err != nil {
		a.logRecoveryFailure("checklist", text, err)
		return nil, err
	}

	return AssembleChecklist(items), nil
}

// Suggest generates 5 experience title suggestions for a category.
func (a *Analyzer) Suggest(ctx context.Context, profile types.UserProfile, category types.ExperienceCategory, existingTitles []string) ([]string, error) {
	prompt, err := BuildSuggestionPrompt(profile, category, existingTitles)
	if err != nil {
		return nil, err
	}

	text, err := a.generate(ctx, "suggest", prompt, llm.TierLite)
	if err != nil {
		return nil, err
	}

	raw, err := ExtractJSONArray(text)
	if err != nil {
		a.logRecoveryFailure("suggest", text, err)
		return nil, err
	}
	if err := schemas.Validate(schemas.Suggestions, []byte(raw)); err != nil {
		a.logRecoveryFailure("suggest", text, err)
		return nil, &ParseError{Message: "suggestions violate expected shape", Snippet: snippet(text), Cause: err}
	}

	var suggestions []string
	if err := unmarshalRecovered(raw, text, &suggestions); err != nil {
		a.logRecoveryFailure("suggest", text, err)
		return nil, err
	}
	if suggestions == nil {
		suggestions = []string{}
	}

	return suggestions, nil
}

// generate invokes the gateway and classifies quota errors.
func (a *Analyzer) generate(ctx context.Context, kind, prompt string, tier llm.ModelTier) (string, error) {
	if a.client == nil {
		a.metrics.RecordAIFailure(kind, "config")
		return "", &ConfigError{Message: "AI gateway client is not configured"}
	}

	start := time.Now()
	text, err := a.client.GenerateContent(ctx, prompt, tier)
	a.metrics.RecordAILatency(kind, time.Since(start))

	if err != nil {
		err = ClassifyGatewayError(err)
		reason := "gateway"
		if _, ok := err.(*QuotaExceededError); ok {
			reason = "quota"
		}
		a.metrics.RecordAIFailure(kind, reason)
		a.logger.Warn("AI gateway call failed",
			zap.String("kind", kind),
			zap.Error(err),
		)
		return "", err
	}

	a.metrics.RecordAISuccess(kind)
	return text, nil
}

// logRecoveryFailure logs a bounded snippet of raw model output when
// extraction or validation fails.
func (a *Analyzer) logRecoveryFailure(kind, text string, err error) {
	a.metrics.RecordAIFailure(kind, "parse")
	a.logger.Error("failed to recover JSON from model output",
		zap.String("kind", kind),
		zap.String("snippet", snippet(text)),
		zap.Error(err),
	)
}
