package analysis

import (
	"fmt"
	"time"

	"github.com/openclo/openclo/internal/types"
)

// AssembleAnalysis finalizes a parsed analysis result. The analysis date is
// stamped from the local clock, overwriting whatever the model supplied:
// wall-clock correctness must come from the local system, not the model.
// Missing optional fields are normalized to safe defaults so downstream
// consumers never see nil collections.
func AssembleAnalysis(result *types.AnalysisResult, now time.Time) *types.AnalysisResult {
	result.AnalysisDate = now.Format(time.RFC3339)

	if result.Strengths == nil {
		result.Strengths = []types.StrengthItem{}
	}
	for i := range result.Strengths {
		result.Strengths[i].Score = clampScore(result.Strengths[i].Score)
	}

	if result.Interests == nil {
		result.Interests = []types.InterestItem{}
	}
	for i := range result.Interests {
		if result.Interests[i].Evidence == nil {
			result.Interests[i].Evidence = []string{}
		}
	}

	if result.ActionPlans == nil {
		result.ActionPlans = []types.ActionPlan{}
	}
	for i := range result.ActionPlans {
		// Completion is tracked locally; the model's value is ignored.
		result.ActionPlans[i].Completed = false
		if result.ActionPlans[i].ID == "" {
			result.ActionPlans[i].ID = fmt.Sprintf("plan-%d", i+1)
		}
		if result.ActionPlans[i].Resources == nil {
			result.ActionPlans[i].Resources = []string{}
		}
	}

	if result.CareerSuggestions == nil {
		result.CareerSuggestions = []string{}
	}

	result.RelationGraph = pruneGraph(result.RelationGraph)

	return result
}

// AssembleChecklist normalizes generated checklist items: completion starts
// false and missing ids get positional fallbacks.
func AssembleChecklist(items []types.ChecklistItem) []types.ChecklistItem {
	if items == nil {
		return []types.ChecklistItem{}
	}
	for i := range items {
		items[i].Completed = false
		if items[i].ID == "" {
			items[i].ID = fmt.Sprintf("c-%d", i+1)
		}
	}
	return items
}

// pruneGraph drops links whose source or target references a node id the
// model never declared. The model is not guaranteed to keep links and nodes
// consistent.
func pruneGraph(graph types.RelationGraph) types.RelationGraph {
	if graph.Nodes == nil {
		graph.Nodes = []types.RelationNode{}
	}
	if graph.Links == nil {
		graph.Links = []types.RelationLink{}
		return graph
	}

	known := make(map[string]bool, len(graph.Nodes))
	for _, node := range graph.Nodes {
		known[node.ID] = true
	}

	kept := graph.Links[:0]
	for _, link := range graph.Links {
		if known[link.Source] && known[link.Target] {
			kept = append(kept, link)
		}
	}
	graph.Links = kept
	return graph
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
