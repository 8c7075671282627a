// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/roommate-matcher/internal/preference"
	"github.com/jonathan/roommate-matcher/internal/ranking"
	"github.com/jonathan/roommate-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// featuresPerSide is how many liked and disliked features are shown per category
	featuresPerSide = 3
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func formatFeatures(features []types.FeatureWeight) string {
	parts := make([]string, len(features))
	for i, f := range features {
		parts[i] = fmt.Sprintf("%s %+.3f", f.Feature, f.Weight)
	}
	return strings.Join(parts, ", ")
}

// PrintProfile outputs the strongest likes and dislikes of every category.
func (p *Printer) PrintProfile(profile *types.PreferenceProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Learned features: %d\n", profile.Size()))

	for _, category := range types.Categories() {
		weights := profile.Weights(category)
		if len(weights) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n%s (%d):\n", category, len(weights)))
		if top := preference.TopFeatures(profile, category, featuresPerSide); len(top) > 0 {
			sb.WriteString(fmt.Sprintf("  + %s\n", formatFeatures(top)))
		}
		if bottom := preference.BottomFeatures(profile, category, featuresPerSide); len(bottom) > 0 {
			sb.WriteString(fmt.Sprintf("  - %s\n", formatFeatures(bottom)))
		}
	}

	p.printBox("PREFERENCE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedCandidates outputs the top N candidates with scores and matched features.
func (p *Printer) PrintRankedCandidates(ranked *types.RankedCandidates) {
	if ranked == nil || len(ranked.Ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates ranked: %d\n\n", len(ranked.Ranked)))

	count := min(len(ranked.Ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		rc := ranked.Ranked[i]
		name := rc.CandidateID
		if rc.Candidate != nil && rc.Candidate.Name != "" {
			name = fmt.Sprintf("%s (%s)", rc.Candidate.Name, rc.CandidateID)
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, name))
		sb.WriteString(fmt.Sprintf("    Score: %d\n", rc.Score))
		if len(rc.MatchedFeatures) > 0 {
			sb.WriteString(fmt.Sprintf("    Matches: %s\n", strings.Join(rc.MatchedFeatures, ", ")))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked.Ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(ranked.Ranked)-maxItemsToShow))
	}

	p.printBox("TOP MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExplanation outputs how a single candidate's score came about.
func (p *Printer) PrintExplanation(explanation *ranking.Explanation) {
	if explanation == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidate: %s\n", explanation.CandidateID))
	sb.WriteString(fmt.Sprintf("Score:     %d\n", explanation.Score))

	if len(explanation.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		for _, c := range explanation.Strengths {
			sb.WriteString(fmt.Sprintf("  ✓ %s: %s (%+.1f)\n", c.Category, c.Feature, c.Points))
		}
	}
	if len(explanation.Conflicts) > 0 {
		sb.WriteString("\nConflicts:\n")
		for _, c := range explanation.Conflicts {
			sb.WriteString(fmt.Sprintf("  ⚠ %s: %s (%+.1f)\n", c.Category, c.Feature, c.Points))
		}
	}
	if explanation.Notes != "" {
		sb.WriteString(fmt.Sprintf("\n%s\n", explanation.Notes))
	}

	p.printBox("COMPATIBILITY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFeatures outputs a feature list of one category.
func (p *Printer) PrintFeatures(category types.Category, bottom bool, features []types.FeatureWeight) {
	title := fmt.Sprintf("TOP %s", strings.ToUpper(string(category)))
	if bottom {
		title = fmt.Sprintf("BOTTOM %s", strings.ToUpper(string(category)))
	}

	if len(features) == 0 {
		p.printBox(title, "No learned features")
		return
	}

	var sb strings.Builder
	for i, f := range features {
		sb.WriteString(fmt.Sprintf("%d. %-30s %+.4f\n", i+1, f.Feature, f.Weight))
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCounters outputs the swipe bookkeeping of a session.
func (p *Printer) PrintCounters(counters types.SwipeCounters) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total swipes: %d\n", counters.TotalSwipes))
	sb.WriteString(fmt.Sprintf("Liked:        %d", len(counters.LikedItems)))
	if n := len(counters.LikedItems); n > 0 {
		shown := counters.LikedItems[:min(n, maxItemsToShow)]
		sb.WriteString(fmt.Sprintf("\n  %s", strings.Join(shown, ", ")))
		if n > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("\n  ... and %d more", n-maxItemsToShow))
		}
	}
	p.printBox("SWIPES", sb.String())
}
