// Package travel validates and simulates journeys between resolved
// locations.
package travel

import (
	"fmt"
	"strings"

	"github.com/halc8312/shinwa-sub002/internal/geography"
)

// Severity grades a validation verdict.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Thresholds are the distance cutoffs for travel plausibility, in the
// same normalized units as location coordinates. At or below Near,
// unconnected travel is plausible; above Far it is rejected; between
// the two it is allowed with a warning.
type Thresholds struct {
	Near float64
	Far  float64
}

// DefaultThresholds covers a 0-100 coordinate plane.
var DefaultThresholds = Thresholds{Near: 20, Far: 50}

// maxSuggestions caps how many alternative names an error verdict lists.
const maxSuggestions = 3

// Verdict is the outcome of a travel validation.
type Verdict struct {
	IsValid     bool     `json:"is_valid"`
	Severity    Severity `json:"severity"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// ValidateTravel checks whether travel between two free-text location
// names is plausible on the given snapshot. characterID and chapter
// identify the triggering scene for the caller's records; they do not
// affect the decision.
func ValidateTravel(ix *geography.Index, fromName, toName, characterID string, chapter int, th Thresholds) Verdict {
	from, fromOK := ix.Resolve(fromName)
	to, toOK := ix.Resolve(toName)

	if !fromOK || !toOK {
		return unresolvedVerdict(ix, fromName, toName, fromOK, toOK)
	}

	dist := geography.Distance(from, to)
	descriptive := from.Descriptive || to.Descriptive

	switch {
	case ix.Connected(from, to) || dist <= th.Near:
		msg := fmt.Sprintf("「%s」から「%s」への移動は可能です", from.Name, to.Name)
		if descriptive {
			msg += "（場所の説明的な表現を含みます）"
		}
		return Verdict{IsValid: true, Severity: SeverityInfo, Message: msg}
	case descriptive:
		return Verdict{
			IsValid:  true,
			Severity: SeverityInfo,
			Message: fmt.Sprintf("「%s」から「%s」への移動を許可します（固有の地名ではなく情景の描写が含まれるため、距離の判定は行いません）",
				from.Name, to.Name),
		}
	case dist > th.Far:
		return Verdict{
			IsValid:  false,
			Severity: SeverityError,
			Message: fmt.Sprintf("「%s」と「%s」の距離が大きすぎます（距離 %.1f、上限 %.1f）。経路を追加するか、中継地を設定してください",
				from.Name, to.Name, dist, th.Far),
		}
	default:
		return Verdict{
			IsValid:  true,
			Severity: SeverityWarning,
			Message: fmt.Sprintf("「%s」から「%s」への移動は可能ですが、直接の経路がなく距離も長いため時間がかかります（距離 %.1f）",
				from.Name, to.Name, dist),
		}
	}
}

func unresolvedVerdict(ix *geography.Index, fromName, toName string, fromOK, toOK bool) Verdict {
	var missing []string
	if !fromOK {
		missing = append(missing, fromName)
	}
	if !toOK {
		missing = append(missing, toName)
	}

	var suggestions []string
	for _, name := range missing {
		for _, s := range ix.Suggest(name, maxSuggestions) {
			if !contains(suggestions, s) {
				suggestions = append(suggestions, s)
			}
		}
	}

	quoted := make([]string, len(missing))
	for i, name := range missing {
		quoted[i] = fmt.Sprintf("「%s」", name)
	}
	msg := fmt.Sprintf("場所%sが見つかりません", strings.Join(quoted, "と"))
	if len(suggestions) > 0 {
		msg += fmt.Sprintf("。もしかして: %s", strings.Join(suggestions, "、"))
	}

	return Verdict{IsValid: false, Severity: SeverityError, Message: msg, Suggestions: suggestions}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
