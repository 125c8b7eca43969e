package analyses

import (
	"fmt"
	"math"
	"strings"
)

// Expected payload shape:
// {
//   "summary": string,
//   "contentCoverage":     { "score": 1 | 2 | 3, "rationale": string },
//   "facilitationQuality": { "score": 1 | 2 | 3, "rationale": string },
//   "protocolSafety":      { "score": 1 | 2 | 3, "rationale": string },
//   "risk": { "flag": "SAFE" | "RISK", "quote": string | null, "rationale": string }
// }

// AnalysisPayload is the validated, normalized model output.
type AnalysisPayload struct {
	Summary             string         `json:"summary"`
	ContentCoverage     RubricScore    `json:"contentCoverage"`
	FacilitationQuality RubricScore    `json:"facilitationQuality"`
	ProtocolSafety      RubricScore    `json:"protocolSafety"`
	Risk                RiskAssessment `json:"risk"`
}

// RubricScore is one ordinal rubric dimension with its rationale.
type RubricScore struct {
	Score     int    `json:"score"`
	Rationale string `json:"rationale"`
}

// RiskAssessment is the binary risk classification. Quote is null when the
// transcript contains no concerning content.
type RiskAssessment struct {
	Flag      string  `json:"flag"`
	Quote     *string `json:"quote"`
	Rationale string  `json:"rationale"`
}

// ValidatePayload checks that a decoded JSON value conforms to the analysis
// payload shape and returns the normalized payload. Validation is strict: no
// type coercion is performed, so a numeric string score is rejected rather
// than converted. On failure the second return lists every violated field
// path and the payload must not be used.
func ValidatePayload(value any) (AnalysisPayload, []string) {
	var payload AnalysisPayload
	var violations []string

	root, ok := value.(map[string]any)
	if !ok {
		return AnalysisPayload{}, []string{"(root): expected object"}
	}

	payload.Summary = requireString(root, "summary", &violations)
	payload.ContentCoverage = requireRubric(root, "contentCoverage", &violations)
	payload.FacilitationQuality = requireRubric(root, "facilitationQuality", &violations)
	payload.ProtocolSafety = requireRubric(root, "protocolSafety", &violations)
	payload.Risk = requireRisk(root, "risk", &violations)

	if len(violations) > 0 {
		return AnalysisPayload{}, violations
	}
	return payload, nil
}

func requireRubric(parent map[string]any, key string, violations *[]string) RubricScore {
	obj, ok := requireObject(parent, key, violations)
	if !ok {
		return RubricScore{}
	}
	return RubricScore{
		Score:     requireScore(obj, key+".score", violations),
		Rationale: requireStringPath(obj, "rationale", key+".rationale", violations),
	}
}

func requireRisk(parent map[string]any, key string, violations *[]string) RiskAssessment {
	obj, ok := requireObject(parent, key, violations)
	if !ok {
		return RiskAssessment{}
	}
	risk := RiskAssessment{
		Rationale: requireStringPath(obj, "rationale", key+".rationale", violations),
	}

	flag, ok := obj["flag"].(string)
	if !ok || (flag != FlagSafe && flag != FlagRisk) {
		*violations = append(*violations, key+`.flag: must be "SAFE" or "RISK"`)
	} else {
		risk.Flag = flag
	}

	quote, present := obj["quote"]
	if !present {
		*violations = append(*violations, key+".quote: required (string or null)")
	} else if quote != nil {
		text, ok := quote.(string)
		if !ok {
			*violations = append(*violations, key+".quote: must be a string or null")
		} else {
			risk.Quote = &text
		}
	}
	return risk
}

func requireObject(parent map[string]any, key string, violations *[]string) (map[string]any, bool) {
	raw, present := parent[key]
	if !present {
		*violations = append(*violations, key+": required")
		return nil, false
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		*violations = append(*violations, key+": expected object")
		return nil, false
	}
	return obj, true
}

func requireString(parent map[string]any, key string, violations *[]string) string {
	return requireStringPath(parent, key, key, violations)
}

func requireStringPath(parent map[string]any, key, path string, violations *[]string) string {
	raw, present := parent[key]
	if !present {
		*violations = append(*violations, path+": required")
		return ""
	}
	text, ok := raw.(string)
	if !ok {
		*violations = append(*violations, path+": must be a string")
		return ""
	}
	if strings.TrimSpace(text) == "" {
		*violations = append(*violations, path+": must be non-empty")
		return ""
	}
	return text
}

func requireScore(parent map[string]any, path string, violations *[]string) int {
	raw, present := parent["score"]
	if !present {
		*violations = append(*violations, path+": required")
		return 0
	}
	// encoding/json decodes all JSON numbers to float64.
	num, ok := raw.(float64)
	if !ok {
		*violations = append(*violations, path+": must be a number")
		return 0
	}
	if math.Abs(num-math.Round(num)) > 0 {
		*violations = append(*violations, path+": must be an integer")
		return 0
	}
	score := int(math.Round(num))
	if score < 1 || score > 3 {
		*violations = append(*violations, fmt.Sprintf("%s: must be 1, 2 or 3, got %d", path, score))
		return 0
	}
	return score
}
