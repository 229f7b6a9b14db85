package triage

import "strings"

// redFlagKeywords names indicators that warrant attention even when the
// classifier misses them.
var redFlagKeywords = []string{
	"chest pain",
	"difficulty breathing",
	"severe bleeding",
	"unconscious",
	"stroke",
	"heart attack",
	"suicide",
	"severe headache",
	"confusion",
}

// DetectRedFlags scans symptom strings for known red-flag keywords.
func DetectRedFlags(symptoms []string) []string {
	detected := []string{}

	lowered := make([]string, len(symptoms))
	for i, s := range symptoms {
		lowered[i] = strings.ToLower(s)
	}

	for _, keyword := range redFlagKeywords {
		for _, s := range lowered {
			if strings.Contains(s, keyword) {
				detected = append(detected, keyword)
				break
			}
		}
	}

	return detected
}

// MergeRedFlags combines the classifier's flags with locally detected ones,
// deduplicated, preserving the classifier's ordering first.
func MergeRedFlags(modelFlags, detected []string) []string {
	merged := []string{}
	seen := make(map[string]bool)

	for _, f := range modelFlags {
		key := strings.ToLower(strings.TrimSpace(f))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, f)
	}
	for _, f := range detected {
		key := strings.ToLower(strings.TrimSpace(f))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, f)
	}

	return merged
}
