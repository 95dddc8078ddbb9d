package utils

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

//go:embed tracking_params.json
var trackingParamsJSON []byte

// TrackingParamDetail describes one tracking-parameter rule.
type TrackingParamDetail struct {
	Key         string `json:"key"`
	MatchType   string `json:"match_type,omitempty"` // "exact" or "prefix"
	Company     string `json:"company"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// RemovedParamInfo holds information about a removed tracking parameter.
type RemovedParamInfo struct {
	Parameter   string `json:"parameter"`
	Value       string `json:"value"`
	Company     string `json:"company"`
	Type        string `json:"type"`
	Description string `json:"description"`
	MatchedRule string `json:"matched_rule"`
}

// TrackingRules matches query parameter names against known tracking
// parameters. Exact rules win over prefix rules; names compare
// case-insensitively.
type TrackingRules struct {
	exact  map[string]TrackingParamDetail
	prefix []TrackingParamDetail
}

// NewTrackingRules indexes rules. An empty MatchType means "exact".
func NewTrackingRules(rules []TrackingParamDetail) *TrackingRules {
	t := &TrackingRules{exact: make(map[string]TrackingParamDetail)}
	for _, rule := range rules {
		rule.Key = strings.ToLower(rule.Key)
		if rule.MatchType == "" {
			rule.MatchType = "exact"
		}
		if rule.MatchType == "prefix" {
			t.prefix = append(t.prefix, rule)
		} else {
			t.exact[rule.Key] = rule
		}
	}
	return t
}

var defaultTrackingRules = sync.OnceValues(func() (*TrackingRules, error) {
	var rules []TrackingParamDetail
	if err := json.Unmarshal(trackingParamsJSON, &rules); err != nil {
		log.Error().Err(err).Msg("embedded tracking parameter definitions are unreadable")
		return nil, fmt.Errorf("decoding tracking parameter definitions: %w", err)
	}
	t := NewTrackingRules(rules)
	log.Debug().Int("exact", len(t.exact)).Int("prefix", len(t.prefix)).Msg("loaded tracking parameter definitions")
	return t, nil
})

// DefaultTrackingRules returns the rules embedded in the library.
func DefaultTrackingRules() (*TrackingRules, error) {
	return defaultTrackingRules()
}

// Match returns the rule matching a parameter name.
func (t *TrackingRules) Match(param string) (TrackingParamDetail, bool) {
	key := strings.ToLower(param)
	if rule, ok := t.exact[key]; ok {
		return rule, true
	}
	for _, rule := range t.prefix {
		if strings.HasPrefix(key, rule.Key) {
			return rule, true
		}
	}
	return TrackingParamDetail{}, false
}

// CleanURLResult holds the result of the cleaning operation.
type CleanURLResult struct {
	CleanedURL    string
	RemovedParams []RemovedParamInfo
}

// CleanURL removes known tracking parameters from rawURL without any network
// access and reports what was removed. The remaining parameters keep their
// original order.
func (t *TrackingRules) CleanURL(rawURL string) (CleanURLResult, error) {
	result := CleanURLResult{RemovedParams: []RemovedParamInfo{}}

	parsed, err := parseURL(rawURL)
	if err != nil {
		return result, err
	}
	if parsed.RawQuery == "" {
		result.CleanedURL = parsed.String()
		return result, nil
	}

	var kept queryParams
	for _, param := range parseQuery(parsed.RawQuery) {
		rule, ok := t.Match(param.Key)
		if !ok {
			kept = append(kept, param)
			continue
		}
		for _, value := range param.Values {
			result.RemovedParams = append(result.RemovedParams, RemovedParamInfo{
				Parameter:   param.Key,
				Value:       value,
				Company:     rule.Company,
				Type:        rule.Type,
				Description: rule.Description,
				MatchedRule: rule.Key,
			})
		}
	}

	if len(result.RemovedParams) == 0 {
		result.CleanedURL = parsed.String()
		return result, nil
	}
	parsed.RawQuery = kept.encode()
	result.CleanedURL = parsed.String()
	return result, nil
}

// CleanURL removes tracking parameters using the embedded rules.
func CleanURL(rawURL string) (CleanURLResult, error) {
	rules, err := DefaultTrackingRules()
	if err != nil {
		return CleanURLResult{}, err
	}
	return rules.CleanURL(rawURL)
}
