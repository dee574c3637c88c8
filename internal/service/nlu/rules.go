package nlu

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/voxretail/assistant/internal/domain"
)

// patternGroup binds one intent to its trigger patterns and entity
// extractor. Groups are evaluated in precedence order and the first
// matching group wins: the specific intents (reorder, delivery) are
// listed before the generic stock query so table order can never
// shadow them.
type patternGroup struct {
	intent   string
	patterns []*regexp.Regexp
	extract  func(transcript string, e *domain.EntitySet)
}

var (
	colorRe = regexp.MustCompile(`\b(red|blue|black|white|green|yellow|brown|gray|grey)\b`)
	// Longer tokens first so "large" is not swallowed by "l".
	sizeRe     = regexp.MustCompile(`\b(xxl|xl|xs|small|medium|large|s|m|l)\b`)
	numberRe   = regexp.MustCompile(`\b\d+\b`)
	quantityRe = regexp.MustCompile(`(\d+)\s*(?:units?|pieces?|items?)?`)
)

func compile(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		res = append(res, regexp.MustCompile(p))
	}
	return res
}

var ruleGroups = []patternGroup{
	{
		intent: domain.IntentCreateReorder,
		patterns: compile(
			`restock`,
			`reorder`,
			`order.*more`,
			`purchase.*order`,
			`buy.*more`,
		),
		extract: func(t string, e *domain.EntitySet) {
			if m := quantityRe.FindStringSubmatch(t); m != nil {
				if qty, err := strconv.Atoi(m[1]); err == nil {
					e.Quantity = qty
				}
			}
			extractAttributes(t, e)
		},
	},
	{
		intent: domain.IntentGetDeliveryStatus,
		patterns: compile(
			`delivery.*status`,
			`when.*arrive`,
			`shipment`,
			`order.*status`,
			`when.*deliver`,
		),
		extract: func(t string, e *domain.EntitySet) {
			if nums := numberRe.FindAllString(t, -1); len(nums) > 0 {
				last := nums[len(nums)-1]
				e.ReorderID = last
				e.PurchaseOrderID = last
			}
		},
	},
	{
		intent: domain.IntentGetSupplierInfo,
		patterns: compile(
			`supplier`,
			`vendor`,
			`who.*supplies`,
		),
		extract: func(t string, e *domain.EntitySet) {
			extractSKU(t, e)
		},
	},
	{
		intent: domain.IntentGetSalesSummary,
		patterns: compile(
			`sales.*summary`,
			`how many.*sold`,
			`total.*sales`,
			`revenue`,
			`sales.*report`,
		),
		extract: func(t string, e *domain.EntitySet) {
			switch {
			case strings.Contains(t, "week") || strings.Contains(t, "7"):
				e.WindowDays = 7
			case strings.Contains(t, "month") || strings.Contains(t, "30"):
				e.WindowDays = 30
			case strings.Contains(t, "day"):
				e.WindowDays = 1
			default:
				e.WindowDays = 7
			}
		},
	},
	{
		intent: domain.IntentGetStock,
		patterns: compile(
			`how many.*left`,
			`how many.*in stock`,
			`stock.*level`,
			`inventory.*count`,
			`quantity.*available`,
			`do we have`,
			`what.*stock`,
			`show me`,
		),
		extract: func(t string, e *domain.EntitySet) {
			extractAttributes(t, e)
			extractSKU(t, e)
		},
	},
}

func extractAttributes(t string, e *domain.EntitySet) {
	if m := colorRe.FindString(t); m != "" {
		e.Color = m
	}
	if m := sizeRe.FindString(t); m != "" {
		e.Size = m
	}
}

func extractSKU(t string, e *domain.EntitySet) {
	nums := numberRe.FindAllString(t, -1)
	if len(nums) > 0 && len(nums[len(nums)-1]) >= 4 {
		e.SKU = nums[len(nums)-1]
	}
}

// RuleClassifier is the deterministic keyword matcher used as both the
// non-LLM mode and the fallback. It is pure, does no I/O, and always
// returns a usable intent.
type RuleClassifier struct{}

func NewRuleClassifier() *RuleClassifier {
	return &RuleClassifier{}
}

func (c *RuleClassifier) Classify(ctx context.Context, transcript string, device domain.EntitySet) (domain.ParsedIntent, error) {
	t := strings.ToLower(transcript)
	// Contractions like "what's" would otherwise expose a standalone "s"
	// to the single-letter size vocabulary.
	t = strings.ReplaceAll(t, "'", "")
	entities := device

	for _, group := range ruleGroups {
		for _, p := range group.patterns {
			if p.MatchString(t) {
				group.extract(t, &entities)
				return domain.ParsedIntent{Intent: group.intent, Entities: entities}, nil
			}
		}
	}

	// No group matched: assume the most common query and still scan for
	// product attributes so "blue t-shirts" keeps its color.
	extractAttributes(t, &entities)
	extractSKU(t, &entities)
	return domain.ParsedIntent{Intent: domain.DefaultIntent, Entities: entities}, nil
}
