package domain

import (
	"fmt"
	"strings"
)

type Industry struct {
	Name           string
	GrowthEstimate string
}

// GrowingIndustries returns the industries the advisor opens every
// conversation with.
func GrowingIndustries() []Industry {
	return append([]Industry(nil), defaultLexicon.Industries...)
}

// IndustriesGreeting renders the opening assistant message.
func IndustriesGreeting(industries []Industry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here are %d growing industries along with their estimated growth:\n\n", len(industries))
	for i, industry := range industries {
		fmt.Fprintf(&b, "%d. **%s** - Estimated Growth: %s\n", i+1, industry.Name, industry.GrowthEstimate)
	}
	return b.String()
}
