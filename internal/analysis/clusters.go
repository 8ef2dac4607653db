package analysis

import (
	"regexp"
	"sort"
	"strings"
)

// semanticClusters emits every cluster topic with at least two keyword
// matches. Frequency sums case-insensitive occurrence counts across
// the original text (not the lower-cased copy), and the result is
// ordered by frequency descending.
func (a *Analyzer) semanticClusters(original, lower string) []SemanticCluster {
	var clusters []SemanticCluster
	for _, ct := range a.dicts.Clusters {
		var matched []string
		freq := 0
		for _, kw := range ct.Keywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			matched = append(matched, kw)
			re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(kw))
			freq += len(re.FindAllStringIndex(original, -1))
		}
		if len(matched) >= 2 {
			clusters = append(clusters, SemanticCluster{
				Topic:           ct.Topic,
				MatchedKeywords: matched,
				Frequency:       freq,
				Sentiment:       ct.Sentiment,
			})
		}
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].Frequency > clusters[j].Frequency
	})
	return clusters
}
