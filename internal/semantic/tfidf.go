package semantic

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// TermWeight is one shared term between two documents with its weight in
// each.
type TermWeight struct {
	Term     string  `json:"term"`
	First    float64 `json:"first_tfidf"`
	Second   float64 `json:"second_tfidf"`
	Combined float64 `json:"combined_score"`
}

var (
	tfidfWhitespace = regexp.MustCompile(`\s+`)
	tfidfSpecial    = regexp.MustCompile(`[^a-zA-Z0-9\s+#\-.]`)
	tfidfCPlusPlus  = regexp.MustCompile(`\bc\+\+`)
	tfidfCSharp     = regexp.MustCompile(`\bc#`)
	tfidfFSharp     = regexp.MustCompile(`\bf#`)
	tfidfToken      = regexp.MustCompile(`[a-z0-9]+`)
)

// englishStopWords is the usual English stop-word list applied before n-gram
// extraction.
var englishStopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "about", "above", "after", "again", "against", "all", "am", "an",
		"and", "any", "are", "as", "at", "be", "because", "been", "before",
		"being", "below", "between", "both", "but", "by", "can", "did", "do",
		"does", "doing", "down", "during", "each", "few", "for", "from",
		"further", "had", "has", "have", "having", "he", "her", "here", "hers",
		"him", "his", "how", "i", "if", "in", "into", "is", "it", "its",
		"itself", "just", "me", "more", "most", "my", "myself", "no", "nor",
		"not", "now", "of", "off", "on", "once", "only", "or", "other", "our",
		"ours", "out", "over", "own", "same", "she", "should", "so", "some",
		"such", "than", "that", "the", "their", "theirs", "them", "themselves",
		"then", "there", "these", "they", "this", "those", "through", "to",
		"too", "under", "until", "up", "very", "was", "we", "were", "what",
		"when", "where", "which", "while", "who", "whom", "why", "will",
		"with", "you", "your", "yours", "yourself", "yourselves",
	} {
		englishStopWords[w] = struct{}{}
	}
}

// preprocessText lowercases and cleans text, rewriting symbol-heavy language
// names (c++, c#, f#) into tokenizable forms so they survive tokenization.
func preprocessText(text string) string {
	if text == "" {
		return ""
	}
	text = tfidfWhitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), " ")
	text = tfidfSpecial.ReplaceAllString(text, " ")
	text = tfidfCPlusPlus.ReplaceAllString(text, "cplusplus")
	text = tfidfCSharp.ReplaceAllString(text, "csharp")
	text = tfidfFSharp.ReplaceAllString(text, "fsharp")
	return text
}

// ngramCounts tokenizes preprocessed text, removes stop words, and counts
// unigrams and bigrams.
func ngramCounts(text string) map[string]float64 {
	raw := tfidfToken.FindAllString(text, -1)
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if _, stop := englishStopWords[t]; !stop {
			tokens = append(tokens, t)
		}
	}

	counts := make(map[string]float64, len(tokens)*2)
	for i, t := range tokens {
		counts[t]++
		if i+1 < len(tokens) {
			counts[t+" "+tokens[i+1]]++
		}
	}
	return counts
}

// TFIDFSimilarity computes the cosine similarity of two documents under a
// two-document TF-IDF model with unigrams and bigrams and smoothed IDF. It
// also returns the shared terms sorted by combined weight.
func TFIDFSimilarity(a, b string) (float64, []TermWeight) {
	countsA := ngramCounts(preprocessText(a))
	countsB := ngramCounts(preprocessText(b))
	if len(countsA) == 0 || len(countsB) == 0 {
		return 0, nil
	}

	// Smoothed IDF over the two-document corpus: ln((1+n)/(1+df)) + 1.
	idf := func(term string) float64 {
		df := 0.0
		if countsA[term] > 0 {
			df++
		}
		if countsB[term] > 0 {
			df++
		}
		return math.Log(3.0/(1.0+df)) + 1.0
	}

	vocab := make(map[string]struct{}, len(countsA)+len(countsB))
	for t := range countsA {
		vocab[t] = struct{}{}
	}
	for t := range countsB {
		vocab[t] = struct{}{}
	}

	vecA := make(map[string]float64, len(countsA))
	vecB := make(map[string]float64, len(countsB))
	var normA, normB float64
	for t := range vocab {
		w := idf(t)
		if c := countsA[t]; c > 0 {
			v := c * w
			vecA[t] = v
			normA += v * v
		}
		if c := countsB[t]; c > 0 {
			v := c * w
			vecB[t] = v
			normB += v * v
		}
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}
	normA = math.Sqrt(normA)
	normB = math.Sqrt(normB)

	var dot float64
	var shared []TermWeight
	for t, va := range vecA {
		vb, ok := vecB[t]
		if !ok {
			continue
		}
		wa := va / normA
		wb := vb / normB
		dot += wa * wb
		shared = append(shared, TermWeight{
			Term:     t,
			First:    wa,
			Second:   wb,
			Combined: wa * wb,
		})
	}

	sort.Slice(shared, func(i, j int) bool {
		if shared[i].Combined != shared[j].Combined {
			return shared[i].Combined > shared[j].Combined
		}
		return shared[i].Term < shared[j].Term
	})
	if len(shared) > 10 {
		shared = shared[:10]
	}

	if dot < 0 {
		dot = 0
	}
	if dot > 1 {
		dot = 1
	}
	return dot, shared
}
