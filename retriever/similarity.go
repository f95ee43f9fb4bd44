package retriever

import "math"

// CosineSimilarity returns the normalized dot product of a and b. Mismatched
// lengths or a zero-magnitude vector score 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}

// BestMatch scores the query vector against every document vector and
// returns the index and score of the strictly highest one. Ties keep the
// earlier index. Returns -1 when there are no document vectors.
func BestMatch(query []float32, docs [][]float32) (int, float64) {
	bestIdx := -1
	best := math.Inf(-1)

	for i, doc := range docs {
		if similarity := CosineSimilarity(query, doc); similarity > best {
			best = similarity
			bestIdx = i
		}
	}

	if bestIdx == -1 {
		return -1, 0
	}

	return bestIdx, best
}
