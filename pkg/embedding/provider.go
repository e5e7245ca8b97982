package embedding

import "math"

// Result carries one embedding vector, L2-normalized.
type Result struct {
	Values []float32
}

// EmbeddingProvider generates text embeddings. taskType distinguishes
// document ingestion ("RETRIEVAL_DOCUMENT") from query embedding
// ("RETRIEVAL_QUERY") for models that care; others ignore it.
type EmbeddingProvider interface {
	Generate(text string, taskType string) (*Result, error)
}

// NormalizeVector scales a vector to unit length. Cosine distance queries
// assume magnitude 1; a zero vector is returned unchanged.
func NormalizeVector(vec []float32) []float32 {
	var magnitude float64
	for _, v := range vec {
		magnitude += float64(v) * float64(v)
	}
	magnitude = math.Sqrt(magnitude)
	if magnitude == 0 {
		return vec
	}

	normalized := make([]float32, len(vec))
	for i, v := range vec {
		normalized[i] = float32(float64(v) / magnitude)
	}
	return normalized
}
