package dto

// PublishEmbedPassageMessage travels over the embedding topic. The consumer
// re-reads the passage row, so only the id is carried.
type PublishEmbedPassageMessage struct {
	PassageId string `json:"passage_id"`
}
