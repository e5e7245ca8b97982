package corpus

// Builtin returns the hardcoded passages compiled into the binary. They are
// the terminal fallback when the bundled corpus is absent or corrupt, so the
// local strategy can always produce a quote.
func Builtin() []Passage {
	return []Passage{
		{
			Id:                "builtin_001",
			Text:              "You have power over your mind - not outside events. Realize this, and you will find strength.",
			Author:            "Marcus Aurelius",
			Work:              "Meditations",
			Contexts:          []string{"control", "stress"},
			TimeOfDayAffinity: AffinityAny,
			HeartRateAffinity: "elevated",
			Quotability:       9,
		},
		{
			Id:                "builtin_002",
			Text:              "It's not what happens to you, but how you react to it that matters.",
			Author:            "Epictetus",
			Work:              "Enchiridion",
			Contexts:          []string{"acceptance", "general"},
			TimeOfDayAffinity: AffinityAny,
			HeartRateAffinity: AffinityAny,
			Quotability:       8,
		},
		{
			Id:                "builtin_003",
			Text:              "When you arise in the morning, think of what a precious privilege it is to be alive - to breathe, to think, to enjoy, to love.",
			Author:            "Marcus Aurelius",
			Work:              "Meditations",
			Contexts:          []string{"gratitude", "morning"},
			TimeOfDayAffinity: "morning",
			Quotability:       8,
		},
		{
			Id:                "builtin_004",
			Text:              "We suffer more often in imagination than in reality.",
			Author:            "Seneca",
			Work:              "Letters to Lucilius",
			Contexts:          []string{"anxiety", "stress", "general"},
			TimeOfDayAffinity: AffinityAny,
			HeartRateAffinity: "elevated",
			Quotability:       9,
		},
	}
}
