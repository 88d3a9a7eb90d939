// internal/agents/providers/joke-provider/models.go
package jokeprovider

import "agent-relay/internal/models"

type Output = models.JokeResponse

var jokes = []Output{
	{
		Setup:     "Why don't scientists trust atoms?",
		Punchline: "Because they make up everything!",
		Category:  "science",
	},
	{
		Setup:     "What did the ocean say to the beach?",
		Punchline: "Nothing, it just waved!",
		Category:  "nature",
	},
	{
		Setup:     "Why did the scarecrow win an award?",
		Punchline: "Because he was outstanding in his field!",
		Category:  "farming",
	},
	{
		Setup:     "What do you call a fake noodle?",
		Punchline: "An impasta!",
		Category:  "food",
	},
	{
		Setup:     "How does a penguin build its house?",
		Punchline: "Igloos it together!",
		Category:  "animals",
	},
}

// Jokes returns a copy of the joke table.
func Jokes() []Output {
	out := make([]Output, len(jokes))
	copy(out, jokes)
	return out
}
