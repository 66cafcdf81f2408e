// Package quotes holds the motivation lines shown in the header.
package quotes

import "math/rand"

var all = []string{
	"Push yourself, because no one else is going to do it for you.",
	"Success doesn’t just find you. You have to go out and get it.",
	"It always seems impossible until it’s done.",
	"Great things never come from comfort zones.",
	"Dream it. Wish it. Do it.",
	"Don’t watch the clock; do what it does. Keep going.",
}

// All returns every quote.
func All() []string {
	out := make([]string, len(all))
	copy(out, all)
	return out
}

// Random returns a random quote.
func Random() string {
	return all[rand.Intn(len(all))]
}

// Next returns a random quote different from current when possible.
func Next(current string) string {
	for {
		q := Random()
		if q != current || len(all) == 1 {
			return q
		}
	}
}
