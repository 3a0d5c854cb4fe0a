// Package quotes holds the motivational quote pool shown on the menu and
// before focus sessions. Display is gated by the motivational_quotes config
// setting at the call sites.
package quotes

import "math/rand"

// Quote is one attributed motivational line.
type Quote struct {
	Text   string
	Author string
}

var pool = []Quote{
	{"The secret of getting ahead is getting started.", "Mark Twain"},
	{"Focus is the modern rarity.", "Cal Newport"},
	{"Done is better than perfect.", "Google"},
	{"We are what we repeatedly do.", "Will Durant"},
	{"The best time to plant a tree was 20 years ago.", "Chinese Proverb"},
	{"Deep work is rare, valuable, and increasingly rare.", "Cal Newport"},
	{"In the middle of difficulty lies opportunity.", "Albert Einstein"},
	{"It does not matter how slowly you go as long as you do not stop.", "Confucius"},
	{"The only way to do great work is to love what you do.", "Steve Jobs"},
	{"Small steps lead to big changes.", "Unknown"},
	{"Productivity is never an accident.", "J. Willard Marriott"},
	{"Either you run the day or the day runs you.", "Jim Rohn"},
	{"An hour of planning saves 10 hours in execution.", "Benjamin Franklin"},
	{"You don't have to be great to start, but you have to start to be great.", "Zig Ziglar"},
	{"Focus on progress, not perfection.", "Unknown"},
}

// Pick returns a random quote from the pool.
func Pick() Quote {
	return pool[rand.Intn(len(pool))]
}
