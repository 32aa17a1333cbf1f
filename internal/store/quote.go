package store

import (
	"math/rand"
	"time"
)

type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

var quotes = []Quote{
	{Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs"},
	{Text: "Success is not final, failure is not fatal: it is the courage to continue that counts.", Author: "Winston Churchill"},
	{Text: "The future belongs to those who believe in the beauty of their dreams.", Author: "Eleanor Roosevelt"},
	{Text: "The best way to predict the future is to create it.", Author: "Peter Drucker"},
	{Text: "Everything you've ever wanted is on the other side of fear.", Author: "George Addair"},
	{Text: "Don't watch the clock; do what it does. Keep going.", Author: "Sam Levenson"},
	{Text: "The only limit to our realization of tomorrow will be our doubts of today.", Author: "Franklin D. Roosevelt"},
}

// RandomQuote picks any quote.
func RandomQuote() Quote {
	return quotes[rand.Intn(len(quotes))]
}

// DailyQuote is stable within a calendar day and rotates with it.
func DailyQuote(now time.Time) Quote {
	return quotes[now.YearDay()%len(quotes)]
}
