// Package urllist — ordered set with deduplication.
package urllist

// Queue keeps URLs in insertion order, dropping repeats of the same
// normalized URL. The first spelling seen is the one kept.
type Queue struct {
	items []string
	seen  map[string]bool
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{
		seen: make(map[string]bool),
	}
}

// Add enqueues a URL unless an equivalent one was already added.
// It reports whether the URL was new.
func (q *Queue) Add(url string) bool {
	key := NormalizeURL(url)
	if q.seen[key] {
		return false
	}
	q.seen[key] = true
	q.items = append(q.items, url)
	return true
}

// Len returns the number of unique URLs.
func (q *Queue) Len() int {
	return len(q.items)
}

// All returns all unique URLs in insertion order.
func (q *Queue) All() []string {
	return q.items
}

// Dedupe returns urls without repeats, keeping first occurrences in order.
func Dedupe(urls []string) []string {
	q := NewQueue()
	for _, u := range urls {
		q.Add(u)
	}
	return q.All()
}
