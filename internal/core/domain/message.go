package domain

// Message is text addressed to a record's phone plus its wa.me deep link.
type Message struct {
	Text string
	Link string
}
