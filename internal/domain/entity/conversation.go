package entity

// Turn is one completed exchange: the user message and the agent reply
// produced for it on the same conversation thread.
type Turn struct {
	User  string
	Reply string
}
