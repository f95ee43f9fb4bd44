package chat

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const welcomeText = "Hello! I'm Panoptis. How can I help you? I'm happy to chat in your language and answer your questions about the app. 😊"

// Turn is one message in a conversation.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversation is an append-only sequence of turns, seeded with the fixed
// welcome turn. It lives only for the process lifetime. sending guards
// against concurrent submissions; it is owned by the service's mutex.
type Conversation struct {
	id      string
	turns   []Turn
	sending bool
}

func (c *Conversation) ID() string {
	return c.id
}

func newConversation(id string) *Conversation {
	return &Conversation{
		id: id,
		turns: []Turn{
			{Role: RoleAssistant, Content: welcomeText},
		},
	}
}
