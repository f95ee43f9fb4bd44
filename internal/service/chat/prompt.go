package chat

import (
	"bytes"
	"fmt"

	"github.com/panoptisDev/panoptis-ai-app-chat/retriever"
)

const defaultPersona = "You are an AI assistant named Panoptis. You always speak in the user's language. You are kind and helpful."

// historyWindow is the number of prior turns included in the prompt, not
// counting the new user message.
const historyWindow = 3

func assemblePrompt(persona string, doc *retriever.Result, recent []Turn, message string) string {
	var sb bytes.Buffer

	sb.WriteString(persona)

	if doc != nil {
		sb.WriteString("\nI've found some relevant information from our documentation that may help with this question:\n")
		sb.WriteString(fmt.Sprintf("Title: %s\n", doc.Title))
		sb.WriteString(fmt.Sprintf("Content: %s\n", doc.Content))
		sb.WriteString("\nIMPORTANT: Use this information to help answer the question. When asked about pricing, features, or app details, base your answer on this documentation.")
	}

	sb.WriteString("\n\nRecent conversation:\n")
	if len(recent) > historyWindow {
		recent = recent[len(recent)-historyWindow:]
	}
	for _, turn := range recent {
		sb.WriteString(fmt.Sprintf("%s: %s\n", speaker(turn.Role), turn.Content))
	}

	sb.WriteString(fmt.Sprintf("\nH: %s\n", message))
	sb.WriteString("Panoptis:")

	return sb.String()
}

func speaker(role string) string {
	if role == RoleUser {
		return "Human"
	}
	return "Panoptis"
}
