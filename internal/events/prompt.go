package events

import (
	"fmt"
	"strings"

	"event-finder/internal/search"
)

// systemPrompt steers the model toward event-only, to-the-point digests.
const systemPrompt = `You are a helpful assistant. Your role is to filter the scraped search data and provide the best result to the user.

Rules:
1. You are a helpful assistant.
2. You must filter the data and give the best result to the user.
3. Do not provide any irrelevant information or suggestions except event-related information from the data.
4. Provide a to-the-point and clear response.`

// humanTemplate embeds the user request and the scraped records verbatim.
const humanTemplate = `User Input: %s
Scraped Data: %s

---
Generate a response that:
1. Is relevant to the user input
2. Is concise and to the point
3. Does not include any irrelevant information or suggestions
4. Uses only the provided scraped data for event-related information`

// noDataPlaceholder stands in for the record block when nothing was found.
const noDataPlaceholder = "No event data available."

// buildPrompt assembles the fixed two-part instruction for one request.
func buildPrompt(userInput string, records []search.EventRecord) string {
	return systemPrompt + "\n\n" + fmt.Sprintf(humanTemplate, userInput, formatRecords(records))
}

// formatRecords renders the records as a numbered text block for the model.
func formatRecords(records []search.EventRecord) string {
	if len(records) == 0 {
		return noDataPlaceholder
	}
	var b strings.Builder
	for i, r := range records {
		fmt.Fprintf(&b, "\n[%d] Title: %s\n", i+1, r.Title)
		fmt.Fprintf(&b, "    Source: %s\n", r.Source)
		fmt.Fprintf(&b, "    Date: %s\n", r.Date)
		fmt.Fprintf(&b, "    Description: %s\n", r.Snippet)
		fmt.Fprintf(&b, "    Link: %s\n", r.Link)
	}
	return b.String()
}
