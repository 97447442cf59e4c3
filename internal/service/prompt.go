package service

import (
	"fmt"
	"strings"

	"prestige/internal/model"
)

// NoAvailabilitySentence replaces the unit list when nothing is for sale.
const NoAvailabilitySentence = "There are currently no properties available."

// RefusalSentence is the canned reply the assistant is instructed to use for
// out-of-scope questions.
const RefusalSentence = "I can only help with questions about our available properties and how to contact our sales team."

const contactBlock = `Contact information:
- Sales office: Ambassadeur Prestige, 12 Avenue de la Corniche
- Phone: +212 5 22 00 00 00
- Email: contact@ambassadeur-prestige.com
- Opening hours: Monday to Saturday, 9:00 to 18:00`

// BuildPrompt renders the system prompt from the current active inventory.
// Deterministic: the same house list always produces the same text.
func BuildPrompt(activeHouses []model.House) string {
	var inventory string
	if len(activeHouses) == 0 {
		inventory = NoAvailabilitySentence
	} else {
		lines := make([]string, 0, len(activeHouses))
		for _, h := range activeHouses {
			lines = append(lines, fmt.Sprintf("- Unit %s (Type %s)", h.Number, strings.ToUpper(h.Type)))
		}
		inventory = strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`You are the virtual assistant of the Ambassadeur Prestige residential development.

Currently available units:
%s

%s

Instructions:
- Only discuss the availability of the units listed above and the contact details of the sales office.
- When mentioning a unit, always refer to it by its number exactly as listed.
- If the visitor asks about anything else, reply: "%s"`,
		inventory, contactBlock, RefusalSentence)
}
