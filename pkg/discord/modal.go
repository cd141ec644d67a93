package discord

import "github.com/bwmarrin/discordgo"

// ExtractRegistrationForm reads the text inputs of the registration modal,
// keyed by their CustomID.
func ExtractRegistrationForm(data discordgo.ModalSubmitInteractionData) (name, email, contact, event, notes string) {
	values := map[string]string{}
	for _, component := range data.Components {
		row, ok := component.(*discordgo.ActionsRow)
		if !ok || len(row.Components) == 0 {
			continue
		}
		input, ok := row.Components[0].(*discordgo.TextInput)
		if !ok {
			continue
		}
		values[input.CustomID] = input.Value
	}
	return values["name"], values["email"], values["contact"], values["event"], values["notes"]
}
