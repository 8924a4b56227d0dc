package bot

import (
	"fmt"
	"log"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

func (b *Bot) handleSplit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	reply := b.svc.Start(i.ChannelID)
	respondText(s, i, "Howdy, let's split this bill!\n"+
		"Enter each person and the amount they paid, one per message. "+
		"Leave out the amount if they paid nothing.\n\n"+reply.Text)
}

func (b *Bot) handleStop(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.svc.Cancel(i.ChannelID)
	respondText(s, i, "Ok, byebye! To start again, use /split.")
}

func (b *Bot) handleStatus(s *discordgo.Session, i *discordgo.InteractionCreate) {
	for _, info := range b.svc.Sessions() {
		if info.ID != i.ChannelID {
			continue
		}
		respondText(s, i, fmt.Sprintf("Phase: %s, participants: %d, $%s remaining.",
			info.Phase, info.Participants, strconv.FormatFloat(info.Remaining, 'f', -1, 64)))
		return
	}
	respondText(s, i, "No bill split is running in this channel. Use /split to start one.")
}

func respondText(s *discordgo.Session, i *discordgo.InteractionCreate, text string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: text,
		},
	})
	if err != nil {
		log.Printf("Failed to respond to interaction: %v", err)
	}
}
