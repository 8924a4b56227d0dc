package bot

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/jlyeo/sbiltbot/internal/db"
	"github.com/jlyeo/sbiltbot/internal/split"
)

// Bot adapts the Discord transport to the bill-splitting service. The
// conversation id is the channel id: one bill per channel at a time.
type Bot struct {
	session *discordgo.Session
	svc     *split.Service
	history *db.DB
}

// New builds the bot. history may be nil to run without settlement history.
func New(token string, svc *split.Service, history *db.DB) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	bot := &Bot{
		session: session,
		svc:     svc,
		history: history,
	}

	// Register event handlers
	session.AddHandler(bot.onReady)
	session.AddHandler(bot.onGuildCreate)
	session.AddHandler(bot.onMessageCreate)
	session.AddHandler(bot.onInteractionCreate)

	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	return bot, nil
}

func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}
	log.Println("Discord bot is running")
	return nil
}

func (b *Bot) Stop() error {
	return b.session.Close()
}

func (b *Bot) onReady(s *discordgo.Session, event *discordgo.Ready) {
	log.Printf("%s is connected!", event.User.Username)

	// Register commands for all guilds
	for _, guild := range event.Guilds {
		if err := b.registerGuildCommands(guild.ID); err != nil {
			log.Printf("Failed to register commands for guild %s: %v", guild.ID, err)
		}
	}
}

func (b *Bot) onGuildCreate(s *discordgo.Session, event *discordgo.GuildCreate) {
	log.Printf("Guild available/joined: %s (id=%s) — ensuring commands", event.Name, event.ID)
	if err := b.registerGuildCommands(event.ID); err != nil {
		log.Printf("Failed to register commands for guild %s: %v", event.ID, err)
	}
}

func (b *Bot) registerGuildCommands(guildID string) error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:         "split",
			Description:  "Start splitting a bill in this channel",
			DMPermission: boolPtr(false),
		},
		{
			Name:         "stop",
			Description:  "Cancel the bill split in this channel",
			DMPermission: boolPtr(false),
		},
		{
			Name:         "status",
			Description:  "Show the state of the bill split in this channel",
			DMPermission: boolPtr(false),
		},
	}

	// Delete existing commands and register new ones
	_, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, guildID, commands)
	if err != nil {
		return err
	}

	log.Printf("Registered application commands for guild %s", guildID)
	return nil
}

// onMessageCreate feeds every non-bot message in a channel with a live
// session into the conversation state machine.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore bot messages
	if m.Author.Bot {
		return
	}
	if !b.svc.Active(m.ChannelID) {
		return
	}

	reply, err := b.svc.Submit(m.ChannelID, m.Content)
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Sorry, %v. Please try again.", err))
		return
	}
	s.ChannelMessageSend(m.ChannelID, reply.Text)

	if reply.Settled && b.history != nil {
		if err := b.history.RecordSettlement(context.Background(), m.ChannelID, reply.Transfers); err != nil {
			log.Printf("Failed to record settlement for channel %s: %v", m.ChannelID, err)
		}
	}
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "split":
		b.handleSplit(s, i)
	case "stop":
		b.handleStop(s, i)
	case "status":
		b.handleStatus(s, i)
	}
}

func boolPtr(b bool) *bool {
	return &b
}
