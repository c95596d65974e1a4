package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	handler *Handler
	guildID string
	locale  string
	logger  *zap.Logger
}

// NewBot creates a Bot. Commands are registered in guildID, or globally when
// it is empty. locale selects the language of the command descriptions.
func NewBot(token, guildID, locale string, handler *Handler, logger *zap.Logger) (*Bot, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	bot := &Bot{
		session: s,
		handler: handler,
		guildID: guildID,
		locale:  locale,
		logger:  logger,
	}
	s.AddHandler(bot.handleInteraction)
	return bot, nil
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if i.ApplicationCommandData().Name == commandName {
			b.handler.HandleCommand(s, i)
		}
	case discordgo.InteractionModalSubmit:
		b.handler.HandleModalSubmit(s, i)
	}
}

// Run opens the session, registers /meetmatch and blocks until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	defer b.session.Close()

	cmd := applicationCommand(b.handler.translator, b.locale)
	if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.guildID, cmd); err != nil {
		b.logger.Warn("register command failed", zap.String("command", cmd.Name), zap.Error(err))
	}

	b.logger.Info("discord bot online", zap.String("user", b.session.State.User.Username))
	<-ctx.Done()
	return nil
}
