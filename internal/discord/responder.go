package discord

import (
	"context"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"chainbot/pkg/retrylimit"
)

// Responder is the chain.Event implementation for Discord: notices and
// results go back to the channel the chain came from. Sends run through the
// bot-wide adaptive limiter with a few retries, since a chain can emit
// several messages in quick succession.
type Responder struct {
	session *discordgo.Session
	message *discordgo.MessageCreate
	limiter *retrylimit.AdaptiveLimiter
}

func (b *Bot) newResponder(s *discordgo.Session, m *discordgo.MessageCreate) *Responder {
	return &Responder{session: s, message: m, limiter: b.sendLimiter}
}

// Respond sends text to the originating channel. Failures are logged and
// swallowed; a dead response channel must not break the chain.
func (r *Responder) Respond(text string) {
	if text == "" {
		return
	}
	// Discord hard-caps message length.
	if len(text) > 2000 {
		text = text[:1997] + "..."
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	err := retrylimit.WithRetryMax(ctx, func() error {
		_, err := r.session.ChannelMessageSend(r.message.ChannelID, text)
		return err
	}, r.limiter, 3)
	if err != nil {
		log.Printf("[ERR] Failed to respond in channel %s: %v", r.message.ChannelID, err)
	}
}
