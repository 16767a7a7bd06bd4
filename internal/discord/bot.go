package discord

import (
	"context"
	"fmt"
	"log"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"

	"chainbot/internal/chain"
	"chainbot/internal/command"
	"chainbot/internal/config"
	"chainbot/internal/storage"
	"chainbot/pkg/retrylimit"
	"chainbot/pkg/util"
)

// Bot wires the chain processor to a Discord session: messages carrying the
// trigger prefix are parsed and executed as command chains, one goroutine
// per message.
type Bot struct {
	dg        *discordgo.Session
	cfg       *config.Config
	store     *storage.Storage
	registry  *command.Registry
	processor *chain.Processor

	sendLimiter *retrylimit.AdaptiveLimiter

	mu       sync.Mutex
	limiters map[string]*rate.Limiter // per user, guards against chain floods
}

// NewBot builds a Bot around an already-populated registry.
func NewBot(cfg *config.Config, store *storage.Storage, registry *command.Registry) (*Bot, error) {
	syn, err := cfg.Syntax()
	if err != nil {
		return nil, err
	}

	b := &Bot{
		cfg:         cfg,
		store:       store,
		registry:    registry,
		sendLimiter: retrylimit.NewAdaptiveLimiter(5, 1, 20, 1, 0.5),
		limiters:    make(map[string]*rate.Limiter),
	}

	chainCfg := chain.DefaultConfig()
	chainCfg.Syntax = syn
	binder := command.NewBinder(registry, b.bindContext)
	b.processor = chain.NewWithConfig(binder, chainCfg)

	return b, nil
}

// Run opens the Discord session and blocks until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	b.dg = dg

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	return nil
}

// onReady logs identity and primes storage records for every guild.
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("[INFO] Logged in as %s, serving %d guilds", s.State.User.Username, len(r.Guilds))

	guildIDs := make([]string, 0, len(r.Guilds))
	for _, g := range r.Guilds {
		guildIDs = append(guildIDs, g.ID)
	}
	if err := util.Parallel(guildIDs, 4, func(ctx context.Context, id string) error {
		_, err := b.store.Prefix(id)
		return err
	}); err != nil {
		log.Println("[WARN] Failed to prime guild records:", err)
	}
}

// onMessageCreate picks up prefixed messages and runs each chain in its own
// goroutine so slow commands never block other users.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	prefix := b.prefixFor(m.GuildID)
	if !strings.HasPrefix(m.Content, prefix) {
		return
	}
	raw := strings.TrimPrefix(m.Content, prefix)
	if strings.TrimSpace(raw) == "" {
		return
	}

	if !b.limiterFor(m.Author.ID).Allow() {
		log.Printf("[WARN] Rate-limited chain from %s", m.Author.ID)
		return
	}

	go b.runChain(s, m, raw)
}

// runChain is the per-chain task boundary: panics from command bodies are
// caught and logged here and never reach other chains.
func (b *Bot) runChain(s *discordgo.Session, m *discordgo.MessageCreate, raw string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERR] Chain %q panicked: %v\n%s", raw, r, debug.Stack())
		}
	}()

	ev := b.newResponder(s, m)
	result := b.processor.Process(raw, ev)
	if result != "" {
		ev.Respond(result)
	}

	if m.GuildID != "" {
		if err := b.store.AddChainRecord(m.GuildID, m.ChannelID, m.Author.ID, m.Author.Username, raw); err != nil {
			log.Println("[WARN] Failed to record chain:", err)
		}
	}
}

// bindContext builds the command Context for one invocation. The responder
// carries the originating message so commands can see guild and author.
func (b *Bot) bindContext(ev chain.Event, args []string) *command.Context {
	ctx := &command.Context{
		Storage:  b.store,
		Registry: b.registry,
		Event:    ev,
		Args:     args,
	}
	if r, ok := ev.(*Responder); ok {
		ctx.Session = r.session
		ctx.Message = r.message
	}
	return ctx
}

// prefixFor returns the guild's custom prefix, falling back to the default.
// Direct messages always use the default.
func (b *Bot) prefixFor(guildID string) string {
	if guildID == "" {
		return b.cfg.Prefix
	}
	prefix, err := b.store.Prefix(guildID)
	if err != nil {
		log.Println("[WARN] Failed to read guild prefix:", err)
		return b.cfg.Prefix
	}
	if prefix == "" {
		return b.cfg.Prefix
	}
	return prefix
}

func (b *Bot) limiterFor(userID string) *rate.Limiter {
	b.mu.Lock()
	defer b.mu.Unlock()
	lim, ok := b.limiters[userID]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(b.cfg.ChainRate), b.cfg.ChainBurst)
		b.limiters[userID] = lim
	}
	return lim
}
