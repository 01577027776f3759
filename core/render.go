package core

import (
	"log/slog"

	cowsay "github.com/Code-Hex/Neo-cowsay/v2"
)

const Greeting = "Hello, world!"

type Renderer interface {
	Render(text string) string
}

type RendererFunc func(text string) string

func (f RendererFunc) Render(text string) string {
	return f(text)
}

// CowRenderer draws text inside a cowsay speech balloon.
type CowRenderer struct {
	Cow          string
	BalloonWidth uint
	Logger       *slog.Logger
}

func NewCowRenderer(config Config, logger *slog.Logger) *CowRenderer {
	return &CowRenderer{
		Cow:          config.Cow,
		BalloonWidth: config.BalloonWidth,
		Logger:       logger,
	}
}

// Say renders text and reports cowsay failures such as an unknown cow.
func (c *CowRenderer) Say(text string) (string, error) {
	opts := []cowsay.Option{}
	if c.Cow != "" {
		opts = append(opts, cowsay.Type(c.Cow))
	}
	if c.BalloonWidth > 0 {
		opts = append(opts, cowsay.BallonWidth(c.BalloonWidth))
	}
	return cowsay.Say(text, opts...)
}

// Render is Say with failures degraded to the plain text.
func (c *CowRenderer) Render(text string) string {
	out, err := c.Say(text)
	if err != nil {
		if c.Logger != nil {
			c.Logger.Warn("cowsay render failed", "cow", c.Cow, "error", err)
		}
		return text
	}
	return out
}

// SelectResponse returns the payload rendered when the flag is on and the
// payload untouched when it is off. A nil renderer renders nothing.
func SelectResponse(flagDecision bool, payload string, r Renderer) string {
	if !flagDecision || r == nil {
		return payload
	}
	return r.Render(payload)
}
