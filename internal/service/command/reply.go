package command

import (
	"errors"

	"github.com/heartmarshall/ustwo-backend/internal/domain"
)

// Reply is what the chat gateway posts back to the channel.
type Reply struct {
	Text string
	// Embed is optional rich content rendered under Text.
	Embed *Embed
	// Ephemeral replies are shown only to the user who ran the command.
	Ephemeral bool
}

// Embed is a rich message card.
type Embed struct {
	Title       string
	Description string
	Color       int
	Fields      []EmbedField
	Footer      string
	ImageURL    string
}

// EmbedField is one titled block inside an Embed.
type EmbedField struct {
	Name   string
	Value  string
	Inline bool
}

// Embed colours.
const (
	colorMemoryLane = 0xeee657
	colorMenu       = 0x9b59b6
)

// Rejection renders a validation error as the ephemeral reply the user sees.
// The first field message is used verbatim. ok is false for any other error.
func Rejection(err error) (reply Reply, ok bool) {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || len(ve.Errors) == 0 {
		return Reply{}, false
	}
	return Reply{Text: ve.Errors[0].Message, Ephemeral: true}, true
}
