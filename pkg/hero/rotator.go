package hero

import (
	"context"
	"errors"
	"time"
)

// DefaultInterval is how long each slide stays up.
const DefaultInterval = 4500 * time.Millisecond

var ErrEmpty = errors.New("hero: images and words must not be empty")

// Frame is what the banner shows after a tick.
type Frame struct {
	ImageIndex int    `json:"image_index"`
	Image      string `json:"image"`
	WordIndex  int    `json:"word_index"`
	Word       string `json:"word"`
}

// Rotator owns two independent cursors over fixed lists. Each banner gets its own.
type Rotator struct {
	images []string
	words  []string
	image  int
	word   int
}

// NewRotator creates a rotator starting at the first image and word.
func NewRotator(images, words []string) (*Rotator, error) {
	if len(images) == 0 || len(words) == 0 {
		return nil, ErrEmpty
	}
	return &Rotator{images: images, words: words}, nil
}

// Tick advances both cursors by one, wrapping at the end of each list.
func (r *Rotator) Tick() Frame {
	r.image = (r.image + 1) % len(r.images)
	r.word = (r.word + 1) % len(r.words)
	return r.Frame()
}

// Frame returns the current slide.
func (r *Rotator) Frame() Frame {
	return Frame{
		ImageIndex: r.image,
		Image:      r.images[r.image],
		WordIndex:  r.word,
		Word:       r.words[r.word],
	}
}

// Run ticks every interval and hands each frame to fn until ctx is done.
func (r *Rotator) Run(ctx context.Context, interval time.Duration, fn func(Frame) error) error {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			// both cases can be ready at once; cancellation wins
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(r.Tick()); err != nil {
				return err
			}
		}
	}
}
