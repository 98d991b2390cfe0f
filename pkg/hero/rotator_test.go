package hero

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	images = []string{"/a.jpg", "/b.jpg", "/c.jpg", "/d.jpg", "/e.jpg", "/f.jpg"}
	words  = []string{"University Support", "Visa Guidance", "Post-Arrival Advice", "Career Coaching"}
)

func TestNewRotatorRejectsEmpty(t *testing.T) {
	_, err := NewRotator(nil, words)
	require.ErrorIs(t, err, ErrEmpty)
	_, err = NewRotator(images, []string{})
	require.ErrorIs(t, err, ErrEmpty)
}

func TestTickIsModuloPerList(t *testing.T) {
	r, err := NewRotator(images, words)
	require.NoError(t, err)
	assert.Equal(t, Frame{Image: "/a.jpg", Word: "University Support"}, r.Frame())

	for n := 1; n <= 30; n++ {
		f := r.Tick()
		assert.Equal(t, n%len(images), f.ImageIndex, "tick %d", n)
		assert.Equal(t, n%len(words), f.WordIndex, "tick %d", n)
		assert.Equal(t, images[f.ImageIndex], f.Image)
		assert.Equal(t, words[f.WordIndex], f.Word)
	}
}

func TestRotatorsAreIndependent(t *testing.T) {
	a, _ := NewRotator(images, words)
	b, _ := NewRotator(images, words)

	a.Tick()
	a.Tick()
	assert.Equal(t, 2, a.Frame().ImageIndex)
	assert.Equal(t, 0, b.Frame().ImageIndex)
}

func TestRunStopsOnCancel(t *testing.T) {
	r, _ := NewRotator(images, words)
	ctx, cancel := context.WithCancel(context.Background())

	var frames []Frame
	err := r.Run(ctx, time.Millisecond, func(f Frame) error {
		frames = append(frames, f)
		if len(frames) == 3 {
			cancel()
		}
		return nil
	})

	require.ErrorIs(t, err, context.Canceled)
	want := []Frame{
		{ImageIndex: 1, Image: "/b.jpg", WordIndex: 1, Word: "Visa Guidance"},
		{ImageIndex: 2, Image: "/c.jpg", WordIndex: 2, Word: "Post-Arrival Advice"},
		{ImageIndex: 3, Image: "/d.jpg", WordIndex: 3, Word: "Career Coaching"},
	}
	if diff := cmp.Diff(want, frames); diff != "" {
		t.Errorf("frames mismatch (-want +got):\n%s", diff)
	}
}

func TestRunReturnsCallbackError(t *testing.T) {
	r, _ := NewRotator(images, words)
	boom := errors.New("client gone")

	err := r.Run(context.Background(), time.Millisecond, func(Frame) error { return boom })
	require.ErrorIs(t, err, boom)
}
